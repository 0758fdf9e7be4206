// Package timegrid maps between wall-clock time and week-grid geometry.
//
// The grid shows the 08:00-16:00 window as one label column followed by seven
// day columns. Every hour is HourHeight units tall and the label column takes
// one eighth of the total width. All functions are pure.
package timegrid

import (
	"math"

	"github.com/idilsaglam/weekcal/internal/model"
)

const (
	FirstHour   = 8
	LastHour    = 16
	HourHeight  = 80.0
	SnapMinutes = 15

	// HourRows is the number of hour rows drawn (08 through 16 inclusive).
	HourRows = LastHour - FirstHour + 1
	// Columns counts the label column plus the seven day columns.
	Columns = model.DaysPerWeek + 1
)

// Point is a pointer position in grid units.
type Point struct {
	X, Y float64
}

func (p Point) Sub(o Point) Point { return Point{X: p.X - o.X, Y: p.Y - o.Y} }

// Rect is the grid's bounding box in the same units as Point.
type Rect struct {
	Left, Top, Width, Height float64
}

func (r Rect) Right() float64  { return r.Left + r.Width }
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// LabelWidth is the width of the leading time-label column.
func (r Rect) LabelWidth() float64 { return r.Width / Columns }

// DayWidth is the width of a single day column.
func (r Rect) DayWidth() float64 { return (r.Width - r.LabelWidth()) / model.DaysPerWeek }

// DaysLeft is the x coordinate where the first day column starts.
func (r Rect) DaysLeft() float64 { return r.Left + r.LabelWidth() }

// Slot is a resolved (day, start time) position.
type Slot struct {
	Day   int
	Start model.Clock
}

// TimeToOffset converts a clock inside the window to a vertical offset from the
// grid top. Callers clamp to the window first.
func TimeToOffset(c model.Clock) float64 {
	return (float64(c.Hour) + float64(c.Minute)/60 - FirstHour) * HourHeight
}

// OffsetToTime converts a vertical offset from the grid top into a clock snapped
// down to the previous 15-minute line and clamped to the window.
func OffsetToTime(offset float64) model.Clock {
	if offset < 0 {
		offset = 0
	}
	hour := FirstHour + int(math.Floor(offset/HourHeight))
	minute := int(math.Round(math.Mod(offset, HourHeight) / (HourHeight / 60)))
	minute = (minute / SnapMinutes) * SnapMinutes
	if minute >= 60 {
		hour++
		minute = 0
	}
	if hour < FirstHour {
		hour = FirstHour
	}
	if hour >= LastHour {
		hour, minute = LastHour, 0
	}
	return model.At(hour, minute)
}

// PointToDay returns the 1-based day column under x. Positions left or right of
// the day columns clamp to the first or last day.
func PointToDay(x float64, grid Rect) int {
	w := grid.DayWidth()
	if w <= 0 {
		return 1
	}
	idx := int(math.Floor((x - grid.DaysLeft()) / w))
	if idx < 0 {
		idx = 0
	}
	if idx > model.DaysPerWeek-1 {
		idx = model.DaysPerWeek - 1
	}
	return idx + 1
}

// DurationMinutes is end minus start; a non-positive result is an invalid span.
func DurationMinutes(start, end model.Clock) int {
	return end.Minutes() - start.Minutes()
}

// InDays reports whether p lies over the day columns. Edges are inclusive.
func InDays(p Point, grid Rect) bool {
	return p.X >= grid.DaysLeft() && p.X <= grid.Right() &&
		p.Y >= grid.Top && p.Y <= grid.Bottom()
}

// Locate resolves p to a snapped slot. ok is false when p is outside the day
// columns; that case is not an error, there is simply no slot.
func Locate(p Point, grid Rect) (Slot, bool) {
	if !InDays(p, grid) {
		return Slot{}, false
	}
	return Slot{
		Day:   PointToDay(p.X, grid),
		Start: OffsetToTime(p.Y - grid.Top),
	}, true
}

// CellAt returns the day and whole hour of the cell under p, hour clamped to
// the window.
func CellAt(p Point, grid Rect) (day, hour int, ok bool) {
	if !InDays(p, grid) {
		return 0, 0, false
	}
	hour = FirstHour + int(math.Floor((p.Y-grid.Top)/HourHeight))
	hour = max(FirstHour, min(LastHour, hour))
	return PointToDay(p.X, grid), hour, true
}

// Clamp forces c into the window.
func Clamp(c model.Clock) model.Clock {
	m := max(model.WindowStart, min(model.WindowEnd, c.Minutes()))
	return model.ClockFromMinutes(m)
}
