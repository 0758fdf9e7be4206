package tui

import (
	"math"

	"github.com/idilsaglam/weekcal/internal/model"
	"github.com/idilsaglam/weekcal/internal/timegrid"
)

const (
	// header lines above the first grid row: title and day names
	headerRows  = 2
	// status and help lines below the grid
	footerRows  = 2
	minColWidth = 7
)

// fitRowsPerHour returns the densest of 4, 2 or 1 rows per hour, no denser than
// preferred, whose grid fits in height terminal lines.
func fitRowsPerHour(preferred, height int) int {
	for _, r := range []int{4, 2, 1} {
		if r > preferred {
			continue
		}
		if headerRows+timegrid.HourRows*r+footerRows <= height {
			return r
		}
	}
	return 1
}

// layout maps terminal cells to grid units. One cell column is one unit wide;
// one cell row is HourHeight/rowsPerHour units tall. The label column sits at
// x 0..colWidth-1 and day d occupies x d*colWidth..(d+1)*colWidth-1.
type layout struct {
	colWidth    int
	rowsPerHour int
	top         int
}

func newLayout(width, rowsPerHour int) layout {
	switch rowsPerHour {
	case 1, 2, 4:
	default:
		rowsPerHour = 2
	}
	return layout{
		colWidth:    max(minColWidth, width/timegrid.Columns),
		rowsPerHour: rowsPerHour,
		top:         headerRows,
	}
}

func (l layout) rect() timegrid.Rect {
	return timegrid.Rect{
		Width:  float64(l.colWidth * timegrid.Columns),
		Height: timegrid.HourRows * timegrid.HourHeight,
	}
}

func (l layout) width() int { return l.colWidth * timegrid.Columns }

func (l layout) rows() int { return timegrid.HourRows * l.rowsPerHour }

func (l layout) unitsPerRow() float64 { return timegrid.HourHeight / float64(l.rowsPerHour) }

// point converts a terminal cell to grid units. inside reports whether the
// cell is one of the day cells.
func (l layout) point(x, y int) (p timegrid.Point, inside bool) {
	row := y - l.top
	p = timegrid.Point{X: float64(x) + 0.5, Y: float64(row) * l.unitsPerRow()}
	inside = x >= l.colWidth && x < l.width() && row >= 0 && row < l.rows()
	return p, inside
}

// row is the grid row holding vertical offset y.
func (l layout) row(y float64) int { return int(math.Floor(y / l.unitsPerRow())) }

// span returns the first row and the row after the last one covered by start..end.
func (l layout) span(start, end model.Clock) (top, bottom int) {
	top = l.row(timegrid.TimeToOffset(start))
	bottom = int(math.Ceil(timegrid.TimeToOffset(end) / l.unitsPerRow()))
	if bottom <= top {
		bottom = top + 1
	}
	return top, bottom
}

// origin is the top-left of ev's block in grid units.
func (l layout) origin(ev model.Event) timegrid.Point {
	return timegrid.Point{
		X: float64(ev.Day * l.colWidth),
		Y: timegrid.TimeToOffset(ev.Start),
	}
}

// hit returns the event drawn at p. Later events are drawn over earlier ones,
// so the last match wins.
func (l layout) hit(events []model.Event, p timegrid.Point) (model.Event, bool) {
	if !timegrid.InDays(p, l.rect()) {
		return model.Event{}, false
	}
	day := timegrid.PointToDay(p.X, l.rect())
	row := l.row(p.Y)
	var found model.Event
	ok := false
	for _, ev := range events {
		if ev.Day != day {
			continue
		}
		top, bottom := l.span(ev.Start, ev.End)
		if row >= top && row < bottom {
			found, ok = ev, true
		}
	}
	return found, ok
}
