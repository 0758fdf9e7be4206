package tui

import (
	"fmt"
	"math"
	"time"

	"github.com/idilsaglam/weekcal/internal/model"
	"github.com/idilsaglam/weekcal/internal/timegrid"
	"github.com/idilsaglam/weekcal/internal/ui"
)

func weekTitle(weekStart time.Time) string {
	if weekStart.IsZero() {
		return "weekcal"
	}
	return "weekcal · week of " + weekStart.Format("Mon 2 Jan 2006")
}

func dayHeader(weekStart time.Time, day int) string {
	if weekStart.IsZero() {
		return model.WeekdayNames[day-1][:3]
	}
	d := weekStart.AddDate(0, 0, day-1)
	return fmt.Sprintf("%s %d", d.Format("Mon"), d.Day())
}

func blockLines(ev model.Event) []string {
	title := ev.Title
	if ev.Recurrence.Repeats() {
		title = ui.Current().Repeat + " " + title
	}
	lines := []string{title, ev.Start.String() + "-" + ev.End.String()}
	if ev.Location != "" {
		lines = append(lines, ev.Location)
	}
	return lines
}

// renderGrid draws the header, the time labels, the events and, while a drag
// is active, the drop preview and the ghost that follows the pointer.
func (m Model) renderGrid() string {
	l := m.layout
	cw := l.colWidth
	c := newCanvas(l.width(), l.top+l.rows())

	c.text(0, 0, weekTitle(m.opts.WeekStart), l.width(), paintHeader)
	for d := 1; d <= model.DaysPerWeek; d++ {
		c.text(d*cw+1, 1, dayHeader(m.opts.WeekStart, d), cw-1, paintHeader)
	}

	for r := 0; r < l.rows(); r++ {
		y := l.top + r
		if r%l.rowsPerHour == 0 {
			c.text(0, y, fmt.Sprintf("%02d:00", timegrid.FirstHour+r/l.rowsPerHour), cw-1, paintLabel)
			for d := 1; d <= model.DaysPerWeek; d++ {
				c.fill(d*cw+1, y, cw-1, 1, '┈', paintLine)
			}
		}
		for d := 1; d <= model.DaysPerWeek; d++ {
			c.set(d*cw, y, '│', paintLine)
		}
	}

	grabbed, dragging := m.drag.Grabbed()
	for _, ev := range m.cal.Store().All() {
		if dragging && ev.ID == grabbed.ID {
			continue
		}
		p := eventPaint(ev.Color)
		if ev.ID == m.selected {
			p = selectedPaint(ev.Color)
		}
		top, bottom := l.span(ev.Start, ev.End)
		m.block(c, ev.Day*cw+1, top, bottom, ' ', blockLines(ev), p)
	}

	if pv, ok := m.drag.Preview().Get(); ok {
		top, bottom := l.span(pv.Start, pv.End)
		label := []string{"→ " + pv.Start.String() + "-" + pv.End.String()}
		m.block(c, pv.Day*cw+1, top, bottom, '░', label, previewPaint(pv.Color))
	}

	if dragging {
		g := m.drag.Ghost()
		top, bottom := l.span(grabbed.Start, grabbed.End)
		gy := l.row(g.Y)
		m.block(c, int(math.Floor(g.X))+1, gy, gy+bottom-top, ' ', blockLines(grabbed), ghostPaint(grabbed.Color))
	}

	return c.render(gridStyles())
}

// block fills rows top..bottom-1 of the grid area from column x and writes
// lines into it. Rows outside the grid area are clipped.
func (m Model) block(c *canvas, x, top, bottom int, fill rune, lines []string, p paint) {
	l := m.layout
	w := l.colWidth - 1
	for r := max(0, top); r < min(bottom, l.rows()); r++ {
		c.fill(x, l.top+r, w, 1, fill, p)
		if i := r - top; i < len(lines) {
			c.text(x, l.top+r, lines[i], w, p)
		}
	}
}
