package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// paint indexes a style in the renderer's palette.
type paint int

type cell struct {
	r rune
	p paint
}

// canvas is a fixed grid of styled runes. Writes outside it are dropped.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([][]cell, h)}
	for y := range c.cells {
		c.cells[y] = make([]cell, w)
		for x := range c.cells[y] {
			c.cells[y][x] = cell{r: ' '}
		}
	}
	return c
}

func (c *canvas) set(x, y int, r rune, p paint) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = cell{r: r, p: p}
}

func (c *canvas) fill(x, y, w, h int, r rune, p paint) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			c.set(x+dx, y+dy, r, p)
		}
	}
}

// text writes s from x, clipped to maxw runes.
func (c *canvas) text(x, y int, s string, maxw int, p paint) {
	i := 0
	for _, r := range s {
		if i >= maxw {
			return
		}
		c.set(x+i, y, r, p)
		i++
	}
}

// render joins runs of equal paint so each run is styled once.
func (c *canvas) render(styles []lipgloss.Style) string {
	var b strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].p == row[start].p {
				continue
			}
			run := make([]rune, 0, x-start)
			for _, cl := range row[start:x] {
				run = append(run, cl.r)
			}
			b.WriteString(styleFor(styles, row[start].p).Render(string(run)))
			start = x
		}
	}
	return b.String()
}

func styleFor(styles []lipgloss.Style, p paint) lipgloss.Style {
	if int(p) < 0 || int(p) >= len(styles) {
		return lipgloss.NewStyle()
	}
	return styles[p]
}
