package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/weekcal/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	focusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)

	formBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

var colorHex = map[model.Color]string{
	model.Blue:   "#3b82f6",
	model.Green:  "#22c55e",
	model.Purple: "#a855f7",
	model.Yellow: "#eab308",
	model.Red:    "#ef4444",
	model.Pink:   "#ec4899",
	model.Indigo: "#6366f1",
	model.Teal:   "#14b8a6",
	model.Orange: "#f97316",
	model.Cyan:   "#06b6d4",
}

// Fixed paints; each palette colour then gets an event, preview, ghost and
// selected paint starting at paintColors.
const (
	paintBlank paint = iota
	paintLine
	paintLabel
	paintHeader
	paintColors
)

const paintsPerColor = 4

func eventPaint(c model.Color) paint    { return colorPaint(c, 0) }
func previewPaint(c model.Color) paint  { return colorPaint(c, 1) }
func ghostPaint(c model.Color) paint    { return colorPaint(c, 2) }
func selectedPaint(c model.Color) paint { return colorPaint(c, 3) }

func colorPaint(c model.Color, kind int) paint {
	for i, pc := range model.Palette {
		if pc == c {
			return paintColors + paint(i*paintsPerColor+kind)
		}
	}
	return paintColors + paint(kind)
}

// gridStyles is indexed by paint.
func gridStyles() []lipgloss.Style {
	out := []lipgloss.Style{
		paintBlank:  lipgloss.NewStyle(),
		paintLine:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		paintLabel:  mutedStyle,
		paintHeader: titleStyle,
	}
	white := lipgloss.Color("#ffffff")
	for _, c := range model.Palette {
		hex := lipgloss.Color(colorHex[c])
		out = append(out,
			lipgloss.NewStyle().Background(hex).Foreground(white),
			lipgloss.NewStyle().Foreground(hex),
			lipgloss.NewStyle().Background(hex).Foreground(white).Faint(true),
			lipgloss.NewStyle().Background(hex).Foreground(white).Bold(true).Underline(true),
		)
	}
	return out
}

func colorStyle(c model.Color) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(colorHex[c])).Foreground(lipgloss.Color("#ffffff"))
}
