package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/weekcal/internal/calendar"
	"github.com/idilsaglam/weekcal/internal/drag"
	"github.com/idilsaglam/weekcal/internal/model"
	"github.com/idilsaglam/weekcal/internal/store/memstore"
	"github.com/idilsaglam/weekcal/internal/validate"
)

// With an 80 column terminal and four rows per hour every column is 10 cells
// wide, day d starts at x = 10*d and the 08:00 row is y = 2. Each row is a
// quarter hour.
func cellOf(day int, c model.Clock) (x, y int) {
	return day*10 + 5, headerRows + (c.Minutes()-8*60)/15
}

func newTestModel(t *testing.T, seed ...model.Event) (Model, *calendar.Calendar) {
	t.Helper()
	s, err := memstore.New(seed...)
	require.NoError(t, err)
	cal := calendar.New(s, model.Blue)
	m := New(cal, Options{RowsPerHour: 4, WeekStart: time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)})
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 50})
	return m, cal
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func mouse(x, y int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var planning = model.Event{
	ID: 15, Title: "Product Planning", Day: 1, Start: model.At(14, 0), End: model.At(15, 30),
	Color: model.Pink, Location: "Strategy Room", Organizer: "Product Manager",
}

func TestDragCommitsThroughMouse(t *testing.T) {
	m, cal := newTestModel(t, planning)

	x, y := cellOf(1, model.At(14, 0))
	m = send(t, m, mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft))
	require.Equal(t, drag.Dragging, m.drag.State())

	x, y = cellOf(3, model.At(9, 15))
	m = send(t, m, mouse(x, y, tea.MouseActionMotion, tea.MouseButtonLeft))
	pv, ok := m.drag.Preview().Get()
	require.True(t, ok)
	assert.Equal(t, 3, pv.Day)
	assert.Contains(t, m.View(), "Drop on Tuesday 09:15-10:45")

	m = send(t, m, mouse(x, y, tea.MouseActionRelease, tea.MouseButtonLeft))
	assert.Equal(t, drag.Idle, m.drag.State())
	assert.Equal(t, modeWeek, m.mode, "a drag never opens the form")

	got, _ := cal.Store().Get(15)
	assert.Equal(t, 3, got.Day)
	assert.Equal(t, "09:15", got.Start.String())
	assert.Equal(t, "10:45", got.End.String())
	assert.Contains(t, m.status, "Moved Product Planning")
}

func TestDragReleasedOffGridCancels(t *testing.T) {
	m, cal := newTestModel(t, planning)

	x, y := cellOf(1, model.At(14, 30))
	m = send(t, m, mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft))
	m = send(t, m, mouse(120, 10, tea.MouseActionMotion, tea.MouseButtonLeft))
	assert.True(t, m.drag.Preview().IsAbsent())
	m = send(t, m, mouse(120, 10, tea.MouseActionRelease, tea.MouseButtonLeft))

	got, _ := cal.Store().Get(15)
	assert.Equal(t, planning, got)
	assert.Equal(t, drag.Idle, m.drag.State())
}

func TestDragPreviewClampsEnd(t *testing.T) {
	m, cal := newTestModel(t, planning)

	x, y := cellOf(1, model.At(14, 0))
	m = send(t, m, mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft))
	x, y = cellOf(2, model.At(15, 0))
	m = send(t, m, mouse(x, y, tea.MouseActionMotion, tea.MouseButtonLeft))
	m = send(t, m, mouse(x, y, tea.MouseActionRelease, tea.MouseButtonLeft))

	got, _ := cal.Store().Get(15)
	assert.Equal(t, 2, got.Day)
	assert.Equal(t, "15:00", got.Start.String())
	assert.Equal(t, "16:00", got.End.String())
}

func TestClickEmptyCellOpensCreate(t *testing.T) {
	m, cal := newTestModel(t, planning)

	x, y := cellOf(4, model.At(11, 0))
	m = send(t, m, mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft))
	m = send(t, m, mouse(x, y, tea.MouseActionRelease, tea.MouseButtonLeft))
	require.Equal(t, modeForm, m.mode)
	assert.True(t, m.form.editing.IsAbsent())
	assert.Equal(t, 4, m.form.day)
	assert.Equal(t, "11:00", m.form.inputs[fieldStart].Value())
	assert.Equal(t, "12:00", m.form.inputs[fieldEnd].Value())

	m = send(t, m, runes("Demo"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Equal(t, modeWeek, m.mode)

	created, ok := cal.Store().Get(16)
	require.True(t, ok)
	assert.Equal(t, "Demo", created.Title)
	assert.Equal(t, 4, created.Day)
	assert.Equal(t, 16, m.selected)
}

func TestPressOnEventDoesNotOpenForm(t *testing.T) {
	m, _ := newTestModel(t, planning)

	x, y := cellOf(1, model.At(14, 0))
	m = send(t, m, mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft))
	m = send(t, m, mouse(x, y, tea.MouseActionRelease, tea.MouseButtonLeft))
	assert.Equal(t, modeWeek, m.mode)
	assert.Equal(t, 15, m.selected)
}

func TestKeysIgnoredWhileDragging(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("e"), {Type: tea.KeyEnter}, runes("c"), runes("d"), {Type: tea.KeyTab}} {
		t.Run(k.String(), func(t *testing.T) {
			m, cal := newTestModel(t, planning)

			x, y := cellOf(1, model.At(14, 0))
			m = send(t, m, mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft))
			require.Equal(t, drag.Dragging, m.drag.State())

			m = send(t, m, k)
			assert.Equal(t, modeWeek, m.mode)
			assert.Equal(t, drag.Dragging, m.drag.State())

			m = send(t, m, mouse(x, y, tea.MouseActionRelease, tea.MouseButtonLeft))
			assert.Equal(t, modeWeek, m.mode)
			assert.Equal(t, drag.Idle, m.drag.State())
			assert.Equal(t, 15, m.selected)

			got, ok := cal.Store().Get(15)
			require.True(t, ok)
			assert.Equal(t, planning, got)
			assert.Contains(t, m.View(), "14:00-15:")

			m = send(t, m, mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft))
			assert.Equal(t, drag.Dragging, m.drag.State())
		})
	}
}

func TestQuitWhileDragging(t *testing.T) {
	m, _ := newTestModel(t, planning)

	x, y := cellOf(1, model.At(14, 0))
	m = send(t, m, mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft))
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestShortTerminalUsesCoarserRows(t *testing.T) {
	m, _ := newTestModel(t, planning)
	assert.Equal(t, 4, m.layout.rowsPerHour)

	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, 2, m.layout.rowsPerHour)
}

func TestRightClickOpensEdit(t *testing.T) {
	m, cal := newTestModel(t, planning)

	x, y := cellOf(1, model.At(15, 0))
	m = send(t, m, mouse(x, y, tea.MouseActionPress, tea.MouseButtonRight))
	require.Equal(t, modeForm, m.mode)
	assert.Equal(t, 15, m.form.editing.MustGet())
	assert.Equal(t, "Product Planning", m.form.inputs[fieldTitle].Value())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlU})
	m = send(t, m, runes("Roadmap"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, modeWeek, m.mode)

	got, _ := cal.Store().Get(15)
	want := planning
	want.Title = "Roadmap"
	assert.Equal(t, want, got)
	assert.Len(t, cal.Store().All(), 1)
}

func TestInvalidSubmitKeepsFormOpen(t *testing.T) {
	m, cal := newTestModel(t)

	m = send(t, m, runes("c"))
	require.Equal(t, modeForm, m.mode)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeForm, m.mode)
	assert.Contains(t, m.form.errs, validate.FieldTitle)
	assert.Contains(t, m.View(), "Title is required")
	assert.Empty(t, cal.Store().All())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeWeek, m.mode)
	assert.Empty(t, cal.Store().All())
}

func TestKeyboardSelectionAndDelete(t *testing.T) {
	other := model.Event{ID: 3, Title: "Client Call", Day: 2, Start: model.At(10, 0), End: model.At(11, 0), Color: model.Yellow}
	m, cal := newTestModel(t, planning, other)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 15, m.selected)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 3, m.selected)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 15, m.selected)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 3, m.selected)

	m = send(t, m, runes("e"))
	require.Equal(t, modeForm, m.mode)
	assert.Equal(t, 3, m.form.editing.MustGet())
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	m = send(t, m, runes("d"))
	_, ok := cal.Store().Get(3)
	assert.False(t, ok)
	assert.Zero(t, m.selected)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewShowsWeek(t *testing.T) {
	m, _ := newTestModel(t, planning)
	view := m.View()
	assert.Contains(t, view, "week of Sun 2 Mar 2025")
	assert.Contains(t, view, "Wed 5")
	assert.Contains(t, view, "08:00")
	assert.Contains(t, view, "16:00")
	assert.Contains(t, view, "Product P")
	assert.Contains(t, view, "14:00-15:")
}
