// Package tui is the interactive week view. Mouse presses on events start a
// drag, motion updates the drop preview and release commits or cancels;
// clicks on empty cells and the keyboard open the event form.
package tui

import (
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"

	"github.com/idilsaglam/weekcal/internal/calendar"
	"github.com/idilsaglam/weekcal/internal/drag"
	appLog "github.com/idilsaglam/weekcal/internal/log"
	"github.com/idilsaglam/weekcal/internal/model"
	"github.com/idilsaglam/weekcal/internal/ui"
)

type Options struct {
	RowsPerHour int
	// WeekStart dates the day headers; zero shows weekday names only.
	WeekStart time.Time
}

type mode int

const (
	modeWeek mode = iota
	modeForm
)

type cellTarget struct{ day, hour int }

type Model struct {
	cal  *calendar.Calendar
	drag *drag.Controller
	opts Options

	layout        layout
	width, height int

	mode      mode
	form      eventForm
	selected  int
	cellPress mo.Option[cellTarget]

	status    string
	statusErr bool

	keys weekKeys
	help help.Model
}

func New(cal *calendar.Calendar, opts Options) Model {
	w, h := ui.Size()
	l := newLayout(w, fitRowsPerHour(opts.RowsPerHour, h))
	hm := help.New()
	hm.Styles.ShortKey = helpStyle
	hm.Styles.ShortDesc = helpStyle
	return Model{
		cal:    cal,
		drag:   drag.New(cal.Store(), l.rect()),
		opts:   opts,
		layout: l,
		width:  w,
		height: h,
		keys:   newWeekKeys(),
		help:   hm,
	}
}

// Run starts the program on the alternate screen with mouse motion reporting.
func Run(cal *calendar.Calendar, opts Options) error {
	p := tea.NewProgram(New(cal, opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.layout = newLayout(ws.Width, fitRowsPerHour(m.opts.RowsPerHour, ws.Height))
		m.drag.SetGrid(m.layout.rect())
		m.help.Width = ws.Width
		return m, nil
	}

	if m.mode == modeForm {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.updateMouse(msg), nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateMouse(msg tea.MouseMsg) Model {
	p, inside := m.layout.point(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if m.drag.Dragging() {
			return m
		}
		ev, onEvent := m.layout.hit(m.cal.Store().All(), p)
		switch msg.Button {
		case tea.MouseButtonLeft:
			if onEvent {
				m.selected = ev.ID
				m.drag.Press(ev, p, m.layout.origin(ev))
				m.setStatus(fmt.Sprintf("Moving %s", ev.Title))
				return m
			}
			if day, hour, ok := m.drag.CellTarget(p); ok && inside {
				m.cellPress = mo.Some(cellTarget{day, hour})
			}
		case tea.MouseButtonRight:
			if onEvent {
				return m.openEdit(ev.ID)
			}
		}

	case tea.MouseActionMotion:
		if m.drag.Dragging() {
			if pv, ok := m.drag.Move(p).Get(); ok {
				m.setStatus(fmt.Sprintf("Drop on %s %s-%s", model.WeekdayNames[pv.Day-1], pv.Start, pv.End))
			} else {
				m.setStatus("Release here to cancel")
			}
		}

	case tea.MouseActionRelease:
		target, pressed := m.cellPress.Get()
		m.cellPress = mo.None[cellTarget]()
		res := m.drag.Release()
		if res.Outcome != drag.Idle {
			m = m.finishDrag(res)
		}
		if res.SuppressClick || !pressed {
			return m
		}
		day, hour, hit := m.drag.CellTarget(p)
		if hit && inside && day == target.day && hour == target.hour {
			return m.openCreate(day, hour)
		}
	}
	return m
}

func (m Model) finishDrag(res drag.Result) Model {
	switch {
	case res.Err != nil:
		m.setError(res.Err)
	case res.Outcome == drag.Committed:
		ev := res.Event.MustGet()
		m.selected = ev.ID
		m.setStatus(fmt.Sprintf("Moved %s to %s %s-%s", ev.Title, model.WeekdayNames[ev.Day-1], ev.Start, ev.End))
	default:
		m.setStatus("")
	}
	return m
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// the held button owns the grabbed event until release
	if m.drag.Dragging() {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Create):
		return m.openCreate(calendar.DefaultDay, calendar.DefaultHour), nil
	case key.Matches(msg, m.keys.Edit):
		if m.selected != 0 {
			return m.openEdit(m.selected), nil
		}
	case key.Matches(msg, m.keys.Next):
		m.cycleSelection(1)
	case key.Matches(msg, m.keys.Prev):
		m.cycleSelection(-1)
	case key.Matches(msg, m.keys.Delete):
		if m.selected != 0 {
			if err := m.cal.Delete(m.selected); err != nil {
				m.setError(err)
			} else {
				m.setStatus("Deleted event")
				m.selected = 0
			}
		}
	}
	return m, nil
}

func (m *Model) cycleSelection(step int) {
	all := m.cal.Store().All()
	if len(all) == 0 {
		m.selected = 0
		return
	}
	i := slices.IndexFunc(all, func(ev model.Event) bool { return ev.ID == m.selected })
	switch {
	case i < 0 && step > 0:
		i = 0
	case i < 0:
		i = len(all) - 1
	default:
		i = (i + step + len(all)) % len(all)
	}
	m.selected = all[i].ID
	m.setStatus(all[i].Title)
}

func (m Model) openCreate(day, hour int) Model {
	m.form = newForm(m.cal.NewDraft(day, hour), mo.None[int]())
	m.mode = modeForm
	appLog.Debug("tui: create form opened", "day", day, "hour", hour)
	return m
}

func (m Model) openEdit(id int) Model {
	d, err := m.cal.EditDraft(id)
	if err != nil {
		m.setError(err)
		return m
	}
	m.selected = id
	m.form = newForm(d, mo.Some(id))
	m.mode = modeForm
	appLog.Debug("tui: edit form opened", "id", id)
	return m
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	f, action, cmd := m.form.update(msg)
	m.form = f
	switch action {
	case formCancel:
		m.mode = modeWeek
		m.setStatus("")
	case formSubmit:
		return m.submit(), nil
	}
	return m, cmd
}

func (m Model) submit() Model {
	d, fe := m.form.draft()
	if fe != nil {
		m.form.errs = fe
		return m
	}
	saved, fe, err := m.cal.Submit(d, m.form.editing)
	if fe != nil {
		m.form.errs = fe
		return m
	}
	if err != nil {
		m.setError(err)
		return m
	}
	m.mode = modeWeek
	m.selected = saved[0].ID
	if len(saved) == 1 {
		m.setStatus("Saved " + saved[0].Title)
	} else {
		m.setStatus(fmt.Sprintf("Saved %d events", len(saved)))
	}
	return m
}

func (m *Model) setStatus(s string) {
	m.status, m.statusErr = s, false
}

func (m *Model) setError(err error) {
	appLog.Error("tui: action failed", err)
	m.status, m.statusErr = err.Error(), true
}

func (m Model) View() string {
	if m.mode == modeForm {
		return m.form.view(m.width) + "\n" + m.help.View(m.form.keys)
	}
	status := successStyle.Render(m.status)
	if m.statusErr {
		status = errorStyle.Render(m.status)
	} else if m.status == "" {
		status = mutedStyle.Render(fmt.Sprintf("%d events", len(m.cal.Store().All())))
	}
	return m.renderGrid() + "\n" + status + "\n" + m.help.View(m.keys)
}
