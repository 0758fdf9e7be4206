package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"

	"github.com/idilsaglam/weekcal/internal/model"
	"github.com/idilsaglam/weekcal/internal/validate"
)

type field int

const (
	fieldTitle field = iota
	fieldDay
	fieldStart
	fieldEnd
	fieldColor
	fieldLocation
	fieldDescription
	fieldOrganizer
	fieldAttendees
	fieldRepeat
	fieldUntil
	fieldFrequency
	fieldRepeatOn
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldTitle:       "Title",
	fieldDay:         "Day",
	fieldStart:       "Start",
	fieldEnd:         "End",
	fieldColor:       "Color",
	fieldLocation:    "Location",
	fieldDescription: "Description",
	fieldOrganizer:   "Organizer",
	fieldAttendees:   "Attendees",
	fieldRepeat:      "Repeat",
	fieldUntil:       "Until",
	fieldFrequency:   "Every",
	fieldRepeatOn:    "On",
}

// error keys for the form, beyond the validator's
var fieldErrorKey = map[field]validate.Field{
	fieldTitle:     validate.FieldTitle,
	fieldStart:     validate.FieldStartTime,
	fieldEnd:       validate.FieldEndTime,
	fieldUntil:     validate.FieldRepeatUntil,
	fieldRepeatOn:  validate.FieldRepeatOn,
	fieldFrequency: "frequency",
}

type formAction int

const (
	formNone formAction = iota
	formSubmit
	formCancel
)

// eventForm is the create/edit dialog. Text fields are textinputs; day, color,
// repeat option and weekdays are selectors changed with left/right.
type eventForm struct {
	editing mo.Option[int]
	focus   field
	inputs  map[field]textinput.Model

	day       int
	color     model.Color
	repeat    model.RepeatOption
	onDays    [model.DaysPerWeek]bool
	dayCursor int
	attendees []string

	// last valid start, used to keep the duration when start changes
	lastStart mo.Option[model.Clock]

	errs validate.FieldErrors
	keys formKeys
}

func newForm(d model.Draft, editing mo.Option[int]) eventForm {
	f := eventForm{
		editing:   editing,
		inputs:    make(map[field]textinput.Model),
		day:       d.Day,
		color:     d.Color,
		repeat:    d.Recurrence.Option,
		attendees: slices.Clone(d.Attendees),
		lastStart: d.Start,
		keys:      newFormKeys(),
	}
	if f.day < 1 || f.day > model.DaysPerWeek {
		f.day = 1
	}
	if f.repeat == "" {
		f.repeat = model.RepeatNone
	}
	if !f.color.Valid() {
		f.color = model.Blue
	}
	for _, wd := range d.Recurrence.Weekdays() {
		f.onDays[wd] = true
	}

	freq := ""
	if d.Recurrence.Frequency > 0 {
		freq = strconv.Itoa(d.Recurrence.Frequency)
	}
	values := map[field]string{
		fieldTitle:       d.Title,
		fieldStart:       clockText(d.Start),
		fieldEnd:         clockText(d.End),
		fieldLocation:    d.Location,
		fieldDescription: d.Description,
		fieldOrganizer:   d.Organizer,
		fieldAttendees:   "",
		fieldUntil:       d.Recurrence.Until,
		fieldFrequency:   freq,
	}
	placeholders := map[field]string{
		fieldTitle:     "Event title",
		fieldStart:     "HH:MM",
		fieldEnd:       "HH:MM",
		fieldAttendees: "Add attendee and press enter",
		fieldUntil:     "YYYY-MM-DD",
		fieldFrequency: "1",
	}
	for fl, v := range values {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 200
		ti.Placeholder = placeholders[fl]
		ti.SetValue(v)
		f.inputs[fl] = ti
	}
	f.setFocus(fieldTitle)
	return f
}

func clockText(c mo.Option[model.Clock]) string {
	if v, ok := c.Get(); ok {
		return v.String()
	}
	return ""
}

func (f eventForm) title() string {
	if f.editing.IsPresent() {
		return "Edit event"
	}
	return "Create event"
}

func (f eventForm) repeats() bool { return f.repeat != "" && f.repeat != model.RepeatNone }

func (f eventForm) visible(fl field) bool {
	switch fl {
	case fieldUntil, fieldFrequency:
		return f.repeats()
	case fieldRepeatOn:
		return f.repeat == model.RepeatWeekly || f.repeat == model.RepeatCustom
	}
	return fl >= 0 && fl < fieldCount
}

func (f *eventForm) setFocus(fl field) {
	for k, ti := range f.inputs {
		ti.Blur()
		f.inputs[k] = ti
	}
	f.focus = fl
	if ti, ok := f.inputs[fl]; ok {
		ti.Focus()
		ti.CursorEnd()
		f.inputs[fl] = ti
	}
}

func (f *eventForm) move(step int) {
	next := f.focus
	for i := field(0); i < fieldCount; i++ {
		next = (next + field(step) + fieldCount) % fieldCount
		if f.visible(next) {
			f.setFocus(next)
			return
		}
	}
}

func (f eventForm) update(msg tea.Msg) (eventForm, formAction, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, formNone, nil
	}
	switch {
	case key.Matches(km, f.keys.Cancel):
		return f, formCancel, nil
	case key.Matches(km, f.keys.Submit):
		return f, formSubmit, nil
	case key.Matches(km, f.keys.Next):
		f.move(1)
		return f, formNone, nil
	case key.Matches(km, f.keys.Prev):
		f.move(-1)
		return f, formNone, nil
	case key.Matches(km, f.keys.Add):
		if f.focus == fieldAttendees && strings.TrimSpace(f.inputs[fieldAttendees].Value()) != "" {
			f.addAttendee()
			return f, formNone, nil
		}
		return f, formSubmit, nil
	case key.Matches(km, f.keys.RemoveOne) && f.focus == fieldAttendees:
		if n := len(f.attendees); n > 0 {
			f.attendees = f.attendees[:n-1]
		}
		return f, formNone, nil
	}

	if f.cycle(km) {
		return f, formNone, nil
	}

	ti, ok := f.inputs[f.focus]
	if !ok {
		return f, formNone, nil
	}
	var cmd tea.Cmd
	ti, cmd = ti.Update(km)
	f.inputs[f.focus] = ti
	if f.focus == fieldStart {
		f.keepDuration()
	}
	return f, formNone, cmd
}

// cycle handles the selector fields. It reports whether km was consumed.
func (f *eventForm) cycle(km tea.KeyMsg) bool {
	step := 0
	switch {
	case key.Matches(km, f.keys.Left):
		step = -1
	case key.Matches(km, f.keys.Right):
		step = 1
	}
	switch f.focus {
	case fieldDay:
		if step != 0 {
			f.day = (f.day-1+step+model.DaysPerWeek)%model.DaysPerWeek + 1
		}
	case fieldColor:
		if step != 0 {
			i := slices.Index(model.Palette, f.color)
			n := len(model.Palette)
			f.color = model.Palette[(i+step+n)%n]
		}
	case fieldRepeat:
		if step != 0 {
			i := slices.Index(model.RepeatOptions, f.repeat)
			n := len(model.RepeatOptions)
			f.repeat = model.RepeatOptions[(i+step+n)%n]
		}
	case fieldRepeatOn:
		if step != 0 {
			f.dayCursor = (f.dayCursor + step + model.DaysPerWeek) % model.DaysPerWeek
		} else if key.Matches(km, f.keys.Toggle) {
			f.onDays[f.dayCursor] = !f.onDays[f.dayCursor]
		} else {
			return false
		}
	default:
		return false
	}
	return true
}

func (f *eventForm) addAttendee() {
	ti := f.inputs[fieldAttendees]
	d := model.Draft{Attendees: f.attendees}
	if d.AddAttendee(ti.Value()) {
		f.attendees = d.Attendees
	}
	ti.SetValue("")
	f.inputs[fieldAttendees] = ti
}

func (f *eventForm) keepDuration() {
	start, err := model.ParseClock(f.inputs[fieldStart].Value())
	if err != nil {
		return
	}
	prev, hadPrev := f.lastStart.Get()
	f.lastStart = mo.Some(start)
	if !hadPrev || prev == start {
		return
	}
	end, err := model.ParseClock(f.inputs[fieldEnd].Value())
	if err != nil {
		return
	}
	d := model.Draft{Start: mo.Some(prev), End: mo.Some(end)}
	d.SetStart(start)
	ti := f.inputs[fieldEnd]
	ti.SetValue(clockText(d.End))
	f.inputs[fieldEnd] = ti
}

// draft reads the form back. Malformed text is reported against its field and
// the rest of the draft is still built so the validator can add its messages.
func (f eventForm) draft() (model.Draft, validate.FieldErrors) {
	bad := validate.FieldErrors{}
	value := func(fl field) string { return strings.TrimSpace(f.inputs[fl].Value()) }
	clock := func(fl field) mo.Option[model.Clock] {
		v := value(fl)
		if v == "" {
			return mo.None[model.Clock]()
		}
		c, err := model.ParseClock(v)
		if err != nil {
			bad.Add(fieldErrorKey[fl], "Use HH:MM")
			return mo.None[model.Clock]()
		}
		return mo.Some(c)
	}

	d := model.Draft{
		Title:       value(fieldTitle),
		Day:         f.day,
		Start:       clock(fieldStart),
		End:         clock(fieldEnd),
		Color:       f.color,
		Location:    value(fieldLocation),
		Description: value(fieldDescription),
		Organizer:   value(fieldOrganizer),
		Attendees:   slices.Clone(f.attendees),
		Recurrence:  model.Recurrence{Option: f.repeat, Frequency: 1},
	}
	if pending := value(fieldAttendees); pending != "" {
		d.AddAttendee(pending)
	}
	if f.repeats() {
		d.Recurrence.Until = value(fieldUntil)
		if d.Recurrence.Until != "" {
			if _, ok := d.Recurrence.UntilDate(); !ok {
				bad.Add(validate.FieldRepeatUntil, "Use YYYY-MM-DD")
			}
		}
		if v := value(fieldFrequency); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				bad.Add(fieldErrorKey[fieldFrequency], "Enter a whole number of at least 1")
			} else {
				d.Recurrence.Frequency = n
			}
		}
		for wd, on := range f.onDays {
			if on {
				d.Recurrence.OnDays = append(d.Recurrence.OnDays, wd)
			}
		}
	}

	for fl, msg := range validate.Validate(d) {
		bad.Add(fl, msg)
	}
	if bad.OK() {
		return d, nil
	}
	return d, bad
}

func (f eventForm) view(width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(f.title()))
	b.WriteString("\n\n")
	for fl := field(0); fl < fieldCount; fl++ {
		if !f.visible(fl) {
			continue
		}
		label := fmt.Sprintf("%-12s", fieldLabels[fl])
		if fl == f.focus {
			label = focusStyle.Render(label)
		} else {
			label = mutedStyle.Render(label)
		}
		b.WriteString(label + f.fieldView(fl) + "\n")
		if k, ok := fieldErrorKey[fl]; ok {
			if msg, bad := f.errs[k]; bad {
				b.WriteString(strings.Repeat(" ", 12) + errorStyle.Render(msg) + "\n")
			}
		}
	}
	box := formBorder
	if width > 4 {
		box = box.Width(min(width-4, 72))
	}
	return box.Render(strings.TrimRight(b.String(), "\n"))
}

func (f eventForm) fieldView(fl field) string {
	switch fl {
	case fieldDay:
		return "‹ " + model.WeekdayNames[f.day-1] + " ›"
	case fieldColor:
		return "‹ " + colorStyle(f.color).Render(" "+string(f.color)+" ") + " ›"
	case fieldRepeat:
		return "‹ " + f.repeat.Label() + " ›"
	case fieldRepeatOn:
		parts := make([]string, model.DaysPerWeek)
		for i, name := range model.WeekdayNames {
			box := "[ ]"
			if f.onDays[i] {
				box = "[x]"
			}
			s := box + " " + name[:3]
			if fl == f.focus && i == f.dayCursor {
				s = focusStyle.Render(s)
			}
			parts[i] = s
		}
		return strings.Join(parts, " ")
	case fieldAttendees:
		out := f.inputs[fl].View()
		if len(f.attendees) > 0 {
			out = strings.Join(f.attendees, ", ") + "  " + out
		}
		return out
	}
	return f.inputs[fl].View()
}
