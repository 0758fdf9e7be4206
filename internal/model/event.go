package model

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Displayable window of the week grid.
const (
	WindowStart = 8 * 60
	WindowEnd   = 16 * 60
	DaysPerWeek = 7
)

// DefaultOrganizer is used when an event is created without one.
const DefaultOrganizer = "You"

// DateLayout is the format of Recurrence.Until.
const DateLayout = "2006-01-02"

// Event is the domain model for a scheduled block on the week grid.
type Event struct {
	ID          int         `json:"id" yaml:"id,omitempty"`
	Title       string      `json:"title" yaml:"title"`
	Day         int         `json:"day" yaml:"day"`
	Start       Clock       `json:"startTime" yaml:"start"`
	End         Clock       `json:"endTime" yaml:"end"`
	Color       Color       `json:"color" yaml:"color"`
	Location    string      `json:"location,omitempty" yaml:"location,omitempty"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Organizer   string      `json:"organizer,omitempty" yaml:"organizer,omitempty"`
	Attendees   []string    `json:"attendees,omitempty" yaml:"attendees,omitempty"`
	Recurrence  *Recurrence `json:"recurrence,omitempty" yaml:"recurrence,omitempty"`
}

// Clone returns a deep copy so callers never share attendee slices or recurrence blocks.
func (e Event) Clone() Event {
	out := e
	out.Attendees = slices.Clone(e.Attendees)
	if e.Recurrence != nil {
		r := *e.Recurrence
		r.OnDays = slices.Clone(e.Recurrence.OnDays)
		out.Recurrence = &r
	}
	return out
}

// Duration in minutes; non-positive means the event is malformed.
func (e Event) Duration() int { return e.End.Minutes() - e.Start.Minutes() }

// InWindow reports whether c lies inside [08:00, 16:00].
func InWindow(c Clock) bool {
	m := c.Minutes()
	return m >= WindowStart && m <= WindowEnd
}

// Check verifies the invariants every stored event must hold.
func (e Event) Check() error {
	switch {
	case strings.TrimSpace(e.Title) == "":
		return fmt.Errorf("event %d: empty title", e.ID)
	case e.Day < 1 || e.Day > DaysPerWeek:
		return fmt.Errorf("event %d: day %d outside 1..%d", e.ID, e.Day, DaysPerWeek)
	case !InWindow(e.Start) || !InWindow(e.End):
		return fmt.Errorf("event %d: %s-%s outside the 08:00-16:00 window", e.ID, e.Start, e.End)
	case e.Duration() <= 0:
		return fmt.Errorf("event %d: end %s not after start %s", e.ID, e.End, e.Start)
	case !e.Color.Valid():
		return fmt.Errorf("event %d: unknown color %q", e.ID, string(e.Color))
	}
	return nil
}

// RepeatOption selects how an event repeats.
type RepeatOption string

const (
	RepeatNone     RepeatOption = "none"
	RepeatDaily    RepeatOption = "daily"
	RepeatWeekdays RepeatOption = "weekdays"
	RepeatWeekly   RepeatOption = "weekly"
	RepeatMonthly  RepeatOption = "monthly"
	RepeatYearly   RepeatOption = "yearly"
	RepeatCustom   RepeatOption = "custom"
)

// RepeatOptions lists the options in form order.
var RepeatOptions = []RepeatOption{
	RepeatNone, RepeatDaily, RepeatWeekdays, RepeatWeekly, RepeatMonthly, RepeatYearly, RepeatCustom,
}

func ParseRepeatOption(s string) (RepeatOption, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RepeatNone, nil
	}
	for _, o := range RepeatOptions {
		if string(o) == s {
			return o, nil
		}
	}
	return "", fmt.Errorf("unknown repeat option %q", s)
}

// Label is the human text shown in the form.
func (o RepeatOption) Label() string {
	switch o {
	case RepeatDaily:
		return "Daily"
	case RepeatWeekdays:
		return "Every weekday (Monday to Friday)"
	case RepeatWeekly:
		return "Weekly"
	case RepeatMonthly:
		return "Monthly"
	case RepeatYearly:
		return "Yearly"
	case RepeatCustom:
		return "Custom..."
	default:
		return "Does not repeat"
	}
}

// Recurrence describes how a base event fans out into occurrences.
// OnDays holds weekday indices, 0 = Sunday.
type Recurrence struct {
	Option    RepeatOption `json:"option" yaml:"option"`
	Until     string       `json:"until,omitempty" yaml:"until,omitempty"`
	Frequency int          `json:"frequency,omitempty" yaml:"frequency,omitempty"`
	OnDays    []int        `json:"onDays,omitempty" yaml:"on_days,omitempty"`
}

// Repeats is false for a nil block or option none.
func (r *Recurrence) Repeats() bool {
	return r != nil && r.Option != "" && r.Option != RepeatNone
}

// Step is the frequency, never less than 1.
func (r Recurrence) Step() int {
	if r.Frequency < 1 {
		return 1
	}
	return r.Frequency
}

// Weekdays returns OnDays as an ascending set of valid indices.
func (r Recurrence) Weekdays() []int {
	out := make([]int, 0, len(r.OnDays))
	for _, d := range r.OnDays {
		if d >= 0 && d < DaysPerWeek && !slices.Contains(out, d) {
			out = append(out, d)
		}
	}
	slices.Sort(out)
	return out
}

// UntilDate parses Until. ok is false when it is empty or malformed.
func (r Recurrence) UntilDate() (time.Time, bool) {
	if strings.TrimSpace(r.Until) == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, strings.TrimSpace(r.Until))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// WeekdayNames are indexed by weekday index (0 = Sunday).
var WeekdayNames = [DaysPerWeek]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
