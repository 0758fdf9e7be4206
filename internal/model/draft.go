package model

import (
	"slices"
	"strings"

	"github.com/samber/mo"
)

// Draft is what the event form submits. Start and End are optional so that a
// missing value can be reported instead of silently defaulted.
type Draft struct {
	Title       string
	Day         int
	Start       mo.Option[Clock]
	End         mo.Option[Clock]
	Color       Color
	Location    string
	Description string
	Organizer   string
	Attendees   []string
	Recurrence  Recurrence
}

// DraftOf pre-fills a form from a stored event.
func DraftOf(ev Event) Draft {
	d := Draft{
		Title:       ev.Title,
		Day:         ev.Day,
		Start:       mo.Some(ev.Start),
		End:         mo.Some(ev.End),
		Color:       ev.Color,
		Location:    ev.Location,
		Description: ev.Description,
		Organizer:   ev.Organizer,
		Attendees:   slices.Clone(ev.Attendees),
		Recurrence:  Recurrence{Option: RepeatNone, Frequency: 1},
	}
	if ev.Recurrence != nil {
		d.Recurrence = *ev.Recurrence
		d.Recurrence.OnDays = slices.Clone(ev.Recurrence.OnDays)
	}
	return d
}

// Event materializes the draft under the given id. Missing clocks become zero
// values; callers validate first.
func (d Draft) Event(id int) Event {
	ev := Event{
		ID:          id,
		Title:       d.Title,
		Day:         d.Day,
		Start:       d.Start.OrEmpty(),
		End:         d.End.OrEmpty(),
		Color:       d.Color,
		Location:    d.Location,
		Description: d.Description,
		Organizer:   d.Organizer,
		Attendees:   slices.Clone(d.Attendees),
	}
	if ev.Organizer == "" {
		ev.Organizer = DefaultOrganizer
	}
	if !ev.Color.Valid() {
		ev.Color = Blue
	}
	if d.Recurrence.Repeats() {
		r := d.Recurrence
		r.OnDays = r.Weekdays()
		ev.Recurrence = &r
	}
	return ev
}

// AddAttendee appends a trimmed, non-empty name. Duplicates are allowed.
func (d *Draft) AddAttendee(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	d.Attendees = append(d.Attendees, name)
	return true
}

// RemoveAttendee drops the attendee at index i.
func (d *Draft) RemoveAttendee(i int) bool {
	if i < 0 || i >= len(d.Attendees) {
		return false
	}
	d.Attendees = slices.Delete(d.Attendees, i, i+1)
	return true
}

// SetStart moves the start to c. When the draft had a positive duration the
// end moves with it so the duration is kept.
func (d *Draft) SetStart(c Clock) {
	start, hasStart := d.Start.Get()
	end, hasEnd := d.End.Get()
	d.Start = mo.Some(c)
	if hasStart && hasEnd {
		if dur := end.Minutes() - start.Minutes(); dur > 0 {
			d.End = mo.Some(c.Add(dur))
		}
	}
}
