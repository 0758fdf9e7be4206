// Package ics moves the week in and out of iCalendar.
//
// Export writes one VEVENT per stored event, dated relative to the configured
// week start. Options the expander leaves unexpanded are written with an RRULE
// so other clients can evaluate them. Import reads VEVENTs back into the week.
package ics

import (
	"fmt"
	"io"
	"time"

	ical "github.com/emersion/go-ical"
	"github.com/google/uuid"

	appLog "github.com/idilsaglam/weekcal/internal/log"
	"github.com/idilsaglam/weekcal/internal/model"
	"github.com/idilsaglam/weekcal/internal/recurrence"
)

const ProductID = "-//weekcal//weekcal 1.0//EN"

var uidSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/idilsaglam/weekcal"))

// UID is stable for the same event id in the same week.
func UID(weekStart time.Time, id int) string {
	name := fmt.Sprintf("%s/%d", weekStart.Format(model.DateLayout), id)
	return uuid.NewSHA1(uidSpace, []byte(name)).String() + "@weekcal"
}

// SlotTime is the wall-clock instant of c on the given 1-based day.
func SlotTime(weekStart time.Time, day int, c model.Clock) time.Time {
	y, m, d := weekStart.Date()
	return time.Date(y, m, d+day-1, c.Hour, c.Minute, 0, 0, weekStart.Location())
}

// Calendar builds the VCALENDAR for events. stamp becomes every DTSTAMP.
func Calendar(events []model.Event, weekStart, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)

	for _, ev := range events {
		cal.Children = append(cal.Children, vevent(ev, weekStart, stamp).Component)
	}
	return cal
}

func vevent(ev model.Event, weekStart, stamp time.Time) *ical.Event {
	start := SlotTime(weekStart, ev.Day, ev.Start)

	out := ical.NewEvent()
	out.Props.SetText(ical.PropUID, UID(weekStart, ev.ID))
	out.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
	out.Props.SetDateTime(ical.PropDateTimeStart, start.UTC())
	out.Props.SetDateTime(ical.PropDateTimeEnd, SlotTime(weekStart, ev.Day, ev.End).UTC())
	out.Props.SetText(ical.PropSummary, ev.Title)
	if ev.Location != "" {
		out.Props.SetText(ical.PropLocation, ev.Location)
	}
	if ev.Description != "" {
		out.Props.SetText(ical.PropDescription, ev.Description)
	}
	out.Props.SetText(ical.PropColor, string(ev.Color))

	if rule, ok := recurrence.Rule(ev.Recurrence, start); ok {
		prop := ical.NewProp(ical.PropRecurrenceRule)
		prop.Value = rule.OrigOptions.RRuleString()
		out.Props.Set(prop)
	}
	return out
}

// Encode writes events as an iCalendar stream.
func Encode(w io.Writer, events []model.Event, weekStart, stamp time.Time) error {
	if err := ical.NewEncoder(w).Encode(Calendar(events, weekStart, stamp)); err != nil {
		appLog.Error("ics encode failed", err, "event_count", len(events))
		return fmt.Errorf("encode ics: %w", err)
	}
	appLog.Info("ics encode completed", "event_count", len(events))
	return nil
}
