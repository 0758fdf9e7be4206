package ics

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	appLog "github.com/idilsaglam/weekcal/internal/log"
	"github.com/idilsaglam/weekcal/internal/model"
)

// Decode reads the VEVENTs of r that start inside the week beginning at
// weekStart and fit the displayed window. Returned events carry no id; the
// store assigns them. Recurrence rules are not carried over.
func Decode(r io.Reader, weekStart time.Time) ([]model.Event, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		appLog.Error("ics parse failed", err)
		return nil, fmt.Errorf("parse ics: %w", err)
	}

	out := make([]model.Event, 0)
	for _, ve := range cal.Events() {
		ev, perr := toEvent(ve, weekStart)
		if perr != nil {
			// Skip this one, keep the rest.
			appLog.Debug("ics vevent skipped", "uid", propValue(ve, ical.ComponentPropertyUniqueId), "reason", perr.Error())
			continue
		}
		out = append(out, ev)
	}
	appLog.Info("ics parse completed", "event_count", len(out))
	return out, nil
}

func toEvent(ve *ical.VEvent, weekStart time.Time) (model.Event, error) {
	start, err := ve.GetStartAt()
	if err != nil {
		return model.Event{}, err
	}
	end, err := ve.GetEndAt()
	if err != nil {
		return model.Event{}, err
	}
	if dt := ve.GetProperty(ical.ComponentPropertyDtStart); dt != nil && !strings.Contains(dt.Value, "T") {
		return model.Event{}, errors.New("all-day event")
	}
	start = start.In(weekStart.Location())
	end = end.In(weekStart.Location())

	day := daysBetween(weekStart, start) + 1
	if day < 1 || day > model.DaysPerWeek {
		return model.Event{}, errors.New("outside week")
	}
	if daysBetween(start, end) != 0 {
		return model.Event{}, errors.New("spans days")
	}

	ev := model.Event{
		Title:       propValue(ve, ical.ComponentPropertySummary),
		Day:         day,
		Start:       model.At(start.Hour(), start.Minute()),
		End:         model.At(end.Hour(), end.Minute()),
		Location:    propValue(ve, ical.ComponentPropertyLocation),
		Description: propValue(ve, ical.ComponentPropertyDescription),
		Organizer:   model.DefaultOrganizer,
		Color:       model.Blue,
	}
	if c, err := model.ParseColor(propValue(ve, ical.ComponentProperty("COLOR"))); err == nil {
		ev.Color = c
	}
	if ev.Title == "" {
		ev.Title = "(untitled)"
	}
	if err := ev.Check(); err != nil {
		return model.Event{}, err
	}
	return ev, nil
}

func propValue(ve *ical.VEvent, p ical.ComponentProperty) string {
	if prop := ve.GetProperty(p); prop != nil {
		return prop.Value
	}
	return ""
}

// daysBetween counts calendar days from a to b, ignoring clock and DST shifts.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}
