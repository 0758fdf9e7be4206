package recurrence

import (
	"time"

	"github.com/teambition/rrule-go"

	"github.com/idilsaglam/weekcal/internal/model"
)

var weekdays = [model.DaysPerWeek]rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

// Expanded reports whether Expand materializes occurrences for rec. Events
// whose rule is not expanded keep the rule itself.
func Expanded(rec *model.Recurrence) bool {
	if !rec.Repeats() {
		return false
	}
	switch rec.Option {
	case model.RepeatDaily, model.RepeatWeekdays, model.RepeatWeekly:
		return true
	}
	return false
}

// Rule builds the RFC 5545 rule for a recurrence that Expand leaves as a single
// record. ok is false for options that are expanded or do not repeat.
func Rule(rec *model.Recurrence, start time.Time) (*rrule.RRule, bool) {
	if !rec.Repeats() || Expanded(rec) {
		return nil, false
	}
	opt := rrule.ROption{
		Interval: rec.Step(),
		Dtstart:  start,
	}
	switch rec.Option {
	case model.RepeatMonthly:
		opt.Freq = rrule.MONTHLY
	case model.RepeatYearly:
		opt.Freq = rrule.YEARLY
	case model.RepeatCustom:
		opt.Freq = rrule.DAILY
		if days := rec.Weekdays(); len(days) > 0 {
			opt.Freq = rrule.WEEKLY
			for _, d := range days {
				opt.Byweekday = append(opt.Byweekday, weekdays[d])
			}
		}
	default:
		return nil, false
	}
	if until, ok := rec.UntilDate(); ok {
		// Inclusive of the whole until day.
		opt.Until = time.Date(until.Year(), until.Month(), until.Day(), 23, 59, 59, 0, start.Location())
	}
	r, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, false
	}
	return r, true
}
