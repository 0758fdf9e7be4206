// Package recurrence fans a repeating base event out into concrete occurrences.
//
// Expansion is bounded: at most MaxOccurrences records are produced
// whatever the until date says, and monthly, yearly and custom rules are not
// expanded at all. Rule renders those unexpanded options as RFC 5545 rules for
// export.
package recurrence

import (
	appLog "github.com/idilsaglam/weekcal/internal/log"
	"github.com/idilsaglam/weekcal/internal/model"
)

// MaxOccurrences caps every expansion, base occurrence included.
const MaxOccurrences = 10

// Expand returns the base event followed by its generated occurrences. Generated
// ids start at base.ID and are unique within the batch; the caller picks a base
// id that does not collide with the store.
func Expand(base model.Event) []model.Event {
	out := []model.Event{base.Clone()}
	rec := base.Recurrence
	if !rec.Repeats() {
		return out
	}

	switch rec.Option {
	case model.RepeatDaily:
		step := rec.Step()
		for i := 1; i <= MaxOccurrences && len(out) < MaxOccurrences; i++ {
			out = append(out, occurrence(base, base.ID+i, shiftDay(base.Day, i*step)))
		}
	case model.RepeatWeekdays:
		for i := 1; i <= MaxOccurrences && len(out) < MaxOccurrences; i++ {
			day := shiftDay(base.Day, i)
			if isWeekday(day) {
				out = append(out, occurrence(base, base.ID+i, day))
			}
		}
	case model.RepeatWeekly:
		days := rec.Weekdays()
	passes:
		for pass := 0; pass < MaxOccurrences && len(days) > 0; pass++ {
			for _, wd := range days {
				if len(out) >= MaxOccurrences {
					break passes
				}
				out = append(out, occurrence(base, base.ID+len(out), wd+1))
			}
		}
	default:
		appLog.Debug("recurrence: option not expanded", "id", base.ID, "option", string(rec.Option))
	}

	// The base and the first generated occurrence can land on the same day;
	// keep only one of them.
	if len(out) > 1 && out[0].Day == out[1].Day {
		out = out[1:]
	}
	appLog.Debug("recurrence: expanded", "id", base.ID, "option", string(rec.Option), "count", len(out))
	return out
}

func occurrence(base model.Event, id, day int) model.Event {
	ev := base.Clone()
	ev.ID = id
	ev.Day = day
	return ev
}

// shiftDay moves a 1-based day forward by n, wrapping within the week.
func shiftDay(day, n int) int {
	return ((day-1+n)%model.DaysPerWeek+model.DaysPerWeek)%model.DaysPerWeek + 1
}

// Monday through Friday are days 2..6 when day 1 is Sunday.
func isWeekday(day int) bool { return day >= 2 && day <= 6 }
