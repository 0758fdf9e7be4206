// Package validate checks event form submissions before anything reaches the store.
package validate

import (
	"slices"
	"strings"

	"github.com/idilsaglam/weekcal/internal/model"
	"github.com/idilsaglam/weekcal/internal/timegrid"
)

// Field names the form input an error belongs to.
type Field string

const (
	FieldTitle       Field = "title"
	FieldStartTime   Field = "startTime"
	FieldEndTime     Field = "endTime"
	FieldRepeatUntil Field = "repeatUntil"
	FieldRepeatOn    Field = "repeatOn"
)

// FieldErrors maps a form field to its message. A nil or empty map means valid.
type FieldErrors map[Field]string

func (fe FieldErrors) OK() bool { return len(fe) == 0 }

// Add records msg for f unless f already has an error.
func (fe FieldErrors) Add(f Field, msg string) {
	if _, exists := fe[f]; !exists {
		fe[f] = msg
	}
}

// Fields returns the failing fields in a stable order.
func (fe FieldErrors) Fields() []Field {
	out := make([]Field, 0, len(fe))
	for f := range fe {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, f := range fe.Fields() {
		parts = append(parts, string(f)+": "+fe[f])
	}
	return "invalid event: " + strings.Join(parts, "; ")
}

// Validate applies every rule to d and reports all failures at once. It returns
// nil when d is acceptable and never modifies d.
func Validate(d model.Draft) FieldErrors {
	fe := FieldErrors{}

	if strings.TrimSpace(d.Title) == "" {
		fe.Add(FieldTitle, "Title is required")
	}

	start, hasStart := d.Start.Get()
	end, hasEnd := d.End.Get()
	if !hasStart {
		fe.Add(FieldStartTime, "Start time is required")
	}
	if !hasEnd {
		fe.Add(FieldEndTime, "End time is required")
	}
	if hasStart && hasEnd && timegrid.DurationMinutes(start, end) <= 0 {
		fe.Add(FieldEndTime, "End time must be after start time")
	}
	if hasStart && !model.InWindow(start) {
		fe.Add(FieldStartTime, outsideWindow)
	}
	if hasEnd && !model.InWindow(end) {
		fe.Add(FieldEndTime, outsideWindow)
	}

	if d.Recurrence.Repeats() {
		if strings.TrimSpace(d.Recurrence.Until) == "" {
			fe.Add(FieldRepeatUntil, "End date is required for repeating events")
		}
		if d.Recurrence.Option == model.RepeatWeekly && len(d.Recurrence.Weekdays()) == 0 {
			fe.Add(FieldRepeatOn, "Select at least one day of the week")
		}
	}

	if fe.OK() {
		return nil
	}
	return fe
}

const outsideWindow = "Time must be between 08:00 and 16:00"
