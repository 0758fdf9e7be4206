// Package calendar is the form path: it turns drafts into stored events,
// fanning repeating drafts out through the recurrence expander.
package calendar

import (
	"fmt"

	"github.com/samber/mo"

	appLog "github.com/idilsaglam/weekcal/internal/log"
	"github.com/idilsaglam/weekcal/internal/model"
	"github.com/idilsaglam/weekcal/internal/recurrence"
	"github.com/idilsaglam/weekcal/internal/store"
	"github.com/idilsaglam/weekcal/internal/timegrid"
	"github.com/idilsaglam/weekcal/internal/validate"
)

// Defaults of the create button.
const (
	DefaultDay  = 1
	DefaultHour = 9
)

type Calendar struct {
	store        store.EventStore
	defaultColor model.Color
}

func New(s store.EventStore, defaultColor model.Color) *Calendar {
	if !defaultColor.Valid() {
		defaultColor = model.Blue
	}
	return &Calendar{store: s, defaultColor: defaultColor}
}

func (c *Calendar) Store() store.EventStore { return c.store }

// NewDraft pre-fills the creation form for a one-hour event at day/hour. The
// hour is clamped so the default hour still fits inside the window.
func (c *Calendar) NewDraft(day, hour int) model.Draft {
	day = max(1, min(model.DaysPerWeek, day))
	hour = max(timegrid.FirstHour, min(timegrid.LastHour-1, hour))
	start := model.At(hour, 0)
	return model.Draft{
		Day:        day,
		Start:      mo.Some(start),
		End:        mo.Some(start.Add(60)),
		Color:      c.defaultColor,
		Organizer:  model.DefaultOrganizer,
		Recurrence: model.Recurrence{Option: model.RepeatNone, Frequency: 1},
	}
}

// EditDraft pre-fills the edit form from the stored event.
func (c *Calendar) EditDraft(id int) (model.Draft, error) {
	ev, ok := c.store.Get(id)
	if !ok {
		return model.Draft{}, &store.Error{Type: store.ErrNotFound, Message: fmt.Sprintf("event %d not found", id)}
	}
	return model.DraftOf(ev), nil
}

// Submit validates d and writes it. When editing holds an id the stored event is
// fully replaced under that id; otherwise a new event, or a recurring batch, is
// inserted. Field errors leave the store untouched.
func (c *Calendar) Submit(d model.Draft, editing mo.Option[int]) ([]model.Event, validate.FieldErrors, error) {
	if fe := validate.Validate(d); fe != nil {
		appLog.Debug("calendar: draft rejected", "fields", fe.Fields())
		return nil, fe, nil
	}

	if id, ok := editing.Get(); ok {
		updated, err := c.store.Replace(id, store.Full(d.Event(id)))
		if err != nil {
			return nil, nil, fmt.Errorf("save event %d: %w", id, err)
		}
		appLog.Info("calendar: event updated", "id", id, "title", updated.Title)
		return []model.Event{updated}, nil, nil
	}

	base := d.Event(c.store.NextID())
	batch := []model.Event{base}
	if base.Recurrence.Repeats() && base.Recurrence.Until != "" {
		batch = recurrence.Expand(base)
	}
	created, err := c.store.InsertMany(batch)
	if err != nil {
		return nil, nil, fmt.Errorf("create event: %w", err)
	}
	appLog.Info("calendar: events created", "base_id", base.ID, "count", len(created))
	return created, nil, nil
}

func (c *Calendar) Delete(id int) error {
	if err := c.store.Delete(id); err != nil {
		return fmt.Errorf("delete event %d: %w", id, err)
	}
	appLog.Info("calendar: event deleted", "id", id)
	return nil
}
