// Package store defines the event collection contract shared by the drag
// controller, the form path and the renderer.
package store

import (
	"errors"
	"fmt"

	"github.com/samber/mo"

	"github.com/idilsaglam/weekcal/internal/model"
)

// EventStore holds the session's events. Every write is a single atomic insert
// or replace; readers always receive copies.
type EventStore interface {
	// NextID is the id the next inserted event would receive.
	NextID() int
	// Insert adds ev. A zero id is assigned by the store.
	Insert(ev model.Event) (model.Event, error)
	// InsertMany adds all events or none of them.
	InsertMany(evs []model.Event) ([]model.Event, error)
	// Replace applies patch to the event with the given id, keeping the id.
	Replace(id int, patch Patch) (model.Event, error)
	Delete(id int) error
	Get(id int) (model.Event, bool)
	// All returns every event ordered by day, start time and id.
	All() []model.Event
	ByDay(day int) []model.Event
}

// Patch selects which fields Replace touches. Body, when present, replaces
// every content field; Day, Start and End are applied afterwards.
type Patch struct {
	Body  mo.Option[model.Event]
	Day   mo.Option[int]
	Start mo.Option[model.Clock]
	End   mo.Option[model.Clock]
}

// Move is the placement-only patch used when a drag commits.
func Move(day int, start, end model.Clock) Patch {
	return Patch{Day: mo.Some(day), Start: mo.Some(start), End: mo.Some(end)}
}

// Full is the patch used when an edit form is saved.
func Full(ev model.Event) Patch {
	return Patch{Body: mo.Some(ev)}
}

// Apply returns ev with the patch applied. The id is never changed.
func (p Patch) Apply(ev model.Event) model.Event {
	out := ev.Clone()
	if body, ok := p.Body.Get(); ok {
		out = body.Clone()
		out.ID = ev.ID
	}
	if day, ok := p.Day.Get(); ok {
		out.Day = day
	}
	if start, ok := p.Start.Get(); ok {
		out.Start = start
	}
	if end, ok := p.End.Get(); ok {
		out.End = end
	}
	return out
}

// ErrorType classifies store failures.
type ErrorType string

const (
	ErrNotFound      ErrorType = "not_found"
	ErrAlreadyExists ErrorType = "already_exists"
	ErrInvalidInput  ErrorType = "invalid_input"
)

// Error represents a storage-related error.
type Error struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// IsType reports whether err is a store *Error of type t.
func IsType(err error, t ErrorType) bool {
	var se *Error
	return errors.As(err, &se) && se.Type == t
}
