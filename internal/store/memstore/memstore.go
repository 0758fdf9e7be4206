// Package memstore keeps the session's events in memory.
package memstore

import (
	"fmt"
	"slices"
	"sync"

	"github.com/idilsaglam/weekcal/internal/model"
	"github.com/idilsaglam/weekcal/internal/store"
)

// Store implements store.EventStore with a mutex-guarded slice.
type Store struct {
	mu     sync.RWMutex
	events []model.Event
	// highest id ever handed out, so deleted ids are not reused
	highWater int
}

var _ store.EventStore = (*Store)(nil)

// New creates a store seeded with events. Seeds without an id get one; seeds
// that break event invariants or repeat an id are rejected.
func New(seed ...model.Event) (*Store, error) {
	s := &Store{}
	if _, err := s.InsertMany(seed); err != nil {
		return nil, fmt.Errorf("seed store: %w", err)
	}
	return s, nil
}

func (s *Store) NextID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.highWater + 1
}

func (s *Store) Insert(ev model.Event) (model.Event, error) {
	out, err := s.InsertMany([]model.Event{ev})
	if err != nil {
		return model.Event{}, err
	}
	return out[0], nil
}

func (s *Store) InsertMany(evs []model.Event) ([]model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.highWater
	for _, ev := range evs {
		next = max(next, ev.ID)
	}
	batch := make([]model.Event, 0, len(evs))
	seen := make(map[int]bool, len(evs))
	for _, ev := range evs {
		ev = ev.Clone()
		if ev.ID == 0 {
			next++
			ev.ID = next
		}
		if ev.ID < 0 {
			return nil, &store.Error{Type: store.ErrInvalidInput, Message: fmt.Sprintf("negative id %d", ev.ID)}
		}
		if seen[ev.ID] || s.indexOf(ev.ID) >= 0 {
			return nil, &store.Error{Type: store.ErrAlreadyExists, Message: fmt.Sprintf("event %d already exists", ev.ID)}
		}
		if err := ev.Check(); err != nil {
			return nil, &store.Error{Type: store.ErrInvalidInput, Message: "rejected event", Err: err}
		}
		seen[ev.ID] = true
		batch = append(batch, ev)
	}

	s.events = append(s.events, batch...)
	s.highWater = next
	return cloneAll(batch), nil
}

func (s *Store) Replace(id int, patch store.Patch) (model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Event{}, &store.Error{Type: store.ErrNotFound, Message: fmt.Sprintf("event %d not found", id)}
	}
	updated := patch.Apply(s.events[i])
	if err := updated.Check(); err != nil {
		return model.Event{}, &store.Error{Type: store.ErrInvalidInput, Message: "rejected update", Err: err}
	}
	s.events[i] = updated
	return updated.Clone(), nil
}

func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return &store.Error{Type: store.ErrNotFound, Message: fmt.Sprintf("event %d not found", id)}
	}
	s.events = slices.Delete(s.events, i, i+1)
	return nil
}

func (s *Store) Get(id int) (model.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Event{}, false
	}
	return s.events[i].Clone(), true
}

func (s *Store) All() []model.Event {
	s.mu.RLock()
	out := cloneAll(s.events)
	s.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b model.Event) int {
		if a.Day != b.Day {
			return a.Day - b.Day
		}
		if a.Start != b.Start {
			return a.Start.Minutes() - b.Start.Minutes()
		}
		return a.ID - b.ID
	})
	return out
}

func (s *Store) ByDay(day int) []model.Event {
	return slices.DeleteFunc(s.All(), func(ev model.Event) bool { return ev.Day != day })
}

// indexOf expects s.mu to be held.
func (s *Store) indexOf(id int) int {
	return slices.IndexFunc(s.events, func(ev model.Event) bool { return ev.ID == id })
}

func cloneAll(evs []model.Event) []model.Event {
	out := make([]model.Event, len(evs))
	for i, ev := range evs {
		out[i] = ev.Clone()
	}
	return out
}
