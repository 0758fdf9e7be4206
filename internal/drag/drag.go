// Package drag implements the pointer-driven reposition state machine.
//
// A press on an event enters Dragging; every move recomputes the drop preview
// from scratch; release commits the preview to the store or cancels. The
// controller only produces state and preview values. Drawing the ghost that
// follows the pointer is left to the caller.
package drag

import (
	"fmt"

	"github.com/samber/mo"

	appLog "github.com/idilsaglam/weekcal/internal/log"
	"github.com/idilsaglam/weekcal/internal/model"
	"github.com/idilsaglam/weekcal/internal/store"
	"github.com/idilsaglam/weekcal/internal/timegrid"
)

type State int

const (
	Idle State = iota
	Dragging
	Committed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Committed:
		return "committed"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Preview is the candidate placement shown while dragging.
type Preview struct {
	Day   int
	Start model.Clock
	End   model.Clock
	Color model.Color
}

// Result describes how a drag ended.
type Result struct {
	// Outcome is Committed or Cancelled, or Idle when no drag was active.
	Outcome State
	// Event is the stored record after a commit.
	Event mo.Option[model.Event]
	// SuppressClick is set whenever a drag was in progress at release, so the
	// same gesture never also opens the edit form.
	SuppressClick bool
	Err           error
}

// Replacer is the part of the store a commit needs.
type Replacer interface {
	Replace(id int, patch store.Patch) (model.Event, error)
}

type Controller struct {
	store Replacer
	grid  timegrid.Rect

	state   State
	grabbed model.Event
	anchor  timegrid.Point
	pointer timegrid.Point
	preview mo.Option[Preview]
}

func New(s Replacer, grid timegrid.Rect) *Controller {
	return &Controller{store: s, grid: grid}
}

// SetGrid updates the grid bounds, e.g. after a terminal resize.
func (c *Controller) SetGrid(grid timegrid.Rect) { c.grid = grid }

func (c *Controller) State() State { return c.state }

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool { return c.state == Dragging }

// Preview is the current drop preview; None while idle or off-grid.
func (c *Controller) Preview() mo.Option[Preview] { return c.preview }

// Grabbed is the event being dragged.
func (c *Controller) Grabbed() (model.Event, bool) {
	if c.state != Dragging {
		return model.Event{}, false
	}
	return c.grabbed, true
}

// Ghost is where the dragged block's origin should be drawn so the grab point
// stays under the pointer.
func (c *Controller) Ghost() timegrid.Point { return c.pointer.Sub(c.anchor) }

// Press starts dragging ev. origin is the top-left of the event's rendered
// block. Presses while a drag is already active are ignored.
func (c *Controller) Press(ev model.Event, pointer, origin timegrid.Point) bool {
	if c.state != Idle {
		return false
	}
	c.state = Dragging
	c.grabbed = ev.Clone()
	c.anchor = pointer.Sub(origin)
	c.pointer = pointer
	c.preview = mo.None[Preview]()
	appLog.Debug("drag: press", "id", ev.ID, "day", ev.Day, "start", ev.Start.String())
	return true
}

// Move recomputes the preview for the pointer position.
func (c *Controller) Move(pointer timegrid.Point) mo.Option[Preview] {
	if c.state != Dragging {
		return mo.None[Preview]()
	}
	c.pointer = pointer
	c.preview = c.compute(pointer)
	return c.preview
}

func (c *Controller) compute(pointer timegrid.Point) mo.Option[Preview] {
	slot, ok := timegrid.Locate(pointer, c.grid)
	if !ok {
		return mo.None[Preview]()
	}
	duration := timegrid.DurationMinutes(c.grabbed.Start, c.grabbed.End)
	end := timegrid.Clamp(slot.Start.Add(duration))
	if !end.After(slot.Start) {
		// Only reachable at the 16:00 line; a zero-length block is not a drop target.
		return mo.None[Preview]()
	}
	return mo.Some(Preview{
		Day:   slot.Day,
		Start: slot.Start,
		End:   end,
		Color: c.grabbed.Color,
	})
}

// Release ends the drag. With a preview that moves the event, the new placement
// is written to the store; otherwise nothing changes. Either way the controller
// is Idle afterwards.
func (c *Controller) Release() Result {
	if c.state != Dragging {
		return Result{Outcome: Idle}
	}
	res := Result{Outcome: Cancelled, SuppressClick: true}
	if p, ok := c.preview.Get(); ok && !c.unchanged(p) {
		updated, err := c.store.Replace(c.grabbed.ID, store.Move(p.Day, p.Start, p.End))
		if err != nil {
			res.Err = fmt.Errorf("commit drag of event %d: %w", c.grabbed.ID, err)
			appLog.Error("drag: commit failed", err, "id", c.grabbed.ID)
		} else {
			res.Outcome = Committed
			res.Event = mo.Some(updated)
			appLog.Info("drag: committed", "id", updated.ID, "day", updated.Day,
				"start", updated.Start.String(), "end", updated.End.String())
		}
	}
	if res.Outcome == Cancelled {
		appLog.Debug("drag: cancelled", "id", c.grabbed.ID)
	}
	c.reset()
	return res
}

func (c *Controller) unchanged(p Preview) bool {
	return p.Day == c.grabbed.Day && p.Start == c.grabbed.Start && p.End == c.grabbed.End
}

func (c *Controller) reset() {
	c.state = Idle
	c.grabbed = model.Event{}
	c.anchor = timegrid.Point{}
	c.preview = mo.None[Preview]()
}

// CellTarget resolves a click on an empty cell to the creation form's initial
// day and hour. ok is false while dragging or when p is off the day columns.
func (c *Controller) CellTarget(p timegrid.Point) (day, hour int, ok bool) {
	if c.state == Dragging {
		return 0, 0, false
	}
	return timegrid.CellAt(p, c.grid)
}
