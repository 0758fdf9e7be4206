package drag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/weekcal/internal/model"
	"github.com/idilsaglam/weekcal/internal/store"
	"github.com/idilsaglam/weekcal/internal/store/memstore"
	"github.com/idilsaglam/weekcal/internal/timegrid"
)

var grid = timegrid.Rect{Width: 800, Height: timegrid.HourRows * timegrid.HourHeight}

// pointAt returns the pointer position over day at clock c.
func pointAt(day int, c model.Clock) timegrid.Point {
	return timegrid.Point{
		X: grid.DaysLeft() + (float64(day)-0.5)*grid.DayWidth(),
		Y: timegrid.TimeToOffset(c),
	}
}

func setup(t *testing.T, start, end string) (*Controller, *memstore.Store, model.Event) {
	t.Helper()
	s, err := memstore.New(model.Event{
		Title: "Project Review", Day: 1,
		Start: model.MustClock(start), End: model.MustClock(end),
		Color: model.Purple, Location: "Meeting Room 3",
	})
	require.NoError(t, err)
	ev, ok := s.Get(1)
	require.True(t, ok)
	return New(s, grid), s, ev
}

func press(c *Controller, ev model.Event) {
	p := pointAt(ev.Day, ev.Start)
	c.Press(ev, p, p)
}

func TestDragCommitPreservesDuration(t *testing.T) {
	c, s, ev := setup(t, "14:00", "15:30")
	press(c, ev)
	require.True(t, c.Dragging())

	preview := c.Move(pointAt(3, model.At(9, 15)))
	p, ok := preview.Get()
	require.True(t, ok)
	assert.Equal(t, Preview{Day: 3, Start: model.At(9, 15), End: model.At(10, 45), Color: model.Purple}, p)

	res := c.Release()
	assert.Equal(t, Committed, res.Outcome)
	assert.True(t, res.SuppressClick)
	require.NoError(t, res.Err)

	got, _ := s.Get(ev.ID)
	assert.Equal(t, 3, got.Day)
	assert.Equal(t, "09:15", got.Start.String())
	assert.Equal(t, "10:45", got.End.String())
	assert.Equal(t, "Meeting Room 3", got.Location)
	assert.Equal(t, ev.Duration(), got.Duration())

	assert.Equal(t, Idle, c.State())
	assert.False(t, c.Preview().IsPresent())
}

func TestDragClampsAtWindowEnd(t *testing.T) {
	c, s, ev := setup(t, "09:00", "10:30")
	press(c, ev)
	c.Move(pointAt(5, model.At(15, 0)))
	res := c.Release()
	require.Equal(t, Committed, res.Outcome)

	got, _ := s.Get(ev.ID)
	assert.Equal(t, "15:00", got.Start.String())
	assert.Equal(t, "16:00", got.End.String())
	assert.LessOrEqual(t, got.Duration(), ev.Duration())
}

func TestDragToLastLineHasNoPreview(t *testing.T) {
	c, s, ev := setup(t, "09:00", "10:00")
	press(c, ev)
	assert.False(t, c.Move(pointAt(2, model.At(16, 0))).IsPresent())
	res := c.Release()
	assert.Equal(t, Cancelled, res.Outcome)

	got, _ := s.Get(ev.ID)
	assert.Equal(t, ev, got)
}

func TestReleaseOutsideGridCancels(t *testing.T) {
	c, s, ev := setup(t, "14:00", "15:30")
	press(c, ev)
	c.Move(pointAt(4, model.At(11, 0)))
	require.True(t, c.Preview().IsPresent())

	// Last move leaves the grid: the earlier preview does not survive.
	assert.False(t, c.Move(timegrid.Point{X: 850, Y: 100}).IsPresent())
	res := c.Release()
	assert.Equal(t, Cancelled, res.Outcome)
	assert.False(t, res.Event.IsPresent())

	got, _ := s.Get(ev.ID)
	assert.Equal(t, ev.Day, got.Day)
	assert.Equal(t, ev.Start, got.Start)
	assert.Equal(t, ev.End, got.End)
}

func TestPointerOverLabelColumnHasNoPreview(t *testing.T) {
	c, _, ev := setup(t, "14:00", "15:30")
	press(c, ev)
	assert.False(t, c.Move(timegrid.Point{X: 50, Y: 100}).IsPresent())
}

func TestPlainClickIsCancelledAndSuppressesEdit(t *testing.T) {
	c, s, ev := setup(t, "14:00", "15:30")
	press(c, ev)
	res := c.Release()
	assert.Equal(t, Cancelled, res.Outcome)
	assert.True(t, res.SuppressClick)

	got, _ := s.Get(ev.ID)
	assert.Equal(t, ev, got)
}

func TestReleaseInSameSlotIsCancelled(t *testing.T) {
	c, _, ev := setup(t, "14:00", "15:30")
	press(c, ev)
	c.Move(pointAt(1, model.At(14, 5)))
	res := c.Release()
	assert.Equal(t, Cancelled, res.Outcome)
}

func TestReleaseWhenIdle(t *testing.T) {
	c, _, _ := setup(t, "14:00", "15:30")
	res := c.Release()
	assert.Equal(t, Idle, res.Outcome)
	assert.False(t, res.SuppressClick)
}

func TestPressWhileDraggingIsIgnored(t *testing.T) {
	c, s, ev := setup(t, "14:00", "15:30")
	other, err := s.Insert(model.Event{Title: "Other", Day: 2, Start: model.At(9, 0), End: model.At(10, 0), Color: model.Red})
	require.NoError(t, err)

	press(c, ev)
	assert.False(t, c.Press(other, timegrid.Point{}, timegrid.Point{}))
	grabbed, ok := c.Grabbed()
	require.True(t, ok)
	assert.Equal(t, ev.ID, grabbed.ID)
}

func TestMovesRecomputeFromScratch(t *testing.T) {
	c, _, ev := setup(t, "14:00", "15:30")
	press(c, ev)
	for _, target := range []model.Clock{model.At(9, 0), model.At(12, 30), model.At(10, 15)} {
		c.Move(pointAt(6, target))
	}
	p, ok := c.Preview().Get()
	require.True(t, ok)
	assert.Equal(t, model.At(10, 15), p.Start)
	assert.Equal(t, model.At(11, 45), p.End)
	assert.Equal(t, 6, p.Day)
}

func TestGhostKeepsGrabOffset(t *testing.T) {
	c, _, ev := setup(t, "14:00", "15:30")
	c.Press(ev, timegrid.Point{X: 150, Y: 500}, timegrid.Point{X: 110, Y: 480})
	c.Move(timegrid.Point{X: 350, Y: 100})
	assert.Equal(t, timegrid.Point{X: 310, Y: 80}, c.Ghost())
}

func TestCommitOfDeletedEventCancels(t *testing.T) {
	c, s, ev := setup(t, "14:00", "15:30")
	press(c, ev)
	c.Move(pointAt(3, model.At(9, 15)))
	require.NoError(t, s.Delete(ev.ID))

	res := c.Release()
	assert.Equal(t, Cancelled, res.Outcome)
	require.Error(t, res.Err)
	assert.True(t, store.IsType(res.Err, store.ErrNotFound))
	assert.Equal(t, Idle, c.State())
}

func TestCellTarget(t *testing.T) {
	c, _, ev := setup(t, "14:00", "15:30")
	day, hour, ok := c.CellTarget(pointAt(4, model.At(11, 40)))
	require.True(t, ok)
	assert.Equal(t, 4, day)
	assert.Equal(t, 11, hour)

	press(c, ev)
	_, _, ok = c.CellTarget(pointAt(4, model.At(11, 40)))
	assert.False(t, ok, "no creation while dragging")
}
