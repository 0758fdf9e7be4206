package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/weekcal/internal/model"
)

func base(day int, rec *model.Recurrence) model.Event {
	return model.Event{
		ID:         16,
		Title:      "Standup",
		Day:        day,
		Start:      model.At(9, 0),
		End:        model.At(9, 30),
		Color:      model.Blue,
		Attendees:  []string{"Dev Team"},
		Recurrence: rec,
	}
}

func days(evs []model.Event) []int {
	out := make([]int, 0, len(evs))
	for _, e := range evs {
		out = append(out, e.Day)
	}
	return out
}

func ids(evs []model.Event) []int {
	out := make([]int, 0, len(evs))
	for _, e := range evs {
		out = append(out, e.ID)
	}
	return out
}

func TestExpandDaily(t *testing.T) {
	got := Expand(base(1, &model.Recurrence{Option: model.RepeatDaily, Until: "2025-04-01", Frequency: 1}))
	require.Len(t, got, MaxOccurrences)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 1, 2, 3}, days(got))
	assert.Equal(t, []int{16, 17, 18, 19, 20, 21, 22, 23, 24, 25}, ids(got))
	for _, ev := range got {
		assert.Equal(t, "Standup", ev.Title)
		assert.Equal(t, model.At(9, 0), ev.Start)
	}
}

func TestExpandDailyWithFrequency(t *testing.T) {
	got := Expand(base(3, &model.Recurrence{Option: model.RepeatDaily, Until: "2025-04-01", Frequency: 2}))
	require.Len(t, got, MaxOccurrences)
	assert.Equal(t, []int{3, 5, 7, 2, 4, 6, 1, 3, 5, 7}, days(got))
}

func TestExpandDailyEveryWeekDropsDuplicateBase(t *testing.T) {
	got := Expand(base(2, &model.Recurrence{Option: model.RepeatDaily, Until: "2025-04-01", Frequency: 7}))
	assert.Len(t, got, MaxOccurrences-1)
	assert.Equal(t, 17, got[0].ID)
	for _, ev := range got {
		assert.Equal(t, 2, ev.Day)
	}
}

func TestExpandWeekdays(t *testing.T) {
	got := Expand(base(1, &model.Recurrence{Option: model.RepeatWeekdays, Until: "2025-04-01"}))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 2, 3, 4}, days(got))
	assert.Equal(t, []int{16, 17, 18, 19, 20, 21, 24, 25, 26}, ids(got))
	for _, ev := range got[1:] {
		assert.True(t, ev.Day >= 2 && ev.Day <= 6)
	}
}

func TestExpandWeekly(t *testing.T) {
	got := Expand(base(1, &model.Recurrence{Option: model.RepeatWeekly, Until: "2025-04-01", OnDays: []int{3, 1}}))
	require.Len(t, got, MaxOccurrences)
	assert.Equal(t, 1, got[0].Day, "base occurrence is kept")
	for _, ev := range got[1:] {
		assert.Contains(t, []int{2, 4}, ev.Day)
	}
	assert.Equal(t, []int{1, 2, 4, 2, 4, 2, 4, 2, 4, 2}, days(got))
	assert.Equal(t, []int{16, 17, 18, 19, 20, 21, 22, 23, 24, 25}, ids(got))
}

func TestExpandWeeklyBaseOnSelectedDay(t *testing.T) {
	got := Expand(base(2, &model.Recurrence{Option: model.RepeatWeekly, Until: "2025-04-01", OnDays: []int{1, 3}}))
	for _, ev := range got {
		assert.Contains(t, []int{2, 4}, ev.Day)
	}
	assert.Len(t, got, MaxOccurrences-1)
}

func TestExpandWeeklyAllDaysStopsAtCap(t *testing.T) {
	got := Expand(base(1, &model.Recurrence{Option: model.RepeatWeekly, Until: "2025-04-01", OnDays: []int{0, 1, 2, 3, 4, 5, 6}}))
	assert.LessOrEqual(t, len(got), MaxOccurrences)
}

func TestExpandNeverExceedsCapAndIDsAreUnique(t *testing.T) {
	for _, opt := range model.RepeatOptions {
		for day := 1; day <= model.DaysPerWeek; day++ {
			for freq := 0; freq <= 8; freq++ {
				rec := &model.Recurrence{Option: opt, Until: "2025-04-01", Frequency: freq, OnDays: []int{0, 2, 4, 6}}
				got := Expand(base(day, rec))
				require.NotEmpty(t, got)
				require.LessOrEqual(t, len(got), MaxOccurrences)
				seen := map[int]bool{}
				for _, ev := range got {
					require.False(t, seen[ev.ID], "duplicate id %d for %s", ev.ID, opt)
					require.GreaterOrEqual(t, ev.ID, 16)
					seen[ev.ID] = true
				}
			}
		}
	}
}

func TestExpandPassThrough(t *testing.T) {
	for _, opt := range []model.RepeatOption{model.RepeatMonthly, model.RepeatYearly, model.RepeatCustom, model.RepeatNone} {
		got := Expand(base(5, &model.Recurrence{Option: opt, Until: "2025-04-01"}))
		require.Len(t, got, 1, opt)
		assert.Equal(t, 16, got[0].ID)
	}
	assert.Len(t, Expand(base(5, nil)), 1)
}

func TestExpandCopiesAreIndependent(t *testing.T) {
	got := Expand(base(1, &model.Recurrence{Option: model.RepeatDaily, Until: "2025-04-01"}))
	got[1].Attendees[0] = "changed"
	assert.Equal(t, "Dev Team", got[2].Attendees[0])
}

func TestRule(t *testing.T) {
	start := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

	r, ok := Rule(&model.Recurrence{Option: model.RepeatMonthly, Until: "2025-06-30"}, start)
	require.True(t, ok)
	assert.Contains(t, r.OrigOptions.RRuleString(), "FREQ=MONTHLY")
	assert.Len(t, r.All(), 4)

	r, ok = Rule(&model.Recurrence{Option: model.RepeatCustom, Frequency: 2, OnDays: []int{1, 3}}, start)
	require.True(t, ok)
	s := r.OrigOptions.RRuleString()
	assert.Contains(t, s, "FREQ=WEEKLY")
	assert.Contains(t, s, "INTERVAL=2")
	assert.Contains(t, s, "BYDAY=MO,WE")

	_, ok = Rule(&model.Recurrence{Option: model.RepeatDaily, Until: "2025-06-30"}, start)
	assert.False(t, ok, "daily is expanded, no rule")
	_, ok = Rule(nil, start)
	assert.False(t, ok)
}
