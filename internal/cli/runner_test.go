package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/weekcal/internal/model"
	"github.com/idilsaglam/weekcal/internal/store/jsonstore"
)

func testOptions(t *testing.T) (Options, *bytes.Buffer) {
	t.Helper()
	now = func() time.Time { return time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })
	var buf bytes.Buffer
	return Options{ConfigPath: filepath.Join(t.TempDir(), "config.yaml"), Out: &buf}, &buf
}

func TestRunUsage(t *testing.T) {
	opt, buf := testOptions(t)
	assert.Equal(t, 0, Run([]string{"help"}, opt))
	assert.Contains(t, buf.String(), "weekcal - a week calendar")

	assert.Equal(t, 2, Run([]string{"frobnicate"}, opt))
	assert.Equal(t, 2, Run([]string{"week", "extra"}, opt))
	assert.Equal(t, 2, Run([]string{"ls", "8"}, opt))
	assert.Equal(t, 2, Run([]string{"ls", "1", "2"}, opt))
	assert.Equal(t, 2, Run([]string{"export", "--format", "pdf"}, opt))
	assert.Equal(t, 2, Run([]string{"export", "--nope"}, opt))
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1", 1, true},
		{"7", 7, true},
		{"0", 0, false},
		{"tue", 3, true},
		{"Saturday", 7, true},
		{"s", 0, false},
		{"fr", 6, true},
		{"holiday", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDay(tt.in)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListWeek(t *testing.T) {
	opt, buf := testOptions(t)
	require.Equal(t, 0, Run([]string{"ls"}, opt))

	out := buf.String()
	assert.Contains(t, out, "Week of Sun 2 Mar 2025")
	assert.Contains(t, out, "Events 15")
	assert.Contains(t, out, "09:00-10:00")
	assert.Contains(t, out, "Team Meeting")
	assert.Contains(t, out, "@ Conference Room A")
	assert.Contains(t, out, "Sat 8 Mar")

	_, err := os.Stat(opt.ConfigPath)
	assert.NoError(t, err, "first run writes the default config")
}

func TestListOneDay(t *testing.T) {
	opt, buf := testOptions(t)
	require.Equal(t, 0, Run([]string{"ls", "sun"}, opt))

	out := buf.String()
	assert.Contains(t, out, "Sun 2 Mar")
	assert.Contains(t, out, "Product Planning")
	assert.NotContains(t, out, "Client Call")
	// 3h30 of the 8h window
	assert.Contains(t, out, " 43%")
}

func TestExportJSON(t *testing.T) {
	opt, _ := testOptions(t)
	path := filepath.Join(t.TempDir(), "week.json")
	require.Equal(t, 0, Run([]string{"export", "--format", "json", "-o", path}, opt))

	events, err := jsonstore.Load(path)
	require.NoError(t, err)
	require.Len(t, events, 15)
	assert.Equal(t, "Team Meeting", events[0].Title)
}

func TestExportICSToStdout(t *testing.T) {
	opt, buf := testOptions(t)
	require.Equal(t, 0, Run([]string{"export"}, opt))

	out := buf.String()
	assert.Equal(t, 15, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "SUMMARY:Team Meeting")
}

func TestSeedFromEventsFile(t *testing.T) {
	dir := t.TempDir()
	seed := []model.Event{
		{ID: 4, Title: "Retro", Day: 6, Start: model.At(15, 0), End: model.At(16, 0), Color: model.Teal},
	}
	jsonPath := filepath.Join(dir, "seed.json")
	require.NoError(t, jsonstore.Save(jsonPath, seed))

	t.Run("json", func(t *testing.T) {
		opt, buf := testOptions(t)
		opt.EventsPath = jsonPath
		require.Equal(t, 0, Run([]string{"ls"}, opt))
		assert.Contains(t, buf.String(), "Events 1")
		assert.Contains(t, buf.String(), "Retro")
	})

	t.Run("ics round trip", func(t *testing.T) {
		opt, _ := testOptions(t)
		opt.EventsPath = jsonPath
		icsPath := filepath.Join(dir, "seed.ics")
		require.Equal(t, 0, Run([]string{"export", "-o", icsPath}, opt))

		opt2, buf := testOptions(t)
		opt2.EventsPath = icsPath
		require.Equal(t, 0, Run([]string{"ls", "6"}, opt2))
		assert.Contains(t, buf.String(), "15:00-16:00")
		assert.Contains(t, buf.String(), "Retro")
	})

	t.Run("missing file", func(t *testing.T) {
		opt, _ := testOptions(t)
		opt.EventsPath = filepath.Join(dir, "nope.json")
		assert.Equal(t, 1, Run([]string{"ls"}, opt))
	})
}
