package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/idilsaglam/weekcal/internal/calendar"
	"github.com/idilsaglam/weekcal/internal/config"
	"github.com/idilsaglam/weekcal/internal/ics"
	appLog "github.com/idilsaglam/weekcal/internal/log"
	"github.com/idilsaglam/weekcal/internal/model"
	"github.com/idilsaglam/weekcal/internal/store/jsonstore"
	"github.com/idilsaglam/weekcal/internal/store/memstore"
	"github.com/idilsaglam/weekcal/internal/ui"
)

// now is swapped in tests so exports are stable.
var now = time.Now

type session struct {
	cfg       *config.Config
	cal       *calendar.Calendar
	weekStart time.Time
}

// openSession loads the config, applies its theme and log level and seeds a
// fresh in-memory store.
func openSession(opt Options) (*session, error) {
	path := opt.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		if cfg == nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		// First run and the default could not be written; carry on with it.
		appLog.Error("config save failed", err, "path", path)
	}

	appLog.SetLevel(appLog.ParseLevel(cfg.LogLevel))
	theme := cfg.Theme
	if opt.Theme != "" {
		theme = opt.Theme
	}
	ui.SetTheme(theme)

	weekStart, err := cfg.WeekStartDate()
	if err != nil {
		return nil, err
	}

	seed := cfg.Events
	if opt.EventsPath != "" {
		if seed, err = loadSeed(opt.EventsPath, weekStart); err != nil {
			return nil, err
		}
	}
	s, err := memstore.New(seed...)
	if err != nil {
		return nil, err
	}
	appLog.Debug("session opened", "config", path, "events", len(seed))
	return &session{cfg: cfg, cal: calendar.New(s, cfg.DefaultColor), weekStart: weekStart}, nil
}

func loadSeed(path string, weekStart time.Time) ([]model.Event, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("events file: %w", err)
	}
	if !strings.EqualFold(filepath.Ext(path), ".ics") {
		return jsonstore.Load(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("events file: %w", err)
	}
	defer f.Close()
	return ics.Decode(f, weekStart)
}
