package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/weekcal/internal/model"
)

// Defaults used by DefaultConfig and Normalize.
const (
	DefaultWeekStart   = "2025-03-02"
	DefaultRowsPerHour = 4
	DefaultTheme       = "classic"
	DefaultLogLevel    = "info"
)

// Config is the top-level application configuration.
type Config struct {
	// WeekStart is the calendar date of day 1, a Sunday (YYYY-MM-DD). It dates
	// the day headers, export and import; events themselves only know day 1..7.
	WeekStart string `yaml:"week_start" json:"week_start"`

	// RowsPerHour is how many terminal rows one hour takes in the grid.
	// Supported values: 1, 2, 4. The week view drops to fewer rows when the
	// terminal is too short for the grid.
	RowsPerHour int `yaml:"rows_per_hour" json:"rows_per_hour"`

	// Theme selects the CLI palette: classic, neon or mono.
	Theme string `yaml:"theme" json:"theme"`

	DefaultColor model.Color `yaml:"default_color" json:"default_color"`

	// LogFile receives log output while the TUI owns the screen. Empty
	// discards it.
	LogFile  string `yaml:"log_file" json:"log_file"`
	LogLevel string `yaml:"log_level" json:"log_level"`

	// Events seed the store at startup.
	Events []model.Event `yaml:"events" json:"events"`
}

// DefaultConfig returns an in-memory default configuration with the sample week.
func DefaultConfig() *Config {
	return &Config{
		WeekStart:    DefaultWeekStart,
		RowsPerHour:  DefaultRowsPerHour,
		Theme:        DefaultTheme,
		DefaultColor: model.Blue,
		LogLevel:     DefaultLogLevel,
		Events:       SampleWeek(),
	}
}

// Normalize fills in missing or unsupported values so that partially-filled
// configs still behave.
func (c *Config) Normalize() {
	// Day 1 is a Sunday; other dates move back to the Sunday before them.
	if t, err := time.Parse(model.DateLayout, c.WeekStart); err != nil {
		c.WeekStart = DefaultWeekStart
	} else {
		c.WeekStart = t.AddDate(0, 0, -int(t.Weekday())).Format(model.DateLayout)
	}
	switch c.RowsPerHour {
	case 1, 2, 4:
	default:
		c.RowsPerHour = DefaultRowsPerHour
	}
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	switch c.Theme {
	case "classic", "neon", "mono":
	default:
		c.Theme = DefaultTheme
	}
	if !c.DefaultColor.Valid() {
		c.DefaultColor = model.Blue
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case "debug", "info", "error":
	default:
		c.LogLevel = DefaultLogLevel
	}
	if c.Events == nil {
		c.Events = []model.Event{}
	}
}

// WeekStartDate parses WeekStart in the local zone.
func (c *Config) WeekStartDate() (time.Time, error) {
	t, err := time.ParseInLocation(model.DateLayout, c.WeekStart, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("week_start %q: %w", c.WeekStart, err)
	}
	return t, nil
}

// Load loads configuration from the given YAML path.
//
// If the file does not exist a default config is written there with 0600
// permissions and returned. Otherwise the YAML is read and normalized.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				// Even if save fails, return cfg with error so caller can decide.
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes cfg to path atomically via a temp file and rename. The parent
// directory is created with 0700 and the file ends up 0600.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".weekcal-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

func (c *Config) Save(path string) error {
	return Save(path, c)
}

// DefaultPath is ~/.config/weekcal/config.yaml, or config.yaml in the working
// directory when no user config dir is known.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(dir, "weekcal", "config.yaml")
}
