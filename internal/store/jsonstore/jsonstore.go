package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/idilsaglam/weekcal/internal/model"
)

// JSON event files. Used to seed a session and to export one; the live
// session itself is never written back.

// DefaultFileName is looked up in the working directory when no path is given.
const DefaultFileName = "events.json"

func resolve(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, DefaultFileName), nil
}

// Load reads events from path. A missing file yields no events.
func Load(path string) ([]model.Event, error) {
	p, err := resolve(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Event{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var events []model.Event
	if err := json.Unmarshal(b, &events); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return events, nil
}

// Encode writes events as indented JSON.
func Encode(w io.Writer, events []model.Event) error {
	b, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// Save writes events to path, replacing the file.
func Save(path string, events []model.Event) error {
	p, err := resolve(path)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	if err := Encode(f, events); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	return nil
}
