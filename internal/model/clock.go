package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock is a time of day with minute precision, written as HH:MM (24h).
type Clock struct {
	Hour   int
	Minute int
}

// At builds a Clock without validation.
func At(hour, minute int) Clock { return Clock{Hour: hour, Minute: minute} }

// ClockFromMinutes turns minutes since midnight into a Clock.
func ClockFromMinutes(total int) Clock {
	return Clock{Hour: total / 60, Minute: total % 60}
}

// ParseClock reads "HH:MM". Single-digit hours ("9:30") are accepted.
func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	hh, mm, found := strings.Cut(s, ":")
	if !found || len(mm) != 2 || hh == "" || len(hh) > 2 {
		return Clock{}, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return Clock{}, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return Clock{}, fmt.Errorf("invalid minute in %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return Clock{}, fmt.Errorf("time %q out of range", s)
	}
	return Clock{Hour: h, Minute: m}, nil
}

// MustClock is ParseClock for literals known to be valid.
func MustClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Minutes returns minutes since midnight.
func (c Clock) Minutes() int { return c.Hour*60 + c.Minute }

// Add shifts the clock by n minutes. The result is not wrapped at midnight.
func (c Clock) Add(n int) Clock { return ClockFromMinutes(c.Minutes() + n) }

func (c Clock) Before(o Clock) bool { return c.Minutes() < o.Minutes() }
func (c Clock) After(o Clock) bool  { return c.Minutes() > o.Minutes() }

func (c Clock) String() string { return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute) }

func (c Clock) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Clock) UnmarshalText(b []byte) error {
	parsed, err := ParseClock(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
