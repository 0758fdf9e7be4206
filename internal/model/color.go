package model

import (
	"fmt"
	"strings"
)

// Color is the presentation tag of an event. Only the ten palette values are valid.
type Color string

const (
	Blue   Color = "blue"
	Green  Color = "green"
	Purple Color = "purple"
	Yellow Color = "yellow"
	Red    Color = "red"
	Pink   Color = "pink"
	Indigo Color = "indigo"
	Teal   Color = "teal"
	Orange Color = "orange"
	Cyan   Color = "cyan"
)

// Palette lists the colors in picker order.
var Palette = []Color{Blue, Green, Purple, Yellow, Red, Pink, Indigo, Teal, Orange, Cyan}

// ParseColor accepts a palette name in any case, or the "bg-<name>-<shade>" form
// used by older seed files.
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if rest, ok := strings.CutPrefix(name, "bg-"); ok {
		name, _, _ = strings.Cut(rest, "-")
	}
	for _, c := range Palette {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown color %q", s)
}

func (c Color) Valid() bool {
	for _, p := range Palette {
		if p == c {
			return true
		}
	}
	return false
}

// Next returns the following palette color, wrapping around.
func (c Color) Next() Color {
	for i, p := range Palette {
		if p == c {
			return Palette[(i+1)%len(Palette)]
		}
	}
	return Palette[0]
}

func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("unknown color %q", string(c))
	}
	return []byte(c), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
