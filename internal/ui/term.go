package ui

import (
	"os"

	"golang.org/x/term"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

func IsTTY() bool { return term.IsTerminal(int(os.Stdout.Fd())) }

// Size is the terminal size of stdout, or 80x24 when it is not a terminal.
func Size() (width, height int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return w, h
}
