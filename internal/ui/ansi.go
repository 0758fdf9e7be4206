package ui

import (
	"fmt"
	"os"

	"github.com/idilsaglam/weekcal/internal/model"
)

var (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"

	symCheck = "✔"
	symCross = "✖"
)

// 256-colour foregrounds for event colours.
var swatches = map[model.Color]string{
	model.Blue:   "\033[38;5;33m",
	model.Green:  "\033[38;5;35m",
	model.Purple: "\033[38;5;135m",
	model.Yellow: "\033[38;5;220m",
	model.Red:    "\033[38;5;196m",
	model.Pink:   "\033[38;5;205m",
	model.Indigo: "\033[38;5;62m",
	model.Teal:   "\033[38;5;30m",
	model.Orange: "\033[38;5;208m",
	model.Cyan:   "\033[38;5;44m",
}

var (
	forceColor   bool
	disableColor bool
)

func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

func C(color, s string) string {
	if disableColor {
		return s
	}
	if forceColor || IsTTY() {
		return color + s + reset
	}
	return s
}

// Swatch renders s in the event colour c.
func Swatch(c model.Color, s string) string {
	code, ok := swatches[c]
	if !ok {
		return s
	}
	return C(code, s)
}

func Dim(s string) string { return C(dim, s) }

func OK(msg string)   { fmt.Println(C(fgGreen, symCheck+" "+msg)) }
func Fail(msg string) { fmt.Fprintln(os.Stderr, C(fgRed, symCross+" "+msg)) }
