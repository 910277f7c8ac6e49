package ui

import (
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	colorOnce sync.Once
	colorOK   bool
)

// ColorTerminal reports whether stdout can render ANSI color.
// Returns false when output is piped, NO_COLOR is set, or the
// terminal profile is monochrome.
func ColorTerminal() bool {
	colorOnce.Do(func() {
		if os.Getenv("NO_COLOR") != "" {
			return
		}
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return
		}
		colorOK = termenv.ColorProfile() != termenv.Ascii
	})
	return colorOK
}

// Width returns the terminal width, or 100 when stdout is not a
// terminal. Used to size rendered tables.
func Width() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 100
	}
	return w
}
