package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the width and height of the terminal attached to f.
// Falls back to defaults if the size cannot be determined.
func GetSize(f *os.File) (width, height int) {
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the terminal width of f.
func GetWidth(f *os.File) int {
	width, _ := GetSize(f)
	return width
}

// IsInteractive reports whether f is a terminal that can be put in raw mode.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
