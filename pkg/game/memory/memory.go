// Package memory implements the colour-pattern memory game: the engine plays
// back a growing sequence, then checks the player's replay of it.
package memory

import "time"

// Playback timing and win condition
const (
	InitialDelay = 900 * time.Millisecond
	Step         = 600 * time.Millisecond
	FlashOn      = 400 * time.Millisecond
	WinLength    = 5
)

// Color is one of the four pads
type Color int

const (
	Red Color = iota
	Green
	Blue
	Yellow
)

// NumColors is the palette size
const NumColors = 4

// Colors returns the palette in pad order
func Colors() []Color {
	return []Color{Red, Green, Blue, Yellow}
}

// IsValid reports whether c is a palette colour
func (c Color) IsValid() bool {
	return c >= 0 && c < NumColors
}

// String returns the colour name
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// LabelKey returns the catalog key of the colour's name
func (c Color) LabelKey() string {
	switch c {
	case Red:
		return "COLOR_RED"
	case Green:
		return "COLOR_GREEN"
	case Blue:
		return "COLOR_BLUE"
	case Yellow:
		return "COLOR_YELLOW"
	default:
		return "COLOR_UNKNOWN"
	}
}

// Phase is the engine's state
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlayback
	PhaseInput
	PhaseWon
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlayback:
		return "playback"
	case PhaseInput:
		return "input"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// RoundOutcome is the result of submitting one colour
type RoundOutcome int

const (
	// Continuing means the colour was right and more are expected
	Continuing RoundOutcome = iota
	// RoundMismatch means the colour was wrong; a new length-1 round started
	RoundMismatch
	// RoundComplete means the replay was finished and the next round started
	RoundComplete
	// Won means the final round was replayed
	Won
	// Ignored means the engine was not waiting for input
	Ignored
)

// String returns the outcome name
func (o RoundOutcome) String() string {
	switch o {
	case Continuing:
		return "continuing"
	case RoundMismatch:
		return "mismatch"
	case RoundComplete:
		return "round complete"
	case Won:
		return "won"
	case Ignored:
		return "ignored"
	default:
		return "unknown"
	}
}

// Listener hears about playback as it happens
type Listener interface {
	// Flash is called as the pad at position of the sequence lights up
	Flash(c Color, position int)
	// PlaybackDone is called once the sequence has been shown
	PlaybackDone(length int)
}

type nopListener struct{}

func (nopListener) Flash(Color, int) {}
func (nopListener) PlaybackDone(int) {}
