// Package audio synthesizes short feedback tones and plays them.
package audio

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// SampleRate is the PCM sample rate used for synthesized tones
const SampleRate = 44100

// ErrInvalidTone is returned when a tone cannot be synthesized
var ErrInvalidTone = errors.New("audio: invalid tone")

// Waveform selects the oscillator shape
type Waveform int

const (
	Triangle Waveform = iota
	Sine
	Square
)

// String returns the oscillator name
func (w Waveform) String() string {
	switch w {
	case Triangle:
		return "triangle"
	case Sine:
		return "sine"
	case Square:
		return "square"
	default:
		return "unknown"
	}
}

// Tone describes a single oscillator note
type Tone struct {
	Frequency float64 // Hz
	Duration  time.Duration
	Gain      float64 // 0.0 to 1.0
	Waveform  Waveform
}

// Validate checks the tone can be synthesized
func (t Tone) Validate() error {
	if t.Frequency <= 0 || t.Frequency >= SampleRate/2 {
		return fmt.Errorf("%w: frequency %.1fHz", ErrInvalidTone, t.Frequency)
	}
	if t.Duration <= 0 {
		return fmt.Errorf("%w: duration %v", ErrInvalidTone, t.Duration)
	}
	if t.Gain < 0 || t.Gain > 1 {
		return fmt.Errorf("%w: gain %.2f", ErrInvalidTone, t.Gain)
	}
	return nil
}

// Player plays tones on some output device
type Player interface {
	PlayTone(t Tone) error
}

// Mute discards every tone
type Mute struct{}

// PlayTone does nothing
func (Mute) PlayTone(Tone) error {
	return nil
}

// Bell rings the terminal bell for every tone. Terminals cannot vary the
// pitch, so every category sounds the same.
type Bell struct {
	W io.Writer
}

// PlayTone writes a BEL control character
func (b Bell) PlayTone(t Tone) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if _, err := io.WriteString(b.W, "\a"); err != nil {
		return fmt.Errorf("ring bell: %w", err)
	}
	return nil
}
