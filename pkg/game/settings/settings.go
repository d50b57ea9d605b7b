// Package settings holds the accessibility options shared by the notifier and
// the front-ends. Values change only through an explicit Apply.
package settings

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings is the accessibility configuration record
type Settings struct {
	HighContrast bool `env:"PUZZLE_HIGH_CONTRAST" envDefault:"false"`
	DyslexiaFont bool `env:"PUZZLE_DYSLEXIA_FONT" envDefault:"false"`
	AudioCues    bool `env:"PUZZLE_AUDIO_CUES" envDefault:"true"`
	Captions     bool `env:"PUZZLE_CAPTIONS" envDefault:"true"`
}

// Defaults returns the settings a fresh process starts with
func Defaults() Settings {
	return Settings{
		AudioCues: true,
		Captions:  true,
	}
}

// FromEnv loads settings from PUZZLE_* environment variables, starting from
// the defaults. On a parse error the defaults are returned with the error.
func FromEnv() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Defaults(), fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}

// Option names one of the boolean settings
type Option int

const (
	OptionHighContrast Option = iota
	OptionDyslexiaFont
	OptionAudioCues
	OptionCaptions
)

// Options returns every option in display order
func Options() []Option {
	return []Option{OptionHighContrast, OptionDyslexiaFont, OptionAudioCues, OptionCaptions}
}

// LabelKey returns the catalog key of the option's label
func (o Option) LabelKey() string {
	switch o {
	case OptionHighContrast:
		return "OPTION_HIGH_CONTRAST"
	case OptionDyslexiaFont:
		return "OPTION_DYSLEXIA_FONT"
	case OptionAudioCues:
		return "OPTION_AUDIO_CUES"
	case OptionCaptions:
		return "OPTION_CAPTIONS"
	default:
		return "OPTION_UNKNOWN"
	}
}

// HelpKey returns the catalog key of the option's help text
func (o Option) HelpKey() string {
	return o.LabelKey() + "_HELP"
}

// Get returns the value of one option
func (s Settings) Get(o Option) bool {
	switch o {
	case OptionHighContrast:
		return s.HighContrast
	case OptionDyslexiaFont:
		return s.DyslexiaFont
	case OptionAudioCues:
		return s.AudioCues
	case OptionCaptions:
		return s.Captions
	default:
		return false
	}
}

// With returns a copy with one option set to v
func (s Settings) With(o Option, v bool) Settings {
	switch o {
	case OptionHighContrast:
		s.HighContrast = v
	case OptionDyslexiaFont:
		s.DyslexiaFont = v
	case OptionAudioCues:
		s.AudioCues = v
	case OptionCaptions:
		s.Captions = v
	}
	return s
}

// Toggle returns a copy with one option flipped
func (s Settings) Toggle(o Option) Settings {
	return s.With(o, !s.Get(o))
}

// Source is read-only access to the current settings
type Source interface {
	Current() Settings
}

// Store owns the live settings record. It is not safe for concurrent use;
// the game loop owns it and front-ends see copies in render snapshots.
type Store struct {
	current   Settings
	listeners []func(Settings)
}

// NewStore creates a store holding the initial settings
func NewStore(initial Settings) *Store {
	return &Store{current: initial}
}

// Current returns a copy of the live settings
func (s *Store) Current() Settings {
	return s.current
}

// Apply replaces the live settings and notifies listeners.
// It reports whether anything changed.
func (s *Store) Apply(next Settings) bool {
	changed := next != s.current
	s.current = next
	for _, fn := range s.listeners {
		fn(next)
	}
	return changed
}

// OnApply registers a listener called after every Apply
func (s *Store) OnApply(fn func(Settings)) {
	s.listeners = append(s.listeners, fn)
}
