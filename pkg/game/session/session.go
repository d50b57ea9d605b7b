// Package session coordinates a play session: the title menu, the settings
// panel, the active level's engine and the notifier. Front-ends feed it
// intents and draw the snapshots it produces.
package session

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"puzzleadventure/pkg/engine/audio"
	engineinput "puzzleadventure/pkg/engine/input"
	"puzzleadventure/pkg/engine/schedule"
	"puzzleadventure/pkg/game/i18n"
	"puzzleadventure/pkg/game/level"
	"puzzleadventure/pkg/game/memory"
	"puzzleadventure/pkg/game/menu"
	"puzzleadventure/pkg/game/notify"
	"puzzleadventure/pkg/game/puzzle"
	"puzzleadventure/pkg/game/settings"
	"puzzleadventure/pkg/game/state"
)

// ErrMissingDependency is returned by New when a required collaborator is nil
var ErrMissingDependency = errors.New("session: missing dependency")

// Screen is what the player is looking at
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenSettings
	ScreenControls
	ScreenLevel
	ScreenEnding
)

// String returns the screen name
func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenSettings:
		return "settings"
	case ScreenControls:
		return "controls"
	case ScreenLevel:
		return "level"
	case ScreenEnding:
		return "ending"
	default:
		return "unknown"
	}
}

// Config holds a session's collaborators
type Config struct {
	Settings  *settings.Store    // required
	Scheduler schedule.Scheduler // required; drives captions and playback
	Player    audio.Player       // nil plays nothing
	Rand      *rand.Rand         // nil seeds from the clock
	Logger    *log.Logger        // nil uses the standard logger
}

// Session is a single play-through. It is not safe for concurrent use: the
// owner that advances the scheduler must also call Dispatch and Snapshot.
type Session struct {
	store    *settings.Store
	sched    schedule.Scheduler
	rng      *rand.Rand
	logger   *log.Logger
	captions *state.Captions
	notifier *notify.Notifier

	screen   Screen
	returnTo Screen
	menu     *menu.Menu

	active   level.Level
	puzzle   *puzzle.Engine
	memory   *memory.Engine
	focus    int
	complete bool
}

// New creates a session showing the title menu
func New(cfg Config) (*Session, error) {
	if cfg.Settings == nil || cfg.Scheduler == nil {
		return nil, ErrMissingDependency
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	s := &Session{
		store:    cfg.Settings,
		sched:    cfg.Scheduler,
		rng:      cfg.Rand,
		logger:   cfg.Logger,
		captions: state.NewCaptions(),
	}
	s.notifier = notify.New(cfg.Settings, cfg.Player, s.captions, cfg.Scheduler)
	s.notifier.SetLogger(cfg.Logger)
	s.openTitle()
	return s, nil
}

// Screen returns the current screen
func (s *Session) Screen() Screen {
	return s.screen
}

// ActiveLevel returns the level being played, or level.None
func (s *Session) ActiveLevel() level.Level {
	return s.active
}

// Settings returns the live settings
func (s *Session) Settings() settings.Settings {
	return s.store.Current()
}

// Dispatch applies one intent. It reports whether the player asked to quit.
func (s *Session) Dispatch(intent engineinput.Intent) (quit bool) {
	if intent.Action == engineinput.ActionQuit {
		s.leaveLevel()
		return true
	}

	switch s.screen {
	case ScreenTitle, ScreenSettings, ScreenControls:
		if s.menu.Handle(intent) {
			return s.menuClosed()
		}
	case ScreenLevel:
		s.dispatchLevel(intent)
	case ScreenEnding:
		switch intent.Action {
		case engineinput.ActionActivate, engineinput.ActionNext, engineinput.ActionBack:
			s.openTitle()
		case engineinput.ActionSettings:
			s.openSettings()
		}
	}
	return false
}

// Close stops every pending timer the session owns
func (s *Session) Close() {
	s.leaveLevel()
	s.notifier.Stop()
}

func (s *Session) openTitle() {
	s.leaveLevel()
	s.screen = ScreenTitle
	s.menu = menu.New(menu.NewMainMenuHandler())
}

func (s *Session) openSettings() {
	s.returnTo = s.screen
	if s.screen == ScreenLevel {
		s.pauseLevel()
	}
	s.screen = ScreenSettings
	s.menu = menu.New(menu.NewSettingsMenuHandler(s.store))
}

func (s *Session) openControls() {
	s.returnTo = s.screen
	s.screen = ScreenControls
	s.menu = menu.New(menu.NewBindingsMenuHandler())
}

// menuClosed acts on whatever the closed menu decided
func (s *Session) menuClosed() (quit bool) {
	switch h := s.menu.Handler().(type) {
	case *menu.MainMenuHandler:
		switch h.GetSelectedAction() {
		case menu.MainMenuActionStart:
			s.StartLevel(level.First())
		case menu.MainMenuActionSettings:
			s.openSettings()
		case menu.MainMenuActionControls:
			s.openControls()
		case menu.MainMenuActionQuit:
			return true
		default:
			s.openTitle()
		}
	case *menu.SettingsMenuHandler:
		if h.Applied() {
			s.notifier.Notify(notify.Neutral, i18n.T("CAPTION_SETTINGS_APPLIED"))
		}
		s.back()
	default:
		s.back()
	}
	return false
}

// back returns from the settings or controls screen to where it was opened
func (s *Session) back() {
	switch s.returnTo {
	case ScreenLevel:
		s.screen = ScreenLevel
		s.menu = nil
		s.resumeLevel()
	case ScreenEnding:
		s.screen = ScreenEnding
		s.menu = nil
	default:
		s.openTitle()
	}
}
