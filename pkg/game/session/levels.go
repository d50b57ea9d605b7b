package session

import (
	engineinput "puzzleadventure/pkg/engine/input"
	"puzzleadventure/pkg/game/i18n"
	"puzzleadventure/pkg/game/level"
	"puzzleadventure/pkg/game/memory"
	"puzzleadventure/pkg/game/notify"
	"puzzleadventure/pkg/game/puzzle"
)

// StartLevel discards any running level and starts l with fresh engines
func (s *Session) StartLevel(l level.Level) {
	if _, ok := level.Describe(l); !ok {
		s.logger.Printf("session: no such level %v", l)
		return
	}

	s.leaveLevel()
	s.active = l
	s.screen = ScreenLevel
	s.menu = nil
	s.focus = 0
	s.complete = false

	switch l {
	case level.Puzzle:
		s.puzzle = puzzle.NewEngine(s.rng)
		s.startPuzzle()
	case level.Memory:
		s.memory = memory.NewEngine(s.sched, s.rng, memoryCues{s})
		s.startMemory()
	}
}

// RestartLevel starts the active level over
func (s *Session) RestartLevel() {
	if s.active == level.None {
		return
	}
	s.complete = false
	s.focus = 0
	switch s.active {
	case level.Puzzle:
		s.startPuzzle()
	case level.Memory:
		s.startMemory()
	}
}

// Advance moves on from a completed level
func (s *Session) Advance() {
	if !s.complete {
		return
	}
	if level.IsFinal(s.active) {
		s.showEnding()
		return
	}
	next, _ := level.Next(s.active)
	s.StartLevel(next)
}

func (s *Session) showEnding() {
	s.leaveLevel()
	s.screen = ScreenEnding
	s.notifier.Notify(notify.Neutral, i18n.T("STORY_ENDING"))
}

// leaveLevel stops the active engine so none of its timers fire again
func (s *Session) leaveLevel() {
	if s.memory != nil {
		s.memory.Stop()
	}
	s.memory = nil
	s.puzzle = nil
	s.active = level.None
	s.complete = false
}

// pauseLevel halts playback while the settings panel is open
func (s *Session) pauseLevel() {
	if s.memory != nil && !s.complete {
		s.memory.Stop()
	}
}

// resumeLevel picks the level back up after the settings panel closes.
// A paused pattern cannot be resumed part way, so the memory game restarts.
func (s *Session) resumeLevel() {
	if s.memory != nil && !s.complete {
		s.startMemory()
	}
}

func (s *Session) dispatchLevel(intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionRestart:
		s.RestartLevel()
		return
	case engineinput.ActionNext:
		s.Advance()
		return
	case engineinput.ActionSettings:
		s.openSettings()
		return
	case engineinput.ActionBack:
		s.openTitle()
		return
	}

	switch s.active {
	case level.Puzzle:
		s.dispatchPuzzle(intent)
	case level.Memory:
		s.dispatchMemory(intent)
	}
}
