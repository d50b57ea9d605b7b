package session

import (
	"puzzleadventure/pkg/engine/grid"
	engineinput "puzzleadventure/pkg/engine/input"
	"puzzleadventure/pkg/game/i18n"
	"puzzleadventure/pkg/game/memory"
	"puzzleadventure/pkg/game/notify"
	"puzzleadventure/pkg/game/puzzle"
)

func (s *Session) startPuzzle() {
	if _, err := s.puzzle.NewGame(); err != nil {
		s.logger.Printf("session: start puzzle: %v", err)
		s.notifier.Notify(notify.Invalid, i18n.T("CAPTION_SHUFFLE_FAILED"))
		return
	}
	s.captions.ClearMessages()
	s.notifier.Notify(notify.Move, i18n.T("CAPTION_PUZZLE_STARTED"))
}

func (s *Session) startMemory() {
	s.captions.ClearMessages()
	s.notifier.Notify(notify.Neutral, i18n.T("CAPTION_MEMORY_STARTED"))
	s.memory.Start()
}

// arrowDirection maps movement actions to board directions
func arrowDirection(a engineinput.Action) (grid.Direction, bool) {
	switch a {
	case engineinput.ActionMoveUp:
		return grid.Up, true
	case engineinput.ActionMoveDown:
		return grid.Down, true
	case engineinput.ActionMoveLeft:
		return grid.Left, true
	case engineinput.ActionMoveRight:
		return grid.Right, true
	default:
		return 0, false
	}
}

func (s *Session) dispatchPuzzle(intent engineinput.Intent) {
	if d, ok := arrowDirection(intent.Action); ok {
		if outcome, moved := s.puzzle.MoveDirection(d); moved {
			s.puzzleOutcome(outcome)
		}
		return
	}

	switch intent.Action {
	case engineinput.ActionFocusNext:
		s.focus = (s.focus + 1) % puzzle.Cells
	case engineinput.ActionFocusPrev:
		s.focus = (s.focus + puzzle.Cells - 1) % puzzle.Cells
	case engineinput.ActionActivate:
		s.puzzleOutcome(s.puzzle.TryMove(s.focus))
	case engineinput.ActionSelect:
		if intent.Index >= 0 && intent.Index < puzzle.Cells {
			s.focus = intent.Index
		}
		s.puzzleOutcome(s.puzzle.TryMove(intent.Index))
	}
}

func (s *Session) puzzleOutcome(outcome puzzle.MoveOutcome) {
	switch outcome {
	case puzzle.Moved:
		s.notifier.Notify(notify.Move, i18n.T("CAPTION_MOVED"))
		if s.puzzle.Solved() {
			s.complete = true
			s.notifier.Notify(notify.Win, i18n.T("CAPTION_PUZZLE_COMPLETE"))
		}
	case puzzle.Invalid:
		s.notifier.Notify(notify.Invalid, i18n.T("CAPTION_INVALID_MOVE"))
	case puzzle.Ignored:
		// Already solved
	}
}

func (s *Session) dispatchMemory(intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionFocusNext, engineinput.ActionMoveRight, engineinput.ActionMoveDown:
		s.focus = (s.focus + 1) % memory.NumColors
	case engineinput.ActionFocusPrev, engineinput.ActionMoveLeft, engineinput.ActionMoveUp:
		s.focus = (s.focus + memory.NumColors - 1) % memory.NumColors
	case engineinput.ActionActivate:
		s.memoryOutcome(s.memory.Submit(memory.Color(s.focus)))
	case engineinput.ActionSelect:
		if intent.Index >= 0 && intent.Index < memory.NumColors {
			s.focus = intent.Index
		}
		s.memoryOutcome(s.memory.Submit(memory.Color(intent.Index)))
	}
}

func (s *Session) memoryOutcome(outcome memory.RoundOutcome) {
	switch outcome {
	case memory.Continuing:
		entered := len(s.memory.Replay())
		s.notifier.Notify(notify.Move, i18n.T("CAPTION_CORRECT", entered, s.memory.Length()))
	case memory.RoundMismatch:
		s.notifier.Notify(notify.Invalid, i18n.T("CAPTION_MISMATCH"))
	case memory.RoundComplete:
		s.notifier.Notify(notify.Move, i18n.T("CAPTION_ROUND_COMPLETE"))
	case memory.Won:
		s.complete = true
		s.notifier.Notify(notify.Win, i18n.T("CAPTION_MEMORY_WON"))
	case memory.Ignored:
		if s.memory.Phase() == memory.PhasePlayback {
			s.notifier.Notify(notify.Neutral, i18n.T("CAPTION_WAIT"))
		}
	}
}

// memoryCues relays playback events from the memory engine to the notifier
type memoryCues struct {
	s *Session
}

func (c memoryCues) Flash(color memory.Color, _ int) {
	c.s.notifier.Notify(notify.Pattern, i18n.T("CAPTION_FLASH", i18n.T(color.LabelKey())))
}

func (c memoryCues) PlaybackDone(int) {
	c.s.notifier.Notify(notify.Neutral, i18n.T("CAPTION_YOUR_TURN"))
}
