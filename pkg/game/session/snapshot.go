package session

import (
	"puzzleadventure/pkg/game/i18n"
	"puzzleadventure/pkg/game/level"
	"puzzleadventure/pkg/game/memory"
	"puzzleadventure/pkg/game/menu"
	"puzzleadventure/pkg/game/puzzle"
	"puzzleadventure/pkg/game/settings"
)

// TileView is one board slot as the front-ends draw it
type TileView struct {
	Value   int
	Label   string // Spoken / screen-reader label
	Empty   bool
	Movable bool
	Focused bool
}

// PuzzleView is the sliding puzzle as the front-ends draw it
type PuzzleView struct {
	Size   int
	Tiles  []TileView
	Solved bool
}

// PadView is one colour pad
type PadView struct {
	Color   memory.Color
	Label   string
	Lit     bool
	Focused bool
}

// MemoryView is the memory game as the front-ends draw it
type MemoryView struct {
	Phase      memory.Phase
	PhaseLabel string
	Pads       []PadView
	Progress   string
}

// Snapshot is an immutable copy of everything a front-end needs for a frame
type Snapshot struct {
	Screen   Screen
	Level    level.Level
	Title    string
	Story    string
	Help     string
	Complete bool

	Menu   *menu.View
	Puzzle *PuzzleView
	Memory *MemoryView

	Caption  string
	Messages []string
	Settings settings.Settings
}

// Snapshot captures the current state for rendering
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Screen:   s.screen,
		Level:    s.active,
		Complete: s.complete,
		Caption:  s.captions.Current,
		Messages: s.captions.Recent(),
		Settings: s.store.Current(),
	}

	switch s.screen {
	case ScreenTitle, ScreenSettings, ScreenControls:
		v := s.menu.View()
		snap.Menu = &v
		snap.Title = v.Title
	case ScreenEnding:
		snap.Title = i18n.T("LEVEL_ENDING")
		snap.Story = i18n.T("STORY_ENDING")
		snap.Help = i18n.T("HELP_ENDING")
	case ScreenLevel:
		d, _ := level.Describe(s.active)
		snap.Title = i18n.T(d.TitleKey)
		snap.Help = i18n.T(d.HelpKey)
		snap.Story = i18n.T(d.IntroKey)
		if s.complete {
			snap.Story = i18n.T(d.CompleteKey)
		}
		if s.puzzle != nil {
			snap.Puzzle = s.puzzleView()
		}
		if s.memory != nil {
			snap.Memory = s.memoryView()
		}
	}
	return snap
}

func (s *Session) puzzleView() *PuzzleView {
	board := s.puzzle.Board()
	movable := s.puzzle.Movable()
	v := &PuzzleView{
		Size:   puzzle.Size,
		Tiles:  make([]TileView, len(board)),
		Solved: s.puzzle.Solved(),
	}
	for i, val := range board {
		tile := TileView{
			Value:   val,
			Empty:   val == puzzle.Empty,
			Movable: movable.Has(i),
			Focused: i == s.focus,
		}
		if tile.Empty {
			tile.Label = i18n.T("TILE_EMPTY")
		} else {
			tile.Label = i18n.T("TILE_LABEL", val)
		}
		v.Tiles[i] = tile
	}
	return v
}

func (s *Session) memoryView() *MemoryView {
	lit, isLit := s.memory.Lit()
	phase := s.memory.Phase()
	v := &MemoryView{
		Phase:      phase,
		PhaseLabel: i18n.T(phaseKey(phase)),
		Progress:   i18n.T("MEMORY_PROGRESS", s.memory.Length(), memory.WinLength, len(s.memory.Replay())),
	}
	for _, c := range memory.Colors() {
		v.Pads = append(v.Pads, PadView{
			Color:   c,
			Label:   i18n.T(c.LabelKey()),
			Lit:     isLit && lit == c,
			Focused: int(c) == s.focus,
		})
	}
	return v
}

func phaseKey(p memory.Phase) string {
	switch p {
	case memory.PhasePlayback:
		return "MEMORY_PHASE_PLAYBACK"
	case memory.PhaseInput:
		return "MEMORY_PHASE_INPUT"
	case memory.PhaseWon:
		return "MEMORY_PHASE_WON"
	default:
		return "MEMORY_PHASE_IDLE"
	}
}
