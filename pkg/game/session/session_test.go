package session

import (
	"errors"
	"io"
	"log"
	"math/rand"
	"testing"
	"time"

	"puzzleadventure/pkg/engine/audio"
	engineinput "puzzleadventure/pkg/engine/input"
	"puzzleadventure/pkg/engine/schedule"
	"puzzleadventure/pkg/game/level"
	"puzzleadventure/pkg/game/memory"
	"puzzleadventure/pkg/game/puzzle"
	"puzzleadventure/pkg/game/settings"
)

type recordingPlayer struct {
	tones []audio.Tone
}

func (p *recordingPlayer) PlayTone(t audio.Tone) error {
	p.tones = append(p.tones, t)
	return nil
}

func (p *recordingPlayer) frequencies() []float64 {
	out := make([]float64, len(p.tones))
	for i, t := range p.tones {
		out[i] = t.Frequency
	}
	return out
}

func (p *recordingPlayer) reset() {
	p.tones = nil
}

type fixture struct {
	store   *settings.Store
	clock   *schedule.Manual
	player  *recordingPlayer
	session *Session
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:  settings.NewStore(settings.Defaults()),
		clock:  schedule.NewManual(),
		player: &recordingPlayer{},
	}
	s, err := New(Config{
		Settings:  f.store,
		Scheduler: f.clock,
		Player:    f.player,
		Rand:      rand.New(rand.NewSource(3)),
		Logger:    log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	f.session = s
	return f
}

func (f *fixture) do(t *testing.T, actions ...engineinput.Action) bool {
	t.Helper()
	quit := false
	for _, a := range actions {
		quit = f.session.Dispatch(engineinput.Intent{Action: a, Index: -1})
	}
	return quit
}

func (f *fixture) selectIndex(t *testing.T, idx int) bool {
	t.Helper()
	return f.session.Dispatch(engineinput.Intent{Action: engineinput.ActionSelect, Index: idx})
}

// loadPuzzle puts a known one-move-from-solved board on the active puzzle
func (f *fixture) loadPuzzle(t *testing.T) {
	t.Helper()
	if f.session.ActiveLevel() != level.Puzzle {
		t.Fatalf("active level = %v, want puzzle", f.session.ActiveLevel())
	}
	if err := f.session.puzzle.Load(puzzle.Board{1, 0, 2, 3, 4, 5, 6, 7, 8}); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

// waitForInput advances the clock until the memory game accepts input
func (f *fixture) waitForInput(t *testing.T) {
	t.Helper()
	for i := 0; i < 100 && f.session.memory.Phase() != memory.PhaseInput; i++ {
		f.clock.Advance(100 * time.Millisecond)
	}
	if f.session.memory.Phase() != memory.PhaseInput {
		t.Fatalf("memory phase = %v, want input", f.session.memory.Phase())
	}
}

func (f *fixture) replayPattern(t *testing.T) {
	t.Helper()
	for _, c := range f.session.memory.Sequence() {
		f.selectIndex(t, int(c))
	}
}

func TestNew_RequiresDependencies(t *testing.T) {
	if _, err := New(Config{}); !errors.Is(err, ErrMissingDependency) {
		t.Errorf("New(empty) = %v, want ErrMissingDependency", err)
	}
}

func TestNew_StartsOnTitle(t *testing.T) {
	f := newFixture(t)
	snap := f.session.Snapshot()
	if snap.Screen != ScreenTitle || snap.Menu == nil {
		t.Fatalf("Snapshot screen = %v menu = %v, want title menu", snap.Screen, snap.Menu)
	}
	if snap.Title != "Puzzle Adventure" {
		t.Errorf("title = %q", snap.Title)
	}
	if f.session.ActiveLevel() != level.None {
		t.Errorf("ActiveLevel() = %v, want none", f.session.ActiveLevel())
	}
}

func TestStart_AnnouncesPuzzle(t *testing.T) {
	f := newFixture(t)
	f.do(t, engineinput.ActionActivate)

	snap := f.session.Snapshot()
	if snap.Screen != ScreenLevel || snap.Level != level.Puzzle {
		t.Fatalf("after Start: screen %v level %v", snap.Screen, snap.Level)
	}
	if snap.Caption != "Puzzle started. Use arrow keys or click tiles to move." {
		t.Errorf("caption = %q", snap.Caption)
	}
	if got := f.player.frequencies(); len(got) != 1 || got[0] != 440 {
		t.Errorf("tones = %v, want [440]", got)
	}
	if snap.Puzzle == nil || len(snap.Puzzle.Tiles) != puzzle.Cells || snap.Puzzle.Solved {
		t.Errorf("puzzle view = %+v", snap.Puzzle)
	}
}

func TestPuzzle_InvalidMove(t *testing.T) {
	f := newFixture(t)
	f.session.StartLevel(level.Puzzle)
	f.loadPuzzle(t)
	f.player.reset()

	f.selectIndex(t, 8)
	if got := f.player.frequencies(); len(got) != 1 || got[0] != 220 {
		t.Errorf("tones = %v, want [220]", got)
	}
	if got := f.session.Snapshot().Caption; got != "Invalid move." {
		t.Errorf("caption = %q, want %q", got, "Invalid move.")
	}
}

func TestPuzzle_ArrowAtEdgeIsSilent(t *testing.T) {
	f := newFixture(t)
	f.session.StartLevel(level.Puzzle)
	f.loadPuzzle(t)
	f.player.reset()

	// Blank on the top row: nothing above it can slide down
	f.do(t, engineinput.ActionMoveDown)
	if len(f.player.tones) != 0 {
		t.Errorf("tones = %v, want none", f.player.frequencies())
	}
	if f.session.puzzle.Board() != (puzzle.Board{1, 0, 2, 3, 4, 5, 6, 7, 8}) {
		t.Errorf("board changed: %v", f.session.puzzle.Board())
	}
}

func TestPuzzle_SolveThenAdvance(t *testing.T) {
	f := newFixture(t)
	f.session.StartLevel(level.Puzzle)
	f.loadPuzzle(t)
	f.player.reset()

	// Blank at 1; Right slides the tile at 0 into it
	f.do(t, engineinput.ActionMoveRight)
	if got := f.player.frequencies(); len(got) != 2 || got[0] != 440 || got[1] != 660 {
		t.Fatalf("tones = %v, want [440 660]", got)
	}
	snap := f.session.Snapshot()
	if !snap.Complete || !snap.Puzzle.Solved {
		t.Fatal("puzzle not reported complete")
	}
	if snap.Caption != "Puzzle complete! Well done." {
		t.Errorf("caption = %q", snap.Caption)
	}

	f.player.reset()
	f.selectIndex(t, 3)
	if len(f.player.tones) != 0 {
		t.Error("move after solve made a sound")
	}

	f.do(t, engineinput.ActionNext)
	if f.session.ActiveLevel() != level.Memory {
		t.Errorf("after Next active level = %v, want memory", f.session.ActiveLevel())
	}
}

func TestPuzzle_NextIgnoredUntilSolved(t *testing.T) {
	f := newFixture(t)
	f.session.StartLevel(level.Puzzle)
	f.do(t, engineinput.ActionNext)
	if f.session.ActiveLevel() != level.Puzzle {
		t.Errorf("Next before solving moved to %v", f.session.ActiveLevel())
	}
}

func TestPuzzle_TabFocusAndActivate(t *testing.T) {
	f := newFixture(t)
	f.session.StartLevel(level.Puzzle)
	f.loadPuzzle(t)

	f.do(t, engineinput.ActionFocusNext, engineinput.ActionFocusNext, engineinput.ActionFocusNext)
	snap := f.session.Snapshot()
	if !snap.Puzzle.Tiles[3].Focused {
		t.Fatal("tile 3 not focused after three Tabs")
	}
	f.do(t, engineinput.ActionFocusPrev, engineinput.ActionFocusPrev, engineinput.ActionFocusPrev, engineinput.ActionFocusPrev)
	if !f.session.Snapshot().Puzzle.Tiles[8].Focused {
		t.Fatal("focus did not wrap to the last tile")
	}

	f.do(t, engineinput.ActionFocusNext) // wraps to 0, next to the blank
	f.do(t, engineinput.ActionActivate)
	if !f.session.Snapshot().Complete {
		t.Error("activating the focused tile did not move it")
	}
}

func TestMemory_PlaybackCuesAndReplay(t *testing.T) {
	f := newFixture(t)
	f.session.StartLevel(level.Memory)
	f.player.reset()

	f.waitForInput(t)
	got := f.player.frequencies()
	if len(got) != 2 || got[0] != 550 || got[1] != 330 {
		t.Fatalf("playback tones = %v, want [550 330]", got)
	}
	if f.session.Snapshot().Caption != "Your turn. Repeat the pattern." {
		t.Errorf("caption = %q", f.session.Snapshot().Caption)
	}

	f.replayPattern(t)
	if f.session.memory.Length() != 2 {
		t.Fatalf("pattern length = %d after round 1, want 2", f.session.memory.Length())
	}
	if f.session.Snapshot().Caption != "Round complete. Watch the next pattern." {
		t.Errorf("caption = %q", f.session.Snapshot().Caption)
	}
}

func TestMemory_InputDuringPlaybackAsksToWait(t *testing.T) {
	f := newFixture(t)
	f.session.StartLevel(level.Memory)

	f.selectIndex(t, 0)
	if got := f.session.Snapshot().Caption; got != "Watch the pattern first." {
		t.Errorf("caption = %q, want wait notice", got)
	}
	if f.session.memory.Phase() != memory.PhasePlayback {
		t.Errorf("phase = %v, want playback", f.session.memory.Phase())
	}
}

func TestMemory_MismatchRestarts(t *testing.T) {
	f := newFixture(t)
	f.session.StartLevel(level.Memory)
	f.waitForInput(t)

	wrong := (int(f.session.memory.Sequence()[0]) + 1) % memory.NumColors
	f.player.reset()
	f.selectIndex(t, wrong)

	if got := f.player.frequencies(); len(got) != 1 || got[0] != 220 {
		t.Errorf("tones = %v, want [220]", got)
	}
	if f.session.memory.Length() != 1 || f.session.memory.Phase() != memory.PhasePlayback {
		t.Errorf("after mismatch: length %d phase %v", f.session.memory.Length(), f.session.memory.Phase())
	}
}

func TestMemory_WinThenEnding(t *testing.T) {
	f := newFixture(t)
	f.session.StartLevel(level.Memory)

	for round := 1; round <= memory.WinLength; round++ {
		f.waitForInput(t)
		f.replayPattern(t)
	}
	snap := f.session.Snapshot()
	if !snap.Complete || snap.Memory.Phase != memory.PhaseWon {
		t.Fatalf("after five rounds: complete %v phase %v", snap.Complete, snap.Memory.Phase)
	}
	if snap.Caption != "Pattern memory complete! Well done." {
		t.Errorf("caption = %q", snap.Caption)
	}

	f.do(t, engineinput.ActionNext)
	snap = f.session.Snapshot()
	if snap.Screen != ScreenEnding || snap.Caption != "To be continued… More adventure coming soon!" {
		t.Fatalf("ending screen %v caption %q", snap.Screen, snap.Caption)
	}

	f.do(t, engineinput.ActionActivate)
	if f.session.Screen() != ScreenTitle {
		t.Errorf("after ending screen = %v, want title", f.session.Screen())
	}
}

func TestSwitchingLevel_DropsMemoryTimers(t *testing.T) {
	f := newFixture(t)
	f.session.StartLevel(level.Memory)
	f.clock.Advance(memory.InitialDelay + 100*time.Millisecond) // mid flash

	f.session.StartLevel(level.Puzzle)
	f.player.reset()
	f.clock.Advance(time.Minute)

	for _, hz := range f.player.frequencies() {
		if hz == 550 {
			t.Fatal("pattern tone from the discarded memory engine")
		}
	}
	if f.session.memory != nil {
		t.Error("memory engine kept after switching level")
	}
}

func TestSettings_ApplyFromTitle(t *testing.T) {
	f := newFixture(t)
	f.selectIndex(t, 1) // Settings
	if f.session.Screen() != ScreenSettings {
		t.Fatalf("screen = %v, want settings", f.session.Screen())
	}

	f.do(t, engineinput.ActionActivate) // high contrast on
	f.selectIndex(t, 4)                 // Apply
	if !f.store.Current().HighContrast {
		t.Error("high contrast not applied")
	}
	snap := f.session.Snapshot()
	if snap.Screen != ScreenTitle || snap.Caption != "Settings applied." {
		t.Errorf("after Apply: screen %v caption %q", snap.Screen, snap.Caption)
	}
	if !snap.Settings.HighContrast {
		t.Error("snapshot settings stale")
	}
}

func TestSettings_BackDiscards(t *testing.T) {
	f := newFixture(t)
	f.selectIndex(t, 1)
	f.do(t, engineinput.ActionActivate, engineinput.ActionBack)

	if f.store.Current() != settings.Defaults() {
		t.Errorf("store = %+v, want defaults", f.store.Current())
	}
	if f.session.Snapshot().Caption != "" {
		t.Errorf("caption = %q, want none after Back", f.session.Snapshot().Caption)
	}
}

func TestSettings_FromLevelReturnsToLevel(t *testing.T) {
	f := newFixture(t)
	f.session.StartLevel(level.Puzzle)
	f.loadPuzzle(t)

	f.do(t, engineinput.ActionSettings)
	if f.session.Screen() != ScreenSettings {
		t.Fatalf("screen = %v, want settings", f.session.Screen())
	}
	f.do(t, engineinput.ActionBack)
	if f.session.Screen() != ScreenLevel || f.session.ActiveLevel() != level.Puzzle {
		t.Fatalf("after Back: screen %v level %v", f.session.Screen(), f.session.ActiveLevel())
	}
	if f.session.puzzle.Board() != (puzzle.Board{1, 0, 2, 3, 4, 5, 6, 7, 8}) {
		t.Error("board lost across the settings panel")
	}
}

func TestCaptionsOff_NoCaptionButTone(t *testing.T) {
	f := newFixture(t)
	f.store.Apply(settings.Settings{AudioCues: true})
	f.session.StartLevel(level.Puzzle)

	snap := f.session.Snapshot()
	if snap.Caption != "" || len(snap.Messages) != 0 {
		t.Errorf("caption %q log %v, want none", snap.Caption, snap.Messages)
	}
	if len(f.player.tones) != 1 {
		t.Errorf("tones = %d, want 1", len(f.player.tones))
	}
}

func TestCaptionClearsAfterTimeout(t *testing.T) {
	f := newFixture(t)
	f.session.StartLevel(level.Puzzle)
	f.clock.Advance(2500 * time.Millisecond)

	if got := f.session.Snapshot().Caption; got != "" {
		t.Errorf("caption = %q after 2.5s, want cleared", got)
	}
	if len(f.session.Snapshot().Messages) == 0 {
		t.Error("message log emptied with the caption")
	}
}

func TestQuit(t *testing.T) {
	f := newFixture(t)
	f.session.StartLevel(level.Memory)
	if !f.do(t, engineinput.ActionQuit) {
		t.Fatal("Dispatch(quit) = false, want true")
	}
	if f.clock.Pending() > 1 {
		t.Errorf("pending timers after quit = %d, want at most the caption clear", f.clock.Pending())
	}
}

func TestQuit_FromTitleMenu(t *testing.T) {
	f := newFixture(t)
	if !f.selectIndex(t, 3) {
		t.Error("choosing Quit did not quit")
	}
}
