package memory

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"puzzleadventure/pkg/engine/schedule"
)

type recorder struct {
	flashes []Color
	done    []int
}

func (r *recorder) Flash(c Color, _ int) { r.flashes = append(r.flashes, c) }
func (r *recorder) PlaybackDone(n int) { r.done = append(r.done, n) }

type fixture struct {
	clock  *schedule.Manual
	rec    *recorder
	engine *Engine
}

// newFixture builds an engine whose colour picks come from picks in order
func newFixture(t *testing.T, picks ...Color) *fixture {
	t.Helper()
	f := &fixture{clock: schedule.NewManual(), rec: &recorder{}}
	f.engine = NewEngine(f.clock, rand.New(rand.NewSource(1)), f.rec)
	f.engine.pick = func() Color {
		if len(picks) == 0 {
			t.Fatal("ran out of colour picks")
		}
		c := picks[0]
		picks = picks[1:]
		return c
	}
	return f
}

// playbackTime is how long a pattern of n colours takes to show
func playbackTime(n int) time.Duration {
	return InitialDelay + time.Duration(n-1)*Step + FlashOn
}

func (f *fixture) finishPlayback(t *testing.T) {
	t.Helper()
	f.clock.Advance(playbackTime(f.engine.Length()))
	if f.engine.Phase() != PhaseInput {
		t.Fatalf("phase = %v after playback, want input", f.engine.Phase())
	}
}

func TestStart_BeginsPlaybackOfOne(t *testing.T) {
	f := newFixture(t, Blue)
	f.engine.Start()

	if f.engine.Phase() != PhasePlayback {
		t.Fatalf("phase = %v, want playback", f.engine.Phase())
	}
	if got := f.engine.Sequence(); !reflect.DeepEqual(got, []Color{Blue}) {
		t.Errorf("Sequence() = %v, want [blue]", got)
	}
}

func TestPlayback_Timing(t *testing.T) {
	f := newFixture(t, Red, Green)
	f.engine.Start()
	f.finishPlayback(t)
	if f.engine.Submit(Red) != RoundComplete {
		t.Fatal("Submit(red) did not complete round 1")
	}
	f.rec.flashes = nil

	// Round 2: [red, green]
	f.clock.Advance(InitialDelay - time.Millisecond)
	if _, lit := f.engine.Lit(); lit || len(f.rec.flashes) != 0 {
		t.Fatal("pad lit before the initial delay")
	}
	f.clock.Advance(time.Millisecond)
	if c, lit := f.engine.Lit(); !lit || c != Red {
		t.Fatalf("Lit() = (%v, %v), want (red, true)", c, lit)
	}
	f.clock.Advance(FlashOn)
	if _, lit := f.engine.Lit(); lit {
		t.Fatal("pad still lit after FlashOn")
	}
	f.clock.Advance(Step - FlashOn)
	if c, lit := f.engine.Lit(); !lit || c != Green {
		t.Fatalf("Lit() = (%v, %v), want (green, true)", c, lit)
	}
	if f.engine.Phase() != PhasePlayback {
		t.Fatalf("phase = %v during playback", f.engine.Phase())
	}
	f.clock.Advance(FlashOn)
	if f.engine.Phase() != PhaseInput {
		t.Errorf("phase = %v after last flash, want input", f.engine.Phase())
	}
	if !reflect.DeepEqual(f.rec.flashes, []Color{Red, Green}) {
		t.Errorf("flashes = %v, want [red green]", f.rec.flashes)
	}
	if !reflect.DeepEqual(f.rec.done, []int{1, 2}) {
		t.Errorf("PlaybackDone lengths = %v, want [1 2]", f.rec.done)
	}
}

func TestSubmit_IgnoredOutsideInput(t *testing.T) {
	f := newFixture(t, Red)
	if got := f.engine.Submit(Red); got != Ignored {
		t.Errorf("Submit while idle = %v, want ignored", got)
	}
	f.engine.Start()
	if got := f.engine.Submit(Red); got != Ignored {
		t.Errorf("Submit during playback = %v, want ignored", got)
	}
	if len(f.engine.Replay()) != 0 {
		t.Errorf("Replay() = %v, want empty", f.engine.Replay())
	}
}

func TestSubmit_ThreeColourScenario(t *testing.T) {
	f := newFixture(t, Blue, Red, Green, Yellow)
	f.engine.Start()
	f.finishPlayback(t)
	f.engine.Submit(Blue)
	f.finishPlayback(t)
	f.engine.Submit(Blue)
	f.engine.Submit(Red)
	f.finishPlayback(t)

	if got := f.engine.Sequence(); !reflect.DeepEqual(got, []Color{Blue, Red, Green}) {
		t.Fatalf("Sequence() = %v, want [blue red green]", got)
	}
	if got := f.engine.Submit(Blue); got != Continuing {
		t.Errorf("Submit(blue) = %v, want continuing", got)
	}
	if got := f.engine.Submit(Red); got != Continuing {
		t.Errorf("Submit(red) = %v, want continuing", got)
	}
	if got := f.engine.Submit(Green); got != RoundComplete {
		t.Errorf("Submit(green) = %v, want round complete", got)
	}
	if f.engine.Length() != 4 || f.engine.Phase() != PhasePlayback {
		t.Errorf("after round: length %d phase %v, want 4 playback", f.engine.Length(), f.engine.Phase())
	}
	if len(f.engine.Replay()) != 0 {
		t.Errorf("Replay() = %v, want reset", f.engine.Replay())
	}
}

func TestSubmit_MismatchRestartsAtOne(t *testing.T) {
	f := newFixture(t, Blue, Red, Yellow)
	f.engine.Start()
	f.finishPlayback(t)
	f.engine.Submit(Blue)
	f.finishPlayback(t)

	if got := f.engine.Submit(Blue); got != Continuing {
		t.Fatalf("Submit(blue) = %v, want continuing", got)
	}
	if got := f.engine.Submit(Green); got != RoundMismatch {
		t.Fatalf("Submit(green) = %v, want mismatch", got)
	}
	if got := f.engine.Sequence(); !reflect.DeepEqual(got, []Color{Yellow}) {
		t.Errorf("Sequence() = %v, want fresh [yellow]", got)
	}
	if f.engine.Phase() != PhasePlayback || len(f.engine.Replay()) != 0 {
		t.Errorf("phase %v replay %v, want playback and empty", f.engine.Phase(), f.engine.Replay())
	}
}

func TestSubmit_MismatchOnLastColour(t *testing.T) {
	f := newFixture(t, Blue, Red, Green, Red)
	f.engine.Start()
	f.finishPlayback(t)
	f.engine.Submit(Blue)
	f.finishPlayback(t)
	f.engine.Submit(Blue)
	f.engine.Submit(Red)
	f.finishPlayback(t)

	for _, c := range []Color{Blue, Red} {
		if got := f.engine.Submit(c); got != Continuing {
			t.Fatalf("Submit(%v) = %v, want continuing", c, got)
		}
	}
	if got := f.engine.Submit(Yellow); got != RoundMismatch {
		t.Fatalf("Submit(yellow) = %v, want mismatch", got)
	}
	if f.engine.Length() != 1 {
		t.Errorf("Length() = %d, want 1", f.engine.Length())
	}
	if got := f.engine.Sequence(); !reflect.DeepEqual(got, []Color{Red}) {
		t.Errorf("Sequence() = %v, want fresh [red]", got)
	}
	if f.engine.Phase() != PhasePlayback || len(f.engine.Replay()) != 0 {
		t.Errorf("phase %v replay %v, want playback and empty", f.engine.Phase(), f.engine.Replay())
	}
	if f.clock.Pending() != 1 {
		t.Errorf("pending timers = %d, want 1", f.clock.Pending())
	}
}

func TestSubmit_OutOfRangeIsMismatch(t *testing.T) {
	f := newFixture(t, Red, Green, Blue)
	f.engine.Start()
	f.finishPlayback(t)

	for _, c := range []Color{-1, NumColors} {
		if got := f.engine.Submit(c); got != RoundMismatch {
			t.Errorf("Submit(%d) = %v, want mismatch", c, got)
		}
		f.finishPlayback(t)
	}
}

func TestWin_AfterFiveRounds(t *testing.T) {
	picks := []Color{Red, Green, Blue, Yellow, Red}
	f := newFixture(t, picks...)
	f.engine.Start()

	var last RoundOutcome
	for round := 1; round <= WinLength; round++ {
		f.finishPlayback(t)
		for i, c := range picks[:round] {
			last = f.engine.Submit(c)
			if i < round-1 && last != Continuing {
				t.Fatalf("round %d step %d = %v, want continuing", round, i, last)
			}
		}
		if round < WinLength && last != RoundComplete {
			t.Fatalf("round %d = %v, want round complete", round, last)
		}
	}

	if last != Won || f.engine.Phase() != PhaseWon {
		t.Fatalf("final outcome %v phase %v, want won", last, f.engine.Phase())
	}
	if got := f.engine.Submit(Red); got != Ignored {
		t.Errorf("Submit after win = %v, want ignored", got)
	}
	if f.clock.Pending() != 0 {
		t.Errorf("pending timers after win = %d, want 0", f.clock.Pending())
	}
}

func TestStop_DropsPendingPlayback(t *testing.T) {
	f := newFixture(t, Red)
	f.engine.Start()
	f.engine.Stop()
	f.clock.Advance(time.Minute)

	if f.engine.Phase() != PhaseIdle {
		t.Errorf("phase = %v, want idle", f.engine.Phase())
	}
	if len(f.rec.flashes) != 0 || len(f.rec.done) != 0 {
		t.Errorf("stale playback ran: flashes %v done %v", f.rec.flashes, f.rec.done)
	}
}

func TestRestart_SingleTimerAndFreshSequence(t *testing.T) {
	f := newFixture(t, Red, Blue)
	f.engine.Start()
	f.clock.Advance(InitialDelay + 100*time.Millisecond) // mid flash
	f.engine.Start()

	if f.clock.Pending() != 1 {
		t.Errorf("pending timers = %d, want 1", f.clock.Pending())
	}
	if got := f.engine.Sequence(); !reflect.DeepEqual(got, []Color{Blue}) {
		t.Errorf("Sequence() = %v, want [blue]", got)
	}
	if _, lit := f.engine.Lit(); lit {
		t.Error("pad still lit after restart")
	}
	f.clock.Advance(playbackTime(1))
	if !reflect.DeepEqual(f.rec.done, []int{1}) {
		t.Errorf("PlaybackDone = %v, want one call for the new round", f.rec.done)
	}
}

func TestNewEngine_RandomPicksInPalette(t *testing.T) {
	clock := schedule.NewManual()
	e := NewEngine(clock, rand.New(rand.NewSource(42)), nil)
	for i := 0; i < 100; i++ {
		if c := e.pick(); !c.IsValid() {
			t.Fatalf("pick() = %d, outside palette", c)
		}
	}
}
