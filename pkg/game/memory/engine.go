package memory

import (
	"math/rand"

	"puzzleadventure/pkg/engine/schedule"
)

// Engine runs one pattern memory game. All methods and scheduled callbacks
// must run on the goroutine that advances the scheduler.
type Engine struct {
	timer    *schedule.Slot
	pick     func() Color
	listener Listener

	phase    Phase
	sequence []Color
	replay   []Color
	lit      Color
	isLit    bool

	// round invalidates callbacks from an earlier round
	round uint64
}

// NewEngine creates an idle engine
func NewEngine(sched schedule.Scheduler, rng *rand.Rand, listener Listener) *Engine {
	if listener == nil {
		listener = nopListener{}
	}
	return &Engine{
		timer:    schedule.NewSlot(sched),
		pick:     func() Color { return Color(rng.Intn(NumColors)) },
		listener: listener,
		phase:    PhaseIdle,
	}
}

// Start clears any previous game and begins the first round
func (e *Engine) Start() {
	e.sequence = e.sequence[:0]
	e.startRound()
}

// Stop cancels playback and returns to idle
func (e *Engine) Stop() {
	e.timer.Stop()
	e.round++
	e.phase = PhaseIdle
	e.isLit = false
	e.replay = e.replay[:0]
}

// Phase returns the current state
func (e *Engine) Phase() Phase {
	return e.phase
}

// Sequence returns a copy of the pattern so far
func (e *Engine) Sequence() []Color {
	return append([]Color(nil), e.sequence...)
}

// Replay returns a copy of the colours entered this round
func (e *Engine) Replay() []Color {
	return append([]Color(nil), e.replay...)
}

// Length returns the current pattern length
func (e *Engine) Length() int {
	return len(e.sequence)
}

// Lit returns the pad currently lit during playback
func (e *Engine) Lit() (Color, bool) {
	return e.lit, e.isLit
}

// Submit records one colour from the player
func (e *Engine) Submit(c Color) RoundOutcome {
	if e.phase != PhaseInput {
		return Ignored
	}

	pos := len(e.replay)
	if !c.IsValid() || c != e.sequence[pos] {
		e.sequence = e.sequence[:0]
		e.startRound()
		return RoundMismatch
	}

	e.replay = append(e.replay, c)
	if len(e.replay) < len(e.sequence) {
		return Continuing
	}

	if len(e.sequence) >= WinLength {
		e.phase = PhaseWon
		return Won
	}
	e.startRound()
	return RoundComplete
}

// startRound grows the pattern by one colour and schedules its playback
func (e *Engine) startRound() {
	e.timer.Stop()
	e.round++
	e.replay = e.replay[:0]
	e.isLit = false
	e.sequence = append(e.sequence, e.pick())
	e.phase = PhasePlayback

	round := e.round
	e.timer.Schedule(InitialDelay, func() { e.reveal(round, 0) })
}

func (e *Engine) reveal(round uint64, pos int) {
	if round != e.round || e.phase != PhasePlayback {
		return
	}
	e.lit = e.sequence[pos]
	e.isLit = true
	e.listener.Flash(e.lit, pos)
	e.timer.Schedule(FlashOn, func() { e.darken(round, pos) })
}

func (e *Engine) darken(round uint64, pos int) {
	if round != e.round || e.phase != PhasePlayback {
		return
	}
	e.isLit = false
	if pos+1 < len(e.sequence) {
		e.timer.Schedule(Step-FlashOn, func() { e.reveal(round, pos+1) })
		return
	}
	e.phase = PhaseInput
	e.listener.PlaybackDone(len(e.sequence))
}
