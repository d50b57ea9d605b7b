// Package app runs a session against a front-end. The loop goroutine is
// the only code that touches the session: it applies intents, advances
// the virtual clock with wall time and hands snapshots to the front-end.
package app

import (
	"context"
	"log"
	"time"

	"puzzleadventure/pkg/engine/input"
	"puzzleadventure/pkg/game/session"
)

// DefaultTick is how often the clock is advanced when no input arrives
const DefaultTick = 20 * time.Millisecond

// Clock is a virtual clock advanced by the loop. Advance runs the tasks
// that fall due and reports how many ran.
type Clock interface {
	Advance(d time.Duration) int
}

// Frontend draws snapshots and reports intents
type Frontend interface {
	RenderFrame(snap session.Snapshot)
	Intents() <-chan input.Intent
}

// Loop multiplexes input and clock ticks onto one goroutine
type Loop struct {
	Session  *session.Session
	Clock    Clock
	Frontend Frontend
	Tick     time.Duration // 0 uses DefaultTick
	Logger   *log.Logger   // nil uses the standard logger

	last time.Time
}

// Run blocks until the player quits, the front-end closes its intent
// channel or ctx is cancelled. The session is closed on return.
func (l *Loop) Run(ctx context.Context) error {
	tick := l.Tick
	if tick <= 0 {
		tick = DefaultTick
	}
	logger := l.Logger
	if logger == nil {
		logger = log.Default()
	}
	defer l.Session.Close()

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	l.last = time.Now()
	intents := l.Frontend.Intents()
	l.render()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case intent, ok := <-intents:
			if !ok {
				logger.Printf("app: input closed")
				return nil
			}
			l.advance()
			quit := l.Session.Dispatch(intent)
			l.render()
			if quit {
				return nil
			}

		case <-ticker.C:
			if l.advance() > 0 {
				l.render()
			}
		}
	}
}

// advance moves the clock forward by the wall time since the last call
func (l *Loop) advance() int {
	now := time.Now()
	elapsed := now.Sub(l.last)
	l.last = now
	return l.Clock.Advance(elapsed)
}

func (l *Loop) render() {
	l.Frontend.RenderFrame(l.Session.Snapshot())
}
