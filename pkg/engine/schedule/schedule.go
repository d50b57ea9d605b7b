// Package schedule provides one-shot deferred tasks driven by an explicit clock.
//
// Game code never spawns timers of its own. A single owner advances a Manual
// clock (from the event loop, a frame tick or a test), and every due callback
// runs on that owner's goroutine, in deadline order.
package schedule

import (
	"time"

	"github.com/zyedidia/generic/heap"
)

// Task is a pending one-shot callback
type Task interface {
	// Stop cancels the task. It returns false if the task already ran or was stopped.
	Stop() bool
}

// Scheduler runs a callback once after a delay has elapsed on its clock
type Scheduler interface {
	After(d time.Duration, fn func()) Task
}

// entry is a queued task on a Manual clock
type entry struct {
	at     time.Duration
	seq    uint64
	fn     func()
	done   bool
	manual *Manual
}

// Stop cancels the entry if it has not run yet
func (e *entry) Stop() bool {
	if e.done {
		return false
	}
	e.done = true
	e.manual.pending--
	return true
}

// Manual is a virtual clock. Time only moves when Advance is called.
type Manual struct {
	now     time.Duration
	seq     uint64
	pending int
	queue   *heap.Heap[*entry]
}

// NewManual creates a virtual clock at time zero
func NewManual() *Manual {
	return &Manual{
		queue: heap.New(func(a, b *entry) bool {
			if a.at != b.at {
				return a.at < b.at
			}
			return a.seq < b.seq
		}),
	}
}

// Now returns the elapsed virtual time
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the number of tasks that have neither run nor been stopped
func (m *Manual) Pending() int {
	return m.pending
}

// After schedules fn to run once the clock has advanced by d.
// Negative delays are treated as zero.
func (m *Manual) After(d time.Duration, fn func()) Task {
	if d < 0 {
		d = 0
	}
	m.seq++
	e := &entry{at: m.now + d, seq: m.seq, fn: fn, manual: m}
	m.queue.Push(e)
	m.pending++
	return e
}

// Advance moves the clock forward by d and runs every task that falls due,
// including tasks scheduled by callbacks within the same window.
// It returns the number of callbacks that ran.
func (m *Manual) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	target := m.now + d
	ran := 0
	for {
		next, ok := m.queue.Peek()
		if !ok || next.at > target {
			break
		}
		m.queue.Pop()
		if next.done {
			continue
		}
		next.done = true
		m.pending--
		m.now = next.at
		next.fn()
		ran++
	}
	m.now = target
	return ran
}
