package schedule

import "time"

// Slot holds at most one pending task. Scheduling into an occupied slot
// stops the previous task first, so callbacks never race each other.
type Slot struct {
	sched      Scheduler
	task       Task
	generation uint64
}

// NewSlot creates an empty slot backed by the given scheduler
func NewSlot(sched Scheduler) *Slot {
	return &Slot{sched: sched}
}

// Schedule replaces any pending task with fn, due after d
func (s *Slot) Schedule(d time.Duration, fn func()) {
	s.Stop()
	s.generation++
	generation := s.generation
	s.task = s.sched.After(d, func() {
		// A superseded task can still fire if its scheduler raced the Stop
		if generation != s.generation {
			return
		}
		s.task = nil
		fn()
	})
}

// Stop cancels the pending task, if any
func (s *Slot) Stop() bool {
	if s.task == nil {
		return false
	}
	stopped := s.task.Stop()
	s.task = nil
	s.generation++
	return stopped
}

// Pending reports whether a task is waiting in the slot
func (s *Slot) Pending() bool {
	return s.task != nil
}
