// Package schedule runs delayed callbacks on a virtual clock.
//
// Tasks are keyed by concern ("combo-decay", "enemy-3-hitflash", ...). Scheduling
// a key that is already pending replaces the pending task, so there is at most
// one task per key. Nothing runs on its own: the owner advances the clock from
// its loop and due callbacks fire synchronously inside Advance, in due order.
package schedule

import "time"

// Key identifies the concern a task belongs to.
type Key string

type task struct {
	due time.Duration
	seq uint64
	fn  func()
}

// Scheduler holds pending tasks. It is not safe for concurrent use.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	tasks map[Key]*task
}

// New creates an empty scheduler with its clock at zero.
func New() *Scheduler {
	return &Scheduler{tasks: make(map[Key]*task)}
}

// After schedules fn to run once delay has elapsed, replacing any pending
// task with the same key. Negative delays are treated as zero.
func (s *Scheduler) After(key Key, delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	s.tasks[key] = &task{due: s.now + delay, seq: s.seq, fn: fn}
}

// Cancel drops the pending task for key. It reports whether one was pending.
func (s *Scheduler) Cancel(key Key) bool {
	if _, ok := s.tasks[key]; !ok {
		return false
	}
	delete(s.tasks, key)
	return true
}

// Pending reports whether a task is scheduled for key.
func (s *Scheduler) Pending(key Key) bool {
	_, ok := s.tasks[key]
	return ok
}

// Remaining returns the time left before key fires, or false if nothing is pending.
func (s *Scheduler) Remaining(key Key) (time.Duration, bool) {
	t, ok := s.tasks[key]
	if !ok {
		return 0, false
	}
	return t.due - s.now, true
}

// Len returns the number of pending tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Now returns the virtual time elapsed since creation.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Reset drops every pending task. The clock keeps running.
func (s *Scheduler) Reset() {
	clear(s.tasks)
}

// Advance moves the clock forward by dt and runs every task that comes due,
// earliest first and in scheduling order for ties. Tasks scheduled by a
// callback run in the same call if they fall inside the window.
// Returns the number of callbacks run.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	fired := 0

	for {
		key, next := s.earliest()
		if next == nil || next.due > target {
			break
		}
		delete(s.tasks, key)
		s.now = next.due
		next.fn()
		fired++
	}

	s.now = target
	return fired
}

// earliest returns the next task to fire. Pending sets stay small (a handful
// of timers per wave), so a scan is enough.
func (s *Scheduler) earliest() (Key, *task) {
	var (
		bestKey Key
		best    *task
	)
	for k, t := range s.tasks {
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			bestKey, best = k, t
		}
	}
	return bestKey, best
}
