package anim

import (
	"container/heap"
	"time"
)

// Scheduler runs delayed callbacks cooperatively. It never starts goroutines:
// callbacks fire inside Advance, on the caller's goroutine, in deadline order.
// A Scheduler is not safe for concurrent use.
type Scheduler struct {
	now    time.Time
	seq    uint64
	timers timerHeap
}

// NewScheduler creates a scheduler whose clock starts at now.
func NewScheduler(now time.Time) *Scheduler {
	return &Scheduler{now: now}
}

// Now returns the scheduler clock. While a callback runs this is the
// callback's deadline.
func (s *Scheduler) Now() time.Time {
	return s.now
}

// After schedules fn to run d after the current scheduler time.
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Timer{s: s, deadline: s.now.Add(d), seq: s.seq, fn: fn}
	heap.Push(&s.timers, t)
	return t
}

// Advance moves the clock to now and fires every timer that is due,
// including timers scheduled by callbacks during this call. It returns the
// number of callbacks run.
func (s *Scheduler) Advance(now time.Time) int {
	fired := 0
	for len(s.timers) > 0 {
		next := s.timers[0]
		if next.deadline.After(now) {
			break
		}
		heap.Pop(&s.timers)
		if next.deadline.After(s.now) {
			s.now = next.deadline
		}
		next.fn()
		fired++
	}
	if now.After(s.now) {
		s.now = now
	}
	return fired
}

// Step advances the clock by d.
func (s *Scheduler) Step(d time.Duration) int {
	return s.Advance(s.now.Add(d))
}

// NextWake returns the deadline of the earliest pending timer.
func (s *Scheduler) NextWake() (time.Time, bool) {
	if len(s.timers) == 0 {
		return time.Time{}, false
	}
	return s.timers[0].deadline, true
}

// Pending returns the number of scheduled timers.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Timer is a pending callback.
type Timer struct {
	s        *Scheduler
	deadline time.Time
	seq      uint64
	fn       func()
	index    int
}

// Deadline returns when the timer fires.
func (t *Timer) Deadline() time.Time {
	return t.deadline
}

// Stop cancels the timer. It reports whether the timer was still pending.
func (t *Timer) Stop() bool {
	if t.index < 0 || t.index >= len(t.s.timers) || t.s.timers[t.index] != t {
		return false
	}
	heap.Remove(&t.s.timers, t.index)
	return true
}

type timerHeap []*Timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline.Before(h[j].deadline)
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*Timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
