// Package scheduler provides the one deferred transition this system needs:
// a cancellable "run fn after delay". The interface exists so tests can drive
// the pending callback by hand instead of waiting on the wall clock.
package scheduler

import (
	"sync"
	"time"
)

// CancelFunc stops a scheduled callback. Cancelling after the callback has
// fired, or cancelling twice, is harmless.
type CancelFunc func()

// Scheduler schedules a single callback to run after a delay.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) CancelFunc
}

// TimerScheduler runs callbacks on real timers.
type TimerScheduler struct{}

var _ Scheduler = TimerScheduler{}

func (TimerScheduler) Schedule(delay time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(delay, fn)
	return func() { t.Stop() }
}

// Manual is a Scheduler for tests: nothing fires until Fire is called.
type Manual struct {
	mu      sync.Mutex
	pending []*manualEntry
}

type manualEntry struct {
	fn        func()
	cancelled bool
}

var _ Scheduler = (*Manual)(nil)

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Schedule(_ time.Duration, fn func()) CancelFunc {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := &manualEntry{fn: fn}
	m.pending = append(m.pending, entry)
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		entry.cancelled = true
	}
}

// Pending returns how many scheduled callbacks have neither fired nor been
// cancelled.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, e := range m.pending {
		if !e.cancelled {
			n++
		}
	}
	return n
}

// Fire runs every pending callback in scheduling order and clears the queue.
func (m *Manual) Fire() {
	m.mu.Lock()
	entries := m.pending
	m.pending = nil
	m.mu.Unlock()

	for _, e := range entries {
		if !e.cancelled {
			e.fn()
		}
	}
}
