/*
Package deliver reveals large ranked result sets to the UI in growing
batches so no single update blocks the render thread.

A generation token identifies which query cycle a pending tick belongs to.
Every tick re-checks the token under the lock before touching any state, so
once a newer generation exists no stale tick can mutate the displayed
lanes; cancellation is a plain integer comparison.
*/
package deliver

import (
	"sync"
	"time"
)

const (
	// InitialReveal is how many items are shown immediately when a ranked
	// set arrives.
	InitialReveal = 100

	// RevealStep is how many more items each scheduling tick reveals.
	RevealStep = 50

	// DefaultTickInterval approximates one frame plus a small settle delay.
	DefaultTickInterval = 16 * time.Millisecond
)

// Progress is one delivery update for the UI: how much of the current
// generation's result set may be rendered.
type Progress struct {
	Revealed   int
	Total      int
	Generation uint64
}

// Done reports whether the generation is fully revealed.
func (p Progress) Done() bool {
	return p.Total == 0 || p.Revealed >= p.Total
}

// Scheduler drives the staged reveal for one launcher window. It holds
// counters into the ranked list, never the list itself, so the list stays
// exclusively owned by the caller.
type Scheduler struct {
	mu         sync.Mutex
	generation uint64
	revealed   int
	total      int
	timer      *time.Timer
	interval   time.Duration
	emit       func(Progress)
}

// NewScheduler builds a scheduler that reports progress through emit. The
// callback runs either synchronously inside Submit/Cancel or on the timer
// goroutine; it must be cheap and must not call back into the scheduler.
func NewScheduler(emit func(Progress)) *Scheduler {
	return &Scheduler{
		interval: DefaultTickInterval,
		emit:     emit,
	}
}

// SetInterval overrides the tick interval. Intended for tests.
func (s *Scheduler) SetInterval(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d > 0 {
		s.interval = d
	}
}

// Submit starts delivery of a freshly ranked result set and returns the new
// generation token. Any in-flight delivery for the previous generation is
// cancelled. Sets at or below the initial-reveal threshold are revealed in
// full immediately.
func (s *Scheduler) Submit(total int) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.stopTimerLocked()
	s.total = total
	if total <= InitialReveal {
		s.revealed = total
	} else {
		s.revealed = InitialReveal
	}

	gen := s.generation
	s.emitLocked()
	if s.revealed < s.total {
		s.scheduleLocked(gen)
	}
	return gen
}

// Cancel discards the current generation and clears all lane state. It is
// also the path taken when the user clears the query entirely.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.stopTimerLocked()
	s.revealed = 0
	s.total = 0
	s.emitLocked()
}

// Progress returns the current delivery state.
func (s *Scheduler) Progress() Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Progress{Revealed: s.revealed, Total: s.total, Generation: s.generation}
}

// Generation returns the current generation token.
func (s *Scheduler) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// tick grows the revealed window by one step. The generation check at the
// top makes a tick scheduled before a cancellation a guaranteed no-op.
func (s *Scheduler) tick(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return
	}

	s.revealed += RevealStep
	if s.revealed > s.total {
		s.revealed = s.total
	}
	s.emitLocked()
	if s.revealed < s.total {
		s.scheduleLocked(gen)
	}
}

func (s *Scheduler) scheduleLocked(gen uint64) {
	s.timer = time.AfterFunc(s.interval, func() { s.tick(gen) })
}

func (s *Scheduler) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Scheduler) emitLocked() {
	if s.emit == nil {
		return
	}
	s.emit(Progress{Revealed: s.revealed, Total: s.total, Generation: s.generation})
}
