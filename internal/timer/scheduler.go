// Package timer runs repeating callbacks off an explicit clock.
// The host advances the clock from its update loop, so everything runs on
// the caller's goroutine.
package timer

import "time"

// ID identifies a started timer.
type ID uint64

type entry struct {
	id       ID
	interval time.Duration
	due      time.Duration
	fn       func() bool
}

// Scheduler fires each timer every interval until its callback returns false.
type Scheduler struct {
	now    time.Duration
	nextID ID
	timers []*entry
}

// New returns an empty scheduler at time zero.
func New() *Scheduler { return &Scheduler{} }

// Start registers fn to be called every delay. fn returns true to keep going.
func (s *Scheduler) Start(delay time.Duration, fn func() bool) ID {
	if delay <= 0 {
		delay = time.Millisecond
	}
	s.nextID++
	s.timers = append(s.timers, &entry{id: s.nextID, interval: delay, due: s.now + delay, fn: fn})
	return s.nextID
}

// Stop cancels a single timer.
func (s *Scheduler) Stop(id ID) {
	for i, e := range s.timers {
		if e.id == id {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}

// StopAll cancels every timer.
func (s *Scheduler) StopAll() { s.timers = s.timers[:0] }

// Active returns the number of running timers.
func (s *Scheduler) Active() int { return len(s.timers) }

// Now returns the scheduler clock.
func (s *Scheduler) Now() time.Duration { return s.now }

// Advance moves the clock forward by dt and calls every timer that came due.
// A timer fires at most once per call. Timers started from a callback are
// first considered on the next call.
func (s *Scheduler) Advance(dt time.Duration) {
	s.now += dt
	due := make([]*entry, 0, len(s.timers))
	for _, e := range s.timers {
		if e.due <= s.now {
			due = append(due, e)
		}
	}
	for _, e := range due {
		if !s.running(e) {
			continue // stopped by an earlier callback
		}
		if e.fn() {
			e.due += e.interval
			if e.due <= s.now {
				e.due = s.now + e.interval
			}
			continue
		}
		s.Stop(e.id)
	}
}

func (s *Scheduler) running(e *entry) bool {
	for _, t := range s.timers {
		if t == e {
			return true
		}
	}
	return false
}
