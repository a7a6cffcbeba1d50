// Package clock abstracts the time source used by the lending core.
//
// Every operation reads "now" exactly once from an injected Clock, which
// keeps due-date and overdue calculations deterministic under test without
// real time passing.
package clock

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns the wall clock.
func System() Clock {
	return systemClock{}
}

// Frozen is a manually advanced clock for deterministic tests.
type Frozen struct {
	current time.Time
}

// NewFrozen returns a clock stopped at t.
func NewFrozen(t time.Time) *Frozen {
	return &Frozen{current: t}
}

// Now returns the frozen instant.
func (f *Frozen) Now() time.Time { return f.current }

// Advance moves the clock forward by d.
func (f *Frozen) Advance(d time.Duration) { f.current = f.current.Add(d) }

// AdvanceDays moves the clock forward by whole days.
func (f *Frozen) AdvanceDays(days int) { f.current = f.current.AddDate(0, 0, days) }

// Set jumps the clock to t.
func (f *Frozen) Set(t time.Time) { f.current = t }
