// Package cue decides when session-start notifications fire. The planner
// polls the tracker on a short tick; whichever poll lands inside a
// session's tolerance window announces it, and the tracker guarantees it
// is announced only once per plan generation.
package cue

import (
	"sync"
	"time"

	"github.com/benahmedanass/pomodoro/internal/core/schedule"
	"github.com/benahmedanass/pomodoro/pkg/kv"
)

// DefaultTolerance bounds how far past a session's start a cue may still
// fire. Polls are far more frequent than this, so under normal operation
// exactly one poll lands inside the window.
const DefaultTolerance = time.Second

// Tracker remembers which sessions have been announced for the current
// plan generation. Safe for concurrent use.
type Tracker struct {
	mu         sync.Mutex
	tolerance  time.Duration
	generation uint64
	fired      *kv.Store[string, uint64]
}

// NewTracker creates a tracker. A non-positive tolerance falls back to
// DefaultTolerance.
func NewTracker(tolerance time.Duration) *Tracker {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Tracker{
		tolerance: tolerance,
		fired:     kv.New[string, uint64](),
	}
}

// Reset forgets every fired mark and adopts the given plan generation.
// Sessions from a regenerated plan are eligible to fire again even when
// they reuse IDs from the previous plan.
func (t *Tracker) Reset(generation uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.generation = generation
	t.fired.Clear()
}

// Due returns the sessions whose start lies within the tolerance window of
// now and that have not fired yet, marking them as fired. A generation that
// does not match the tracker's current one identifies a poll that raced a
// regeneration; it returns nothing and marks nothing.
func (t *Tracker) Due(seq []schedule.Session, now time.Time, generation uint64) []schedule.Session {
	t.mu.Lock()
	defer t.mu.Unlock()

	if generation != t.generation {
		return nil
	}

	var due []schedule.Session
	for _, s := range seq {
		if !StartsWithin(s, now, t.tolerance) {
			continue
		}
		if t.fired.Has(s.ID) {
			continue
		}
		t.fired.Set(s.ID, generation)
		due = append(due, s)
	}
	return due
}

// Fired reports how many sessions have been announced this generation.
func (t *Tracker) Fired() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fired.Len()
}

// StartsWithin reports whether now sits inside [Start, Start+tol).
// Instants before the start never qualify; a session is announced when it
// begins, not when it approaches.
func StartsWithin(s schedule.Session, now time.Time, tol time.Duration) bool {
	d := now.Sub(s.Start)
	return d >= 0 && d < tol
}
