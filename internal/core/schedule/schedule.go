// Package schedule defines the day-plan domain: sessions, the partitioner
// that produces them, and the pure transforms that rewrite them.
package schedule

import (
	"fmt"
	"time"
)

// Kind distinguishes focus intervals from rest intervals.
type Kind string

const (
	KindWork  Kind = "work"
	KindBreak Kind = "break"
)

// Status is the completion state of a session.
type Status string

const (
	StatusIncomplete    Status = "incomplete"
	StatusCompleted     Status = "completed"
	StatusNotApplicable Status = "not-applicable"
)

// BreakTask is the label given to every break session.
const BreakTask = "Break"

// Session is one contiguous interval of the day plan. Sessions are plain
// values; transforms in this package never modify one in place, they return
// a fresh sequence with the targeted element replaced.
type Session struct {
	ID           string    `json:"id"`
	Task         string    `json:"task"`
	Kind         Kind      `json:"kind"`
	Status       Status    `json:"status"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Distractions int       `json:"distractions,omitempty"`
}

// sessionID derives a stable identifier from the session's kind, its 1-based
// position in the sequence, and its start instant. Rebuilding a plan from the
// same inputs yields the same IDs.
func sessionID(kind Kind, seq int, start time.Time) string {
	return fmt.Sprintf("%s-%d-%d", kind, seq, start.Unix())
}

// Duration returns the session's planned length.
func (s Session) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// IsWork reports whether the session is a focus interval.
func (s Session) IsWork() bool {
	return s.Kind == KindWork
}

// Contains reports whether t falls inside the session's half-open
// [Start, End) interval.
func (s Session) Contains(t time.Time) bool {
	return !t.Before(s.Start) && t.Before(s.End)
}

// Plan is one generation of the day's schedule: the full session sequence
// plus the instant it was produced. The planner replaces it wholesale on
// every regeneration; sessions are never added or removed in place.
type Plan struct {
	GeneratedAt time.Time `json:"generated_at"`
	Sessions    []Session `json:"sessions"`
}

// Empty reports whether the plan holds no sessions.
func (p Plan) Empty() bool {
	return len(p.Sessions) == 0
}

// Find returns the session with the given ID.
func Find(seq []Session, id string) (Session, bool) {
	for _, s := range seq {
		if s.ID == id {
			return s, true
		}
	}
	return Session{}, false
}

// WorkProgress counts completed work sessions against the total number of
// work sessions in the sequence.
func WorkProgress(seq []Session) (completed, total int) {
	for _, s := range seq {
		if !s.IsWork() {
			continue
		}
		total++
		if s.Status == StatusCompleted {
			completed++
		}
	}
	return completed, total
}
