package schedule

import "strings"

// update applies fn to the session with the given ID and returns a new
// sequence with that one element replaced. When no session matches, or fn
// declines the change, the original slice comes back untouched and the
// bool reports false.
func update(seq []Session, id string, fn func(Session) (Session, bool)) ([]Session, bool) {
	for i, s := range seq {
		if s.ID != id {
			continue
		}
		next, ok := fn(s)
		if !ok {
			return seq, false
		}
		out := make([]Session, len(seq))
		copy(out, seq)
		out[i] = next
		return out, true
	}
	return seq, false
}

// ToggleStatus flips the target between completed and incomplete.
// Sessions marked not-applicable are left alone.
func ToggleStatus(seq []Session, id string) ([]Session, bool) {
	return update(seq, id, func(s Session) (Session, bool) {
		switch s.Status {
		case StatusCompleted:
			s.Status = StatusIncomplete
		case StatusIncomplete:
			s.Status = StatusCompleted
		default:
			return s, false
		}
		return s, true
	})
}

// AddDistraction increments the distraction tally on a work session.
// Break sessions do not carry tallies.
func AddDistraction(seq []Session, id string) ([]Session, bool) {
	return update(seq, id, func(s Session) (Session, bool) {
		if !s.IsWork() {
			return s, false
		}
		s.Distractions++
		return s, true
	})
}

// RemoveDistraction decrements the distraction tally on a work session,
// never below zero.
func RemoveDistraction(seq []Session, id string) ([]Session, bool) {
	return update(seq, id, func(s Session) (Session, bool) {
		if !s.IsWork() || s.Distractions == 0 {
			return s, false
		}
		s.Distractions--
		return s, true
	})
}

// RenameTask replaces the target's task label with the trimmed name.
// An empty or all-whitespace name is rejected.
func RenameTask(seq []Session, id, name string) ([]Session, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return seq, false
	}
	return update(seq, id, func(s Session) (Session, bool) {
		s.Task = name
		return s, true
	})
}
