package schedule

import "time"

// ActiveAt returns the session whose interval contains now. Sessions are
// contiguous and non-overlapping, so at most one can match; outside the
// plan's range there is none.
func ActiveAt(seq []Session, now time.Time) (Session, bool) {
	for _, s := range seq {
		if s.Contains(now) {
			return s, true
		}
	}
	return Session{}, false
}

// Remaining is the time left until the session ends, floored at zero.
func Remaining(s Session, now time.Time) time.Duration {
	d := s.End.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// Progress is the elapsed fraction of the session, clamped to [0, 1].
func Progress(s Session, now time.Time) float64 {
	total := s.End.Sub(s.Start)
	if total <= 0 {
		return 1
	}
	f := float64(now.Sub(s.Start)) / float64(total)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
