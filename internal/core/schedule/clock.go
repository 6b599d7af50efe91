package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock is a time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses a 24-hour "HH:MM" string. A single-digit hour is
// accepted on input; String always renders the canonical zero-padded form.
func ParseClock(s string) (Clock, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Clock{}, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return Clock{}, fmt.Errorf("invalid time %q: hour out of range", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return Clock{}, fmt.Errorf("invalid time %q: minute out of range", s)
	}
	return Clock{Hour: h, Minute: m}, nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// On anchors the clock to the given calendar day, in that day's location.
func (c Clock) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour, c.Minute, 0, 0, day.Location())
}

// ResolveRange anchors a start and end clock to the given day. An end at or
// before the start rolls over to the following day, so "22:00" to "02:00"
// spans midnight and "09:00" to "09:00" covers a full 24 hours.
func ResolveRange(start, end Clock, day time.Time) (time.Time, time.Time) {
	s := start.On(day)
	e := end.On(day)
	if !e.After(s) {
		e = e.AddDate(0, 0, 1)
	}
	return s, e
}
