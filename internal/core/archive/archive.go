// Package archive defines the bounded day-plan history.
package archive

import (
	"time"

	"github.com/benahmedanass/pomodoro/internal/core/schedule"
)

// MaxEntries bounds how many archived plans are retained. Pushing past the
// bound silently drops the oldest entries.
const MaxEntries = 30

// DateFormat renders an archive date label.
const DateFormat = "2006-01-02"

// Entry is one archived day plan: the sessions exactly as they stood when
// a regeneration displaced them, labeled with the day they were made on.
type Entry struct {
	Date     string             `json:"date"`
	Schedule []schedule.Session `json:"schedule"`
}

// Sessions returns how many sessions the archived plan held.
func (e *Entry) Sessions() int {
	return len(e.Schedule)
}

// DateLabel formats a calendar day the way archive entries record it.
func DateLabel(t time.Time) string {
	return t.Format(DateFormat)
}

// Push prepends an entry so the newest plan is always first, then trims to
// MaxEntries. An entry with an empty schedule is not worth remembering and
// leaves the archive untouched.
func Push(entries []Entry, e Entry) []Entry {
	if len(e.Schedule) == 0 {
		return entries
	}
	out := append([]Entry{e}, entries...)
	if len(out) > MaxEntries {
		out = out[:MaxEntries]
	}
	return out
}
