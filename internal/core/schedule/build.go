package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Options are the inputs to Build. Start and End are resolved wall-clock
// instants (see ResolveRange); Work must be positive, Break may be zero to
// plan a day without rest intervals.
type Options struct {
	Start time.Time
	End   time.Time
	Work  time.Duration
	Break time.Duration
	Tasks []string
}

// Build partitions [Start, End) into alternating work and break sessions.
//
// The cursor walks forward from Start. Each work session runs for Work,
// truncated at End when the remainder of the day is shorter. A break only
// follows a work session when the full Break fits before End; a break that
// would end exactly at End still fits. Zero-length sessions are never
// emitted, so a degenerate range produces an empty plan.
//
// Work sessions take their labels from Tasks, cycling when the plan needs
// more work sessions than labels were given. With no labels at all they are
// numbered "Work session #n".
func Build(opts Options) []Session {
	if opts.Work <= 0 || !opts.End.After(opts.Start) {
		return nil
	}

	var (
		out    []Session
		cursor = opts.Start
		works  = 0
	)
	for cursor.Before(opts.End) {
		works++
		end := cursor.Add(opts.Work)
		if end.After(opts.End) {
			end = opts.End
		}
		out = append(out, Session{
			ID:     sessionID(KindWork, len(out)+1, cursor),
			Task:   workLabel(opts.Tasks, works),
			Kind:   KindWork,
			Status: StatusIncomplete,
			Start:  cursor,
			End:    end,
		})
		cursor = end

		if opts.Break <= 0 || !cursor.Before(opts.End) {
			continue
		}
		breakEnd := cursor.Add(opts.Break)
		if breakEnd.After(opts.End) {
			break
		}
		out = append(out, Session{
			ID:     sessionID(KindBreak, len(out)+1, cursor),
			Task:   BreakTask,
			Kind:   KindBreak,
			Status: StatusIncomplete,
			Start:  cursor,
			End:    breakEnd,
		})
		cursor = breakEnd
	}
	return out
}

func workLabel(tasks []string, n int) string {
	if len(tasks) == 0 {
		return fmt.Sprintf("Work session #%d", n)
	}
	return tasks[(n-1)%len(tasks)]
}

// ParseTasks splits free-form task input into labels, one per line.
// Blank lines and surrounding whitespace are discarded.
func ParseTasks(raw string) []string {
	var tasks []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		tasks = append(tasks, line)
	}
	return tasks
}
