package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"golang.org/x/term"

	"github.com/benahmedanass/pomodoro/internal/core/schedule"
	"github.com/benahmedanass/pomodoro/internal/core/styles"
	"github.com/benahmedanass/pomodoro/pkg/iojson"
)

// sessionRow is the JSON output shape for one session.
type sessionRow struct {
	Seq          int    `json:"seq"`
	ID           string `json:"id"`
	Kind         string `json:"kind"`
	Task         string `json:"task"`
	Status       string `json:"status"`
	Start        string `json:"start"`
	End          string `json:"end"`
	Distractions int    `json:"distractions"`
	Active       bool   `json:"active"`
}

func newSessionRow(seq int, s schedule.Session, now time.Time) sessionRow {
	return sessionRow{
		Seq:          seq,
		ID:           s.ID,
		Kind:         string(s.Kind),
		Task:         s.Task,
		Status:       string(s.Status),
		Start:        s.Start.Format(time.RFC3339),
		End:          s.End.Format(time.RFC3339),
		Distractions: s.Distractions,
		Active:       s.Contains(now),
	}
}

func writeSessionsJSON(w io.Writer, sessions []schedule.Session) error {
	now := time.Now()
	for i, s := range sessions {
		if err := iojson.WriteLine(w, newSessionRow(i+1, s, now)); err != nil {
			return fmt.Errorf("encode session: %w", err)
		}
	}
	return nil
}

// statusMark renders a one-character completion marker.
func statusMark(s schedule.Session) string {
	switch s.Status {
	case schedule.StatusCompleted:
		return styles.MarkDone
	case schedule.StatusNotApplicable:
		return styles.MarkSkipped
	default:
		return styles.MarkPending
	}
}

// terminalWidth probes stdout's width, defaulting to 80 columns when it is
// not a terminal (pipes, command tests).
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// truncate shortens s to max runes, ending on an ellipsis when it cuts.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max < 4 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}

// renderPlanTable writes the schedule as an aligned table, sized so the
// task column never wraps the row.
func renderPlanTable(out io.Writer, sessions []schedule.Session, now time.Time) {
	// Fixed columns eat roughly 40 columns; the task label gets the rest.
	taskWidth := terminalWidth() - 40
	if taskWidth < 12 {
		taskWidth = 12
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, " \t#\tKIND\tWINDOW\tTASK\tDONE\tDISTR")

	for i, s := range sessions {
		marker := " "
		if s.Contains(now) {
			marker = "▶"
		}

		window := fmt.Sprintf("%s–%s", s.Start.Format("15:04"), s.End.Format("15:04"))

		distr := ""
		if s.IsWork() {
			distr = fmt.Sprintf("%d", s.Distractions)
		}

		_, _ = fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t[%s]\t%s\n",
			marker, i+1, s.Kind, window, truncate(s.Task, taskWidth), statusMark(s), distr)
	}

	_ = w.Flush()
}
