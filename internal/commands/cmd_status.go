package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/benahmedanass/pomodoro/internal/core/schedule"
	"github.com/benahmedanass/pomodoro/internal/pomodoro"
	"github.com/benahmedanass/pomodoro/pkg/iojson"
)

type StatusCmd struct {
	flags *Flags
	app   *pomodoro.App

	// flags
	jsonOutput bool
}

// NewStatusCmd creates a new status command.
func NewStatusCmd(flags *Flags, app *pomodoro.App) *StatusCmd {
	return &StatusCmd{flags: flags, app: app}
}

// Register adds the status command to the application.
func (cmd *StatusCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "status",
		Usage:     "Show the active session and remaining time",
		UsageText: "pomodoro status [--json]",
		Description: `One-shot read of the activity clock, for scripting and status bars.

Prints the active session's kind, task, and remaining time, or a
"no active session" line outside the planned range. Exit code is 0 either
way.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

// statusOutput is the JSON output format for pomodoro status.
type statusOutput struct {
	Active           bool   `json:"active"`
	ID               string `json:"id,omitempty"`
	Kind             string `json:"kind,omitempty"`
	Task             string `json:"task,omitempty"`
	End              string `json:"end,omitempty"`
	RemainingSeconds int    `json:"remaining_seconds"`
}

func (cmd *StatusCmd) run(ctx context.Context, c *cli.Command) error {
	now := time.Now()
	out := c.Root().Writer

	s, ok := cmd.app.Planner.Active(now)
	if !ok {
		if cmd.jsonOutput {
			return iojson.WriteWith(out, out, statusOutput{Active: false})
		}
		_, _ = fmt.Fprintln(out, "No active session")
		return nil
	}

	remaining := schedule.Remaining(s, now)

	if cmd.jsonOutput {
		return iojson.WriteWith(out, out, statusOutput{
			Active:           true,
			ID:               s.ID,
			Kind:             string(s.Kind),
			Task:             s.Task,
			End:              s.End.Format(time.RFC3339),
			RemainingSeconds: int(remaining.Seconds()),
		})
	}

	_, _ = fmt.Fprintf(out, "%s: %s — %s left (until %s)\n",
		s.Kind, s.Task, formatRemaining(remaining), s.End.Format("15:04"))
	return nil
}

// formatRemaining renders a duration as m:ss, or h:mm:ss past the hour.
func formatRemaining(d time.Duration) string {
	total := int(d.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
