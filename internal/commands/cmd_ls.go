package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/benahmedanass/pomodoro/internal/core/schedule"
	"github.com/benahmedanass/pomodoro/internal/pomodoro"
)

type LsCmd struct {
	flags *Flags
	app   *pomodoro.App

	// flags
	jsonOutput bool
}

// NewLsCmd creates a new ls command.
func NewLsCmd(flags *Flags, app *pomodoro.App) *LsCmd {
	return &LsCmd{flags: flags, app: app}
}

// Register adds the ls command to the application.
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List the current schedule",
		UsageText: "pomodoro ls [--json]",
		Description: `Displays the current day plan as a table: position, kind, time window,
task, completion mark, and distraction tally. The active session is marked
with an arrow.

Use --json for one JSON object per session.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	plan, _ := cmd.app.Planner.Snapshot()

	if plan.Empty() {
		if !cmd.jsonOutput {
			fmt.Fprintf(os.Stderr, "No schedule. Run 'pomodoro generate' to plan your day.\n")
		}
		return nil
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		return writeSessionsJSON(out, plan.Sessions)
	}

	renderPlanTable(out, plan.Sessions, time.Now())

	completed, total := schedule.WorkProgress(plan.Sessions)
	_, _ = fmt.Fprintf(out, "\n%d/%d work sessions completed\n", completed, total)
	return nil
}
