package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/benahmedanass/pomodoro/internal/pomodoro"
)

// SessionIDCompleter returns a ShellCompleteFunc that suggests the current
// plan's session IDs as positional completions. Set this as the
// ShellComplete field on any cli.Command that accepts a session target.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func SessionIDCompleter(app *pomodoro.App) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		// Delegate to default flag completion when typing a flag
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		plan, _ := app.Planner.Snapshot()

		w := cmd.Root().Writer
		for _, s := range plan.Sessions {
			_, _ = fmt.Fprintln(w, s.ID)
		}
	}
}
