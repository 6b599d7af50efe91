package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/benahmedanass/pomodoro/internal/core/logging"
	"github.com/benahmedanass/pomodoro/internal/pomodoro"
	"github.com/benahmedanass/pomodoro/internal/store/jsonfile"
	"github.com/benahmedanass/pomodoro/internal/tui"
)

type TuiCmd struct {
	flags *Flags
	app   *pomodoro.App
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, app *pomodoro.App) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		app:   app,
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	log := logging.Component("tui")

	deps := tui.Deps{
		Config:  cmd.app.Config,
		Planner: cmd.app.Planner,
		Cues:    cmd.app.Cues,
		Build:   cmd.app.Build,
	}

	// Live reload: pick up mutations made by CLI invocations in other
	// terminals. The view still works without it.
	watcher, err := jsonfile.NewWatcher(cmd.app.Config.DataDir)
	if err != nil {
		log.Warn().Err(err).Msg("data dir watch unavailable; live reload disabled")
	} else {
		deps.Changes = watcher.Subscribe()
		defer func() {
			if err := watcher.Close(); err != nil {
				log.Warn().Err(err).Msg("close watcher")
			}
		}()
	}

	for {
		p := tea.NewProgram(tui.New(deps), tea.WithAltScreen())
		finalModel, err := p.Run()
		if err != nil {
			return fmt.Errorf("run tui: %w", err)
		}

		model := finalModel.(tui.Model)

		// Handle the replan handoff: collect inputs with the form, then
		// reopen the timer over the fresh plan.
		if model.PendingGenerate() {
			gen := NewGenerateCmd(cmd.flags, cmd.app)
			if err := gen.RunInteractive(ctx); err != nil {
				return err
			}
			continue
		}

		break
	}

	return nil
}
