package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v3"

	"github.com/benahmedanass/pomodoro/internal/core/schedule"
	"github.com/benahmedanass/pomodoro/internal/pomodoro"
	"github.com/benahmedanass/pomodoro/internal/printer"
)

type SessionCmd struct {
	flags *Flags
	app   *pomodoro.App

	// flags
	taskGlob string
	undo     bool
}

// NewSessionCmd creates a new session command.
func NewSessionCmd(flags *Flags, app *pomodoro.App) *SessionCmd {
	return &SessionCmd{flags: flags, app: app}
}

// Register adds the session command to the application.
func (cmd *SessionCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "session",
		Usage: "Mutate sessions in the current schedule",
		Description: `Commands that mark sessions complete, log distractions, and rename tasks.

Sessions are targeted by their position in 'pomodoro ls' (1-based), by
full ID, or by a task glob:

  pomodoro session toggle 3
  pomodoro session distract --task 'Review*'
  pomodoro session rename 1 "Deep work"`,
		Commands: []*cli.Command{
			cmd.toggleCmd(),
			cmd.distractCmd(),
			cmd.renameCmd(),
		},
	})
	return app
}

func (cmd *SessionCmd) taskFlag() cli.Flag {
	return &cli.StringFlag{
		Name:        "task",
		Aliases:     []string{"t"},
		Usage:       "target sessions whose task matches this glob (doublestar syntax)",
		Destination: &cmd.taskGlob,
	}
}

func (cmd *SessionCmd) toggleCmd() *cli.Command {
	return &cli.Command{
		Name:          "toggle",
		Aliases:       []string{"done"},
		Usage:         "Toggle a session between completed and incomplete",
		UsageText:     "pomodoro session toggle [<position>|<id>] [--task <glob>]",
		Flags:         []cli.Flag{cmd.taskFlag()},
		ShellComplete: SessionIDCompleter(cmd.app),
		Action: func(ctx context.Context, c *cli.Command) error {
			return cmd.apply(ctx, c, "toggled", func(id string) (schedule.Session, bool) {
				return cmd.app.Planner.ToggleStatus(ctx, id)
			})
		},
	}
}

func (cmd *SessionCmd) distractCmd() *cli.Command {
	return &cli.Command{
		Name:      "distract",
		Usage:     "Log a distraction on a work session",
		UsageText: "pomodoro session distract [<position>|<id>] [--task <glob>] [--undo]",
		Description: `Increments the targeted work session's distraction tally.

Use --undo to take one back; the tally never goes below zero. Break
sessions do not carry tallies and are skipped.`,
		Flags: []cli.Flag{
			cmd.taskFlag(),
			&cli.BoolFlag{
				Name:        "undo",
				Aliases:     []string{"u"},
				Usage:       "decrement instead of increment",
				Destination: &cmd.undo,
			},
		},
		ShellComplete: SessionIDCompleter(cmd.app),
		Action: func(ctx context.Context, c *cli.Command) error {
			verb := "distraction logged"
			fn := cmd.app.Planner.AddDistraction
			if cmd.undo {
				verb = "distraction removed"
				fn = cmd.app.Planner.RemoveDistraction
			}
			return cmd.apply(ctx, c, verb, func(id string) (schedule.Session, bool) {
				return fn(ctx, id)
			})
		},
	}
}

func (cmd *SessionCmd) renameCmd() *cli.Command {
	return &cli.Command{
		Name:          "rename",
		Usage:         "Rename a session's task",
		UsageText:     "pomodoro session rename <position>|<id> <new-name>",
		ShellComplete: SessionIDCompleter(cmd.app),
		Action: func(ctx context.Context, c *cli.Command) error {
			p := printer.Ctx(ctx)

			if c.Args().Len() < 2 {
				return fmt.Errorf("usage: pomodoro session rename <position>|<id> <new-name>")
			}
			name := strings.Join(c.Args().Slice()[1:], " ")

			ids, err := cmd.resolveTargets(c)
			if err != nil {
				return err
			}

			for _, id := range ids {
				s, ok := cmd.app.Planner.RenameTask(ctx, id, name)
				if !ok {
					p.Warnf("Session %s unchanged", id)
					continue
				}
				p.Successf("Renamed to %q (%s–%s)", s.Task, s.Start.Format("15:04"), s.End.Format("15:04"))
			}
			return nil
		},
	}
}

// apply resolves targets and runs op over each, reporting per session.
func (cmd *SessionCmd) apply(ctx context.Context, c *cli.Command, verb string, op func(id string) (schedule.Session, bool)) error {
	p := printer.Ctx(ctx)

	ids, err := cmd.resolveTargets(c)
	if err != nil {
		return err
	}

	for _, id := range ids {
		s, ok := op(id)
		if !ok {
			p.Warnf("Session %s unchanged", id)
			continue
		}
		detail := fmt.Sprintf("%s %s–%s", s.Task, s.Start.Format("15:04"), s.End.Format("15:04"))
		if s.IsWork() {
			detail = fmt.Sprintf("%s (%d distractions)", detail, s.Distractions)
		}
		p.Successf("%s: %s [%s]", strings.ToUpper(verb[:1])+verb[1:], detail, s.Status)
	}
	return nil
}

// resolveTargets turns the positional argument or --task glob into session
// IDs against the current plan.
func (cmd *SessionCmd) resolveTargets(c *cli.Command) ([]string, error) {
	plan, _ := cmd.app.Planner.Snapshot()
	if plan.Empty() {
		return nil, fmt.Errorf("no schedule; run 'pomodoro generate' first")
	}

	if cmd.taskGlob != "" {
		var ids []string
		for _, s := range plan.Sessions {
			ok, err := doublestar.Match(cmd.taskGlob, s.Task)
			if err != nil {
				return nil, fmt.Errorf("bad task glob %q: %w", cmd.taskGlob, err)
			}
			if ok {
				ids = append(ids, s.ID)
			}
		}
		if len(ids) == 0 {
			return nil, fmt.Errorf("no session task matches %q", cmd.taskGlob)
		}
		return ids, nil
	}

	target := c.Args().First()
	if target == "" {
		return nil, fmt.Errorf("specify a session position, ID, or --task glob")
	}

	// A small integer is a 1-based position from 'pomodoro ls'.
	if n, err := strconv.Atoi(target); err == nil {
		if n < 1 || n > len(plan.Sessions) {
			return nil, fmt.Errorf("position %d out of range 1–%d", n, len(plan.Sessions))
		}
		return []string{plan.Sessions[n-1].ID}, nil
	}

	if _, ok := schedule.Find(plan.Sessions, target); !ok {
		return nil, fmt.Errorf("no session with ID %q", target)
	}
	return []string{target}, nil
}
