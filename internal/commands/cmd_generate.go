package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/benahmedanass/pomodoro/internal/core/schedule"
	"github.com/benahmedanass/pomodoro/internal/core/styles"
	"github.com/benahmedanass/pomodoro/internal/pomodoro"
	"github.com/benahmedanass/pomodoro/internal/printer"
)

type GenerateCmd struct {
	flags *Flags
	app   *pomodoro.App

	// flags
	start      string
	end        string
	workMin    int
	breakMin   int
	tasks      []string
	noInput    bool
	jsonOutput bool
}

// NewGenerateCmd creates a new generate command.
func NewGenerateCmd(flags *Flags, app *pomodoro.App) *GenerateCmd {
	return &GenerateCmd{flags: flags, app: app}
}

// Register adds the generate command to the application.
func (cmd *GenerateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "generate",
		Aliases:   []string{"gen"},
		Usage:     "Generate a fresh day schedule",
		UsageText: "pomodoro generate [options]",
		Description: `Partitions the day into alternating work and break sessions.

The previous schedule, when non-empty, is archived to history before being
replaced. Work sessions cycle through the given task names; with no tasks
they are numbered.

With no flags an interactive form collects the inputs, prefilled from your
config. Use --no-input to accept config defaults directly (for scripts).`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "start",
				Aliases:     []string{"s"},
				Usage:       "day start time (HH:MM)",
				Destination: &cmd.start,
			},
			&cli.StringFlag{
				Name:        "end",
				Aliases:     []string{"e"},
				Usage:       "day end time (HH:MM); at or before start rolls to the next day",
				Destination: &cmd.end,
			},
			&cli.IntFlag{
				Name:        "work",
				Aliases:     []string{"w"},
				Usage:       "work session length in minutes",
				Destination: &cmd.workMin,
			},
			&cli.IntFlag{
				Name:        "break",
				Aliases:     []string{"b"},
				Usage:       "break length in minutes (0 plans no breaks)",
				Destination: &cmd.breakMin,
			},
			&cli.StringSliceFlag{
				Name:        "task",
				Aliases:     []string{"t"},
				Usage:       "task name for the work rotation (repeatable)",
				Destination: &cmd.tasks,
			},
			&cli.BoolFlag{
				Name:        "no-input",
				Usage:       "never prompt; use flags and config defaults",
				Destination: &cmd.noInput,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print the generated schedule as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *GenerateCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)
	cfg := cmd.flags.Config

	// Config supplies anything the flags left blank.
	if cmd.start == "" {
		cmd.start = cfg.Day.Start
	}
	if cmd.end == "" {
		cmd.end = cfg.Day.End
	}
	if !c.IsSet("work") {
		cmd.workMin = cfg.Day.WorkMinutes
	}
	if !c.IsSet("break") {
		cmd.breakMin = cfg.Day.BreakMinutes
	}
	if len(cmd.tasks) == 0 {
		cmd.tasks = cfg.Day.Tasks
	}

	interactive := !cmd.noInput && !cmd.jsonOutput && noGenerateFlags(c)
	if interactive {
		if err := cmd.runForm(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	plan, err := cmd.generate(ctx)
	if err != nil {
		return err
	}

	if cmd.jsonOutput {
		return writeSessionsJSON(c.Root().Writer, plan.Sessions)
	}

	if plan.Empty() {
		p.Warnf("No sessions fit between %s and %s", cmd.start, cmd.end)
		return nil
	}

	p.Successf("Generated %d sessions from %s to %s", len(plan.Sessions), cmd.start, cmd.end)
	renderPlanTable(c.Root().Writer, plan.Sessions, time.Now())
	return nil
}

// generate validates the collected inputs and replaces the current plan.
func (cmd *GenerateCmd) generate(ctx context.Context) (schedule.Plan, error) {
	startClock, err := schedule.ParseClock(cmd.start)
	if err != nil {
		return schedule.Plan{}, fmt.Errorf("start: %w", err)
	}
	endClock, err := schedule.ParseClock(cmd.end)
	if err != nil {
		return schedule.Plan{}, fmt.Errorf("end: %w", err)
	}
	if cmd.workMin < 1 {
		return schedule.Plan{}, fmt.Errorf("work must be at least 1 minute")
	}
	if cmd.breakMin < 0 {
		return schedule.Plan{}, fmt.Errorf("break cannot be negative")
	}

	start, end := schedule.ResolveRange(startClock, endClock, time.Now())
	return cmd.app.Planner.Generate(ctx, schedule.Options{
		Start: start,
		End:   end,
		Work:  time.Duration(cmd.workMin) * time.Minute,
		Break: time.Duration(cmd.breakMin) * time.Minute,
		Tasks: normalizeTasks(cmd.tasks),
	}), nil
}

// RunInteractive opens the planning form seeded from config and regenerates.
// The TUI hands off here when the user asks to replan; a form abort leaves
// the current plan alone.
func (cmd *GenerateCmd) RunInteractive(ctx context.Context) error {
	cfg := cmd.flags.Config
	cmd.start = cfg.Day.Start
	cmd.end = cfg.Day.End
	cmd.workMin = cfg.Day.WorkMinutes
	cmd.breakMin = cfg.Day.BreakMinutes
	cmd.tasks = cfg.Day.Tasks

	if err := cmd.runForm(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return fmt.Errorf("form: %w", err)
	}

	plan, err := cmd.generate(ctx)
	if err != nil {
		return err
	}

	printer.Ctx(ctx).Successf("Generated %d sessions from %s to %s", len(plan.Sessions), cmd.start, cmd.end)
	return nil
}

// noGenerateFlags reports whether the user supplied no planning flags at
// all, which is the cue to open the form.
func noGenerateFlags(c *cli.Command) bool {
	for _, name := range []string{"start", "end", "work", "break", "task"} {
		if c.IsSet(name) {
			return false
		}
	}
	return true
}

func (cmd *GenerateCmd) runForm() error {
	var (
		workStr  = strconv.Itoa(cmd.workMin)
		breakStr = strconv.Itoa(cmd.breakMin)
		tasksRaw = strings.Join(cmd.tasks, "\n")
	)

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Day starts at").
				Description("24-hour HH:MM").
				Validate(validateClock).
				Value(&cmd.start),
			huh.NewInput().
				Title("Day ends at").
				Description("At or before the start rolls over to tomorrow").
				Validate(validateClock).
				Value(&cmd.end),
			huh.NewInput().
				Title("Work minutes").
				Validate(validateMinutes(1)).
				Value(&workStr),
			huh.NewInput().
				Title("Break minutes").
				Description("0 plans a day without breaks").
				Validate(validateMinutes(0)).
				Value(&breakStr),
			huh.NewText().
				Title("Tasks").
				Description("One per line; work sessions cycle through them").
				Value(&tasksRaw),
		),
	).WithTheme(styles.FormTheme()).Run()
	if err != nil {
		return err
	}

	cmd.workMin, _ = strconv.Atoi(strings.TrimSpace(workStr))
	cmd.breakMin, _ = strconv.Atoi(strings.TrimSpace(breakStr))
	cmd.tasks = schedule.ParseTasks(tasksRaw)
	return nil
}

func validateClock(s string) error {
	_, err := schedule.ParseClock(s)
	return err
}

func validateMinutes(min int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		if n < min {
			return fmt.Errorf("must be at least %d", min)
		}
		return nil
	}
}

// normalizeTasks trims entries and drops blanks, preserving order.
func normalizeTasks(tasks []string) []string {
	var out []string
	for _, t := range tasks {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}
