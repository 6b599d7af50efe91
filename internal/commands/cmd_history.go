package commands

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/benahmedanass/pomodoro/internal/core/archive"
	"github.com/benahmedanass/pomodoro/internal/core/schedule"
	"github.com/benahmedanass/pomodoro/internal/core/styles"
	"github.com/benahmedanass/pomodoro/internal/pomodoro"
	"github.com/benahmedanass/pomodoro/internal/printer"
	"github.com/benahmedanass/pomodoro/pkg/iojson"
)

type HistoryCmd struct {
	flags *Flags
	app   *pomodoro.App

	// flags
	jsonOutput bool
	limit      int
	yes        bool
}

// NewHistoryCmd creates a new history command.
func NewHistoryCmd(flags *Flags, app *pomodoro.App) *HistoryCmd {
	return &HistoryCmd{flags: flags, app: app}
}

// Register adds the history command to the application.
func (cmd *HistoryCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "history",
		Usage: "Archived schedules from previous generations",
		Description: `Each 'generate' that displaces a non-empty schedule archives it here,
bounded to the ` + fmt.Sprint(archive.MaxEntries) + ` most recent entries.`,
		Commands: []*cli.Command{
			cmd.lsCmd(),
			cmd.showCmd(),
			cmd.clearCmd(),
		},
	})
	return app
}

func (cmd *HistoryCmd) lsCmd() *cli.Command {
	return &cli.Command{
		Name:      "ls",
		Usage:     "List archived schedules, newest first",
		UsageText: "pomodoro history ls [--json] [--limit N]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
			&cli.IntFlag{
				Name:        "limit",
				Aliases:     []string{"n"},
				Usage:       "show only the N most recent entries",
				Destination: &cmd.limit,
			},
		},
		Action: cmd.runLs,
	}
}

// historyRow is the JSON output format for pomodoro history ls.
type historyRow struct {
	Date      string `json:"date"`
	Sessions  int    `json:"sessions"`
	Completed int    `json:"completed"`
	Work      int    `json:"work"`
}

func (cmd *HistoryCmd) runLs(ctx context.Context, c *cli.Command) error {
	entries, err := cmd.app.Planner.History(ctx)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	if cmd.limit > 0 && len(entries) > cmd.limit {
		entries = entries[:cmd.limit]
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, e := range entries {
			completed, work := schedule.WorkProgress(e.Schedule)
			row := historyRow{
				Date:      e.Date,
				Sessions:  e.Sessions(),
				Completed: completed,
				Work:      work,
			}
			if err := iojson.WriteLine(out, row); err != nil {
				return fmt.Errorf("encode entry: %w", err)
			}
		}
		return nil
	}

	if len(entries) == 0 {
		printer.Ctx(ctx).Infof("No archived schedules yet")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "DATE\tAGE\tSESSIONS\tWORK DONE")
	for _, e := range entries {
		completed, work := schedule.WorkProgress(e.Schedule)
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%d/%d\n",
			e.Date, relativeDate(e.Date), e.Sessions(), completed, work)
	}
	_ = w.Flush()
	return nil
}

func (cmd *HistoryCmd) showCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show one archived schedule in full",
		UsageText: "pomodoro history show <date>",
		Action:    cmd.runShow,
	}
}

func (cmd *HistoryCmd) runShow(ctx context.Context, c *cli.Command) error {
	date := c.Args().First()
	if date == "" {
		return fmt.Errorf("usage: pomodoro history show <date> (see 'pomodoro history ls')")
	}

	entries, err := cmd.app.Planner.History(ctx)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	// Dates may repeat when a day is regenerated more than once; the
	// newest match wins.
	for _, e := range entries {
		if e.Date != date {
			continue
		}
		renderPlanTable(c.Root().Writer, e.Schedule, time.Time{})
		return nil
	}

	return fmt.Errorf("no archived schedule for %s", date)
}

func (cmd *HistoryCmd) clearCmd() *cli.Command {
	return &cli.Command{
		Name:      "clear",
		Usage:     "Discard every archived schedule",
		UsageText: "pomodoro history clear [--yes]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "skip the confirmation prompt",
				Destination: &cmd.yes,
			},
		},
		Action: cmd.runClear,
	}
}

func (cmd *HistoryCmd) runClear(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	if !cmd.yes {
		var confirm bool
		err := huh.NewConfirm().
			Title("Discard all archived schedules?").
			Description("This cannot be undone.").
			Value(&confirm).
			WithTheme(styles.FormTheme()).
			Run()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("confirm: %w", err)
		}
		if !confirm {
			p.Infof("History kept")
			return nil
		}
	}

	if err := cmd.app.Planner.ClearHistory(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	p.Successf("History cleared")
	return nil
}

// relativeDate renders an archive date label as a humanized age.
func relativeDate(label string) string {
	t, err := time.ParseInLocation(archive.DateFormat, label, time.Local)
	if err != nil {
		return ""
	}
	return humanize.Time(t)
}
