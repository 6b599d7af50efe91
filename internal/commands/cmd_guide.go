package commands

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"

	"github.com/benahmedanass/pomodoro/internal/core/styles"
)

type GuideCmd struct {
	flags *Flags

	// flags
	plain bool
}

// NewGuideCmd creates a new guide command.
func NewGuideCmd(flags *Flags) *GuideCmd {
	return &GuideCmd{flags: flags}
}

// Register adds the guide command to the application.
func (cmd *GuideCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "guide",
		Usage:       "Show the technique and usage guide",
		UsageText:   "pomodoro guide [--plain]",
		Description: "Renders a short guide to the Pomodoro technique and this tool's workflow.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "print raw markdown without terminal rendering",
				Destination: &cmd.plain,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *GuideCmd) run(_ context.Context, c *cli.Command) error {
	out := c.Root().Writer

	if cmd.plain {
		_, err := fmt.Fprint(out, guideText)
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	rendered, err := r.Render(guideText)
	if err != nil {
		return fmt.Errorf("render guide: %w", err)
	}

	_, err = fmt.Fprint(out, rendered)
	return err
}

const guideText = `# Pomodoro

Plan the day once, then work the plan.

## The technique

1. Decide when your day starts and ends.
2. Split it into short, fixed work sessions separated by breaks.
3. During a work session, do one task. When something pulls you away,
   log a distraction instead of following it.
4. When the bell rings, stop — even mid-sentence — and take the break.

## Planning a day

` + "```bash" + `
pomodoro generate -s 09:00 -e 17:30 -w 25 -b 5 -t "Write report" -t "Review PRs"
` + "```" + `

Work sessions cycle through the task list. An end time at or before the
start rolls over to the next day, so night shifts plan fine:

` + "```bash" + `
pomodoro generate -s 22:00 -e 06:00 -w 50 -b 10
` + "```" + `

The last work session is clipped to the end of the day; a break that would
not fit in full is dropped.

## Working the plan

Run ` + "`pomodoro`" + ` with no arguments for the timer view: countdown,
progress, and keybindings for marking sessions and logging distractions.
From another terminal:

` + "```bash" + `
pomodoro status            # active session and remaining time
pomodoro ls                # the whole day at a glance
pomodoro session toggle 3  # mark session 3 done
pomodoro session distract --task 'Review*'
` + "```" + `

## Looking back

Regenerating archives the old schedule:

` + "```bash" + `
pomodoro history ls
pomodoro history show 2025-06-10
` + "```" + `
`
