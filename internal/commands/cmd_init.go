package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/benahmedanass/pomodoro/internal/core/config"
	"github.com/benahmedanass/pomodoro/internal/core/styles"
	"github.com/benahmedanass/pomodoro/internal/printer"
)

type InitCmd struct {
	flags *Flags

	// flags
	yes   bool
	force bool
}

// NewInitCmd creates a new init command.
func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

// Register adds the init command to the application.
func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Write a starter config file",
		UsageText: "pomodoro init [--yes] [--force]",
		Description: `Sets up pomodoro for first-time use with an interactive wizard.

The wizard asks for your usual day shape (start, end, work and break
lengths), a theme, and cue preferences, then writes config.yaml to the
config path. An existing config is backed up to config.yaml.bak before
being overwritten with --force.

Use --yes to accept all defaults without prompts.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "accept defaults without prompting",
				Destination: &cmd.yes,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite an existing config",
				Destination: &cmd.force,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *InitCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)
	path := cmd.flags.ConfigPath

	if _, err := os.Stat(path); err == nil && !cmd.force {
		p.Warnf("Config already exists at %s", path)
		p.Infof("Re-run with --force to overwrite (a .bak copy is kept)")
		return nil
	}

	cfg := config.DefaultConfig()
	if !cmd.yes {
		if err := cmd.runWizard(&cfg); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("wizard: %w", err)
		}
	}

	if err := writeConfig(path, cfg); err != nil {
		return err
	}

	p.Success("Config written", path)
	p.Infof("Run 'pomodoro generate' to plan your first day")
	return nil
}

func (cmd *InitCmd) runWizard(cfg *config.Config) error {
	var (
		workStr  = strconv.Itoa(cfg.Day.WorkMinutes)
		breakStr = strconv.Itoa(cfg.Day.BreakMinutes)
		bell     = cfg.Cue.BellEnabled()
	)

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Day starts at").
				Description("24-hour HH:MM").
				Validate(validateClock).
				Value(&cfg.Day.Start),
			huh.NewInput().
				Title("Day ends at").
				Validate(validateClock).
				Value(&cfg.Day.End),
			huh.NewInput().
				Title("Work minutes").
				Validate(validateMinutes(1)).
				Value(&workStr),
			huh.NewInput().
				Title("Break minutes").
				Validate(validateMinutes(0)).
				Value(&breakStr),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(huh.NewOptions(styles.ThemeNames()...)...).
				Value(&cfg.TUI.Theme),
			huh.NewConfirm().
				Title("Ring the terminal bell on session changes?").
				Value(&bell),
		),
	).WithTheme(styles.FormTheme()).Run()
	if err != nil {
		return err
	}

	cfg.Day.WorkMinutes, _ = strconv.Atoi(strings.TrimSpace(workStr))
	cfg.Day.BreakMinutes, _ = strconv.Atoi(strings.TrimSpace(breakStr))
	cfg.Cue.Bell = &bell
	return nil
}

// writeConfig marshals cfg to path, backing up any existing file first.
func writeConfig(path string, cfg config.Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		if err := os.Rename(path, path+".bak"); err != nil {
			return fmt.Errorf("back up existing config: %w", err)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	header := "# pomodoro configuration\n# Clock fields use 24-hour HH:MM.\n"
	if err := os.WriteFile(path, append([]byte(header), data...), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
