package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/benahmedanass/pomodoro/internal/commands"
	"github.com/benahmedanass/pomodoro/internal/core/config"
	"github.com/benahmedanass/pomodoro/internal/core/cue"
	"github.com/benahmedanass/pomodoro/internal/core/logging"
	"github.com/benahmedanass/pomodoro/internal/core/styles"
	"github.com/benahmedanass/pomodoro/internal/pomodoro"
	"github.com/benahmedanass/pomodoro/internal/printer"
	"github.com/benahmedanass/pomodoro/internal/store/jsonfile"
	"github.com/benahmedanass/pomodoro/pkg/executil"
	"github.com/benahmedanass/pomodoro/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() pomodoro.BuildInfo {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	if len(c) > 7 {
		c = c[:7]
	}

	return pomodoro.BuildInfo{Version: v, Commit: c, Date: d}
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		pomoApp   = &pomodoro.App{}
	)

	flags := &commands.Flags{App: pomoApp}
	buildInfo := build()

	app := &cli.Command{
		Name:      "pomodoro",
		Usage:     "Plan the day in focused sessions and work the plan",
		UsageText: "pomodoro [global options] command [command options]",
		Description: `Pomodoro partitions your working day into alternating work and break
sessions, announces each one as it starts, and keeps the plan in a JSON
file that every command and the timer view share.

Run 'pomodoro' with no arguments to open the interactive timer.
Run 'pomodoro generate' to plan a new day.`,
		Version: fmt.Sprintf("%s (%s) %s", buildInfo.Version, buildInfo.Commit, buildInfo.Date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("POMODORO_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/pomodoro.log)",
				Sources:     cli.EnvVars("POMODORO_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("POMODORO_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("POMODORO_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Always log to a file; use explicit path or default to
			// <datadir>/pomodoro.log so the TUI's stdout stays clean.
			logFile := flags.LogFile
			if logFile == "" {
				logFile = filepath.Join(flags.DataDir, "pomodoro.log")
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			// Apply configured theme (validation ensures name is valid)
			styles.SetTheme(cfg.Palette())

			planner := pomodoro.NewPlanner(
				jsonfile.NewScheduleStore(cfg.ScheduleFile(), logging.Component("store")),
				jsonfile.NewHistoryStore(cfg.HistoryFile(), logging.Component("store")),
				cue.NewTracker(cue.DefaultTolerance),
				logger,
			)
			if err := planner.Load(ctx); err != nil {
				return ctx, fmt.Errorf("load schedule: %w", err)
			}

			cues := pomodoro.NewCues(cfg.Cue, &executil.RealExecutor{}, logger)

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*pomoApp = *pomodoro.NewApp(planner, cues, cfg, buildInfo)

			return printer.WithCtx(ctx, printer.New(os.Stdout)), nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags, pomoApp)

	app = commands.NewGenerateCmd(flags, pomoApp).Register(app)
	app = commands.NewLsCmd(flags, pomoApp).Register(app)
	app = commands.NewStatusCmd(flags, pomoApp).Register(app)
	app = commands.NewSessionCmd(flags, pomoApp).Register(app)
	app = commands.NewHistoryCmd(flags, pomoApp).Register(app)
	app = commands.NewGuideCmd(flags).Register(app)
	app = commands.NewInitCmd(flags).Register(app)
	app = commands.NewConfigCmd(flags).Register(app)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'pomodoro --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	if runErr := app.Run(ctx, os.Args); runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
