package commands

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/benahmedanass/pomodoro/internal/core/config"
	"github.com/benahmedanass/pomodoro/internal/core/cue"
	"github.com/benahmedanass/pomodoro/internal/pomodoro"
	"github.com/benahmedanass/pomodoro/internal/printer"
	"github.com/benahmedanass/pomodoro/internal/store/jsonfile"
	"github.com/benahmedanass/pomodoro/pkg/executil"
)

// harness wires a real App over jsonfile stores in a temp dir. Each run()
// builds a fresh command tree so flag state never leaks between invocations,
// while the planner and its files persist across runs like they do between
// real CLI calls.
type harness struct {
	flags *Flags
	app   *pomodoro.App
	buf   *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	dir := t.TempDir()
	logger := zerolog.Nop()

	cfg := config.DefaultConfig()
	cfg.DataDir = dir
	off := false
	cfg.Cue.Desktop = &off

	planner := pomodoro.NewPlanner(
		jsonfile.NewScheduleStore(cfg.ScheduleFile(), logger),
		jsonfile.NewHistoryStore(cfg.HistoryFile(), logger),
		cue.NewTracker(time.Second),
		logger,
	)
	require.NoError(t, planner.Load(context.Background()))

	cues := pomodoro.NewCues(cfg.Cue, &executil.RecordingExecutor{}, logger)
	app := pomodoro.NewApp(planner, cues, &cfg, pomodoro.BuildInfo{Version: "test"})

	return &harness{
		flags: &Flags{Config: &cfg, App: app, DataDir: dir},
		app:   app,
		buf:   &bytes.Buffer{},
	}
}

func (h *harness) run(t *testing.T, args ...string) error {
	t.Helper()

	root := &cli.Command{
		Name:   "pomodoro",
		Writer: h.buf,
		// Suppress the default ExitCoder handling, which calls os.Exit and
		// would kill the test process; Run still returns the error.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
	NewGenerateCmd(h.flags, h.app).Register(root)
	NewLsCmd(h.flags, h.app).Register(root)
	NewStatusCmd(h.flags, h.app).Register(root)
	NewSessionCmd(h.flags, h.app).Register(root)
	NewHistoryCmd(h.flags, h.app).Register(root)
	NewGuideCmd(h.flags).Register(root)
	NewInitCmd(h.flags).Register(root)
	NewConfigCmd(h.flags).Register(root)

	ctx := printer.WithCtx(context.Background(), printer.New(h.buf))
	return root.Run(ctx, append([]string{"pomodoro"}, args...))
}

// mustRun runs and fails the test on error, returning the captured output.
func (h *harness) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	h.buf.Reset()
	require.NoError(t, h.run(t, args...))
	return h.buf.String()
}
