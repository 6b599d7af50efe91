package cue

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/benahmedanass/pomodoro/pkg/executil"
)

// notifyCommand describes one platform notifier binary and how to shape
// its arguments.
type notifyCommand struct {
	bin  string
	args func(title, body string) []string
}

// Probed in order; the first binary found on PATH wins.
var notifyCommands = []notifyCommand{
	{
		bin: "notify-send",
		args: func(title, body string) []string {
			return []string{"--app-name=pomodoro", title, body}
		},
	},
	{
		bin: "osascript",
		args: func(title, body string) []string {
			script := fmt.Sprintf("display notification %q with title %q", body, title)
			return []string{"-e", script}
		},
	},
	{
		bin: "terminal-notifier",
		args: func(title, body string) []string {
			return []string{"-title", title, "-message", body}
		},
	},
}

// DesktopNotifier delivers session cues through whatever desktop
// notification binary the host provides. When none is found it degrades to
// a silent no-op and the terminal bell remains the only audible cue.
type DesktopNotifier struct {
	exec executil.Executor
	cmd  *notifyCommand
	log  zerolog.Logger
}

// NewDesktopNotifier probes PATH for a supported notifier binary.
func NewDesktopNotifier(execr executil.Executor, logger zerolog.Logger) *DesktopNotifier {
	n := &DesktopNotifier{
		exec: execr,
		log:  logger.With().Str("cmp", "notifier").Logger(),
	}
	for i := range notifyCommands {
		if _, err := execr.LookPath(notifyCommands[i].bin); err != nil {
			continue
		}
		n.cmd = &notifyCommands[i]
		n.log.Debug().Str("bin", n.cmd.bin).Msg("desktop notifier selected")
		break
	}
	if n.cmd == nil {
		n.log.Debug().Msg("no desktop notifier found")
	}
	return n
}

// Available reports whether a notifier binary was found.
func (n *DesktopNotifier) Available() bool {
	return n.cmd != nil
}

// Name returns the selected binary, or empty when unavailable.
func (n *DesktopNotifier) Name() string {
	if n.cmd == nil {
		return ""
	}
	return n.cmd.bin
}

// Notify delivers one notification. Unavailable notifiers no-op.
func (n *DesktopNotifier) Notify(ctx context.Context, title, body string) error {
	if n.cmd == nil {
		return nil
	}
	if _, err := n.exec.Run(ctx, n.cmd.bin, n.cmd.args(title, body)...); err != nil {
		return fmt.Errorf("notify via %s: %w", n.cmd.bin, err)
	}
	return nil
}
