package pomodoro

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/benahmedanass/pomodoro/internal/core/config"
	"github.com/benahmedanass/pomodoro/internal/core/cue"
	"github.com/benahmedanass/pomodoro/internal/core/schedule"
	"github.com/benahmedanass/pomodoro/pkg/executil"
)

// Cues delivers session-start announcements to the configured sinks: the
// desktop notifier, an optional shell hook, and the terminal bell. Sink
// failures are logged and swallowed; they must never reach the planner.
type Cues struct {
	cfg      config.CueConfig
	notifier *cue.DesktopNotifier
	log      zerolog.Logger
}

// NewCues builds the dispatcher. The desktop notifier is only probed when
// the config allows it; absence of a notifier binary is not an error.
func NewCues(cfg config.CueConfig, execr executil.Executor, logger zerolog.Logger) *Cues {
	c := &Cues{
		cfg: cfg,
		log: logger.With().Str("cmp", "cues").Logger(),
	}
	if cfg.DesktopEnabled() {
		c.notifier = cue.NewDesktopNotifier(execr, logger)
	}
	return c
}

// Deliver announces each newly due session and reports whether the caller
// should ring the terminal bell.
func (c *Cues) Deliver(ctx context.Context, due []schedule.Session) bool {
	for _, s := range due {
		title, body := cueText(s)

		if c.notifier != nil && c.notifier.Available() {
			if err := c.notifier.Notify(ctx, title, body); err != nil {
				c.log.Warn().Err(err).Str("id", s.ID).Msg("desktop cue failed")
			}
		}

		if c.cfg.Command != "" {
			if err := executil.RunSh(ctx, c.cfg.Command); err != nil {
				c.log.Warn().Err(err).Str("id", s.ID).Msg("cue hook failed")
			}
		}

		c.log.Debug().Str("id", s.ID).Str("kind", string(s.Kind)).Msg("cue delivered")
	}

	return c.cfg.BellEnabled() && len(due) > 0
}

func cueText(s schedule.Session) (title, body string) {
	end := s.End.Format("15:04")
	if s.IsWork() {
		return "Focus time", fmt.Sprintf("%s — until %s", s.Task, end)
	}
	return "Break time", fmt.Sprintf("Step away until %s", end)
}
