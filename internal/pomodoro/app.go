package pomodoro

import (
	"github.com/benahmedanass/pomodoro/internal/core/config"
)

// BuildInfo carries version metadata surfaced by the TUI footer.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// App is the central entry point for all pomodoro operations. Commands and
// the TUI consume App instead of cherry-picking raw dependencies.
type App struct {
	Planner *Planner
	Cues    *Cues
	Config  *config.Config
	Build   BuildInfo
}

// NewApp constructs an App from explicit dependencies.
func NewApp(planner *Planner, cues *Cues, cfg *config.Config, build BuildInfo) *App {
	return &App{
		Planner: planner,
		Cues:    cues,
		Config:  cfg,
		Build:   build,
	}
}
