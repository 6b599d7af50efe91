// Package config handles configuration loading and validation for pomodoro.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/benahmedanass/pomodoro/internal/core/schedule"
	"github.com/benahmedanass/pomodoro/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	Day     DayConfig `yaml:"day"`
	TUI     TUIConfig `yaml:"tui"`
	Cue     CueConfig `yaml:"cue"`
	DataDir string    `yaml:"-"` // set by caller, not from config file
}

// DayConfig holds the planning inputs used when flags and form answers
// leave them blank.
type DayConfig struct {
	Start        string   `yaml:"start"`         // day start clock, "09:00"
	End          string   `yaml:"end"`           // day end clock, "17:00"
	WorkMinutes  int      `yaml:"work_minutes"`  // work session length
	BreakMinutes int      `yaml:"break_minutes"` // break length, 0 plans no breaks
	Tasks        []string `yaml:"tasks"`         // default task rotation
}

// WorkDuration returns the configured work session length.
func (d DayConfig) WorkDuration() time.Duration {
	return time.Duration(d.WorkMinutes) * time.Minute
}

// BreakDuration returns the configured break length.
func (d DayConfig) BreakDuration() time.Duration {
	return time.Duration(d.BreakMinutes) * time.Minute
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme           string   `yaml:"theme"`
	RefreshInterval Duration `yaml:"refresh_interval"`
}

// CueConfig controls how session-start cues are delivered.
type CueConfig struct {
	// Desktop selects desktop notifications: nil probes for a notifier
	// binary, false disables them entirely.
	Desktop *bool `yaml:"desktop"`
	// Bell rings the terminal bell on each cue. Defaults to on.
	Bell *bool `yaml:"bell"`
	// Command is an optional shell hook run on each cue, e.g. a sound player.
	Command string `yaml:"command"`
}

// BellEnabled reports whether the terminal bell cue is on.
func (c CueConfig) BellEnabled() bool {
	return c.Bell == nil || *c.Bell
}

// DesktopEnabled reports whether desktop notifications may be used.
func (c CueConfig) DesktopEnabled() bool {
	return c.Desktop == nil || *c.Desktop
}

// Refresh interval bounds for the TUI tick.
const (
	DefaultRefreshInterval = 250 * time.Millisecond
	minRefreshInterval     = 50 * time.Millisecond
	maxRefreshInterval     = 5 * time.Second
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Day: DayConfig{
			Start:        "09:00",
			End:          "17:00",
			WorkMinutes:  25,
			BreakMinutes: 5,
		},
		TUI: TUIConfig{
			Theme:           styles.DefaultTheme,
			RefreshInterval: Duration(DefaultRefreshInterval),
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	// Apply defaults for zero values
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
// break_minutes stays as given; zero is a valid plan without breaks.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Day.Start == "" {
		c.Day.Start = defaults.Day.Start
	}
	if c.Day.End == "" {
		c.Day.End = defaults.Day.End
	}
	if c.Day.WorkMinutes == 0 {
		c.Day.WorkMinutes = defaults.Day.WorkMinutes
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.RefreshInterval == 0 {
		c.TUI.RefreshInterval = defaults.TUI.RefreshInterval
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if _, err := schedule.ParseClock(c.Day.Start); err != nil {
		return fmt.Errorf("day.start: %w", err)
	}
	if _, err := schedule.ParseClock(c.Day.End); err != nil {
		return fmt.Errorf("day.end: %w", err)
	}

	if c.Day.WorkMinutes < 1 {
		return fmt.Errorf("day.work_minutes must be at least 1")
	}
	if c.Day.BreakMinutes < 0 {
		return fmt.Errorf("day.break_minutes cannot be negative")
	}

	for i, task := range c.Day.Tasks {
		if strings.TrimSpace(task) == "" {
			return fmt.Errorf("day.tasks[%d] is blank", i)
		}
	}

	if _, ok := styles.GetPalette(c.TUI.Theme); !ok {
		return fmt.Errorf("tui.theme %q unknown, options: %s", c.TUI.Theme, strings.Join(styles.ThemeNames(), ", "))
	}

	ri := c.TUI.RefreshInterval.Std()
	if ri < minRefreshInterval || ri > maxRefreshInterval {
		return fmt.Errorf("tui.refresh_interval must be between %s and %s", minRefreshInterval, maxRefreshInterval)
	}

	return nil
}

// Palette returns the configured theme's palette.
func (c *Config) Palette() styles.Palette {
	p, ok := styles.GetPalette(c.TUI.Theme)
	if !ok {
		p, _ = styles.GetPalette(styles.DefaultTheme)
	}
	return p
}

// BuildOptions assembles partitioner inputs from the configured day,
// anchored to the given calendar day.
func (c *Config) BuildOptions(day time.Time) (schedule.Options, error) {
	start, err := schedule.ParseClock(c.Day.Start)
	if err != nil {
		return schedule.Options{}, fmt.Errorf("day.start: %w", err)
	}
	end, err := schedule.ParseClock(c.Day.End)
	if err != nil {
		return schedule.Options{}, fmt.Errorf("day.end: %w", err)
	}

	s, e := schedule.ResolveRange(start, end, day)
	return schedule.Options{
		Start: s,
		End:   e,
		Work:  c.Day.WorkDuration(),
		Break: c.Day.BreakDuration(),
		Tasks: c.Day.Tasks,
	}, nil
}

// ScheduleFile returns the path to the current plan JSON file.
func (c *Config) ScheduleFile() string {
	return filepath.Join(c.DataDir, "schedule.json")
}

// HistoryFile returns the path to the plan archive JSON file.
func (c *Config) HistoryFile() string {
	return filepath.Join(c.DataDir, "history.json")
}
