package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path, dir
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoConfigFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load("", dir)
	require.NoError(t, err)

	assert.Equal(t, "09:00", cfg.Day.Start)
	assert.Equal(t, "17:00", cfg.Day.End)
	assert.Equal(t, 25, cfg.Day.WorkMinutes)
	assert.Equal(t, 5, cfg.Day.BreakMinutes)
	assert.Equal(t, DefaultRefreshInterval, cfg.TUI.RefreshInterval.Std())
	assert.Equal(t, dir, cfg.DataDir)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "does-not-exist.yml"), dir)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Day.WorkMinutes)
}

func TestLoad_MergesUserValues(t *testing.T) {
	path, dir := writeConfig(t, `
day:
  start: "08:30"
  work_minutes: 50
  tasks:
    - Deep work
    - Email
tui:
  theme: gruvbox
  refresh_interval: 500ms
`)

	cfg, err := Load(path, dir)
	require.NoError(t, err)

	assert.Equal(t, "08:30", cfg.Day.Start)
	assert.Equal(t, "17:00", cfg.Day.End, "unset keys keep defaults")
	assert.Equal(t, 50, cfg.Day.WorkMinutes)
	assert.Equal(t, 5, cfg.Day.BreakMinutes)
	assert.Equal(t, []string{"Deep work", "Email"}, cfg.Day.Tasks)
	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
	assert.Equal(t, 500*time.Millisecond, cfg.TUI.RefreshInterval.Std())
}

func TestLoad_ExplicitZeroBreakSurvives(t *testing.T) {
	path, dir := writeConfig(t, `
day:
  break_minutes: 0
`)

	cfg, err := Load(path, dir)
	require.NoError(t, err)
	assert.Zero(t, cfg.Day.BreakMinutes)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path, dir := writeConfig(t, "day: [not: a: mapping")

	_, err := Load(path, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "bad start clock",
			yaml:    "day:\n  start: \"25:00\"\n",
			wantErr: "day.start",
		},
		{
			name:    "bad end clock",
			yaml:    "day:\n  end: \"nine\"\n",
			wantErr: "day.end",
		},
		{
			name:    "negative break",
			yaml:    "day:\n  break_minutes: -1\n",
			wantErr: "break_minutes",
		},
		{
			name:    "negative work",
			yaml:    "day:\n  work_minutes: -5\n",
			wantErr: "work_minutes",
		},
		{
			name:    "blank task",
			yaml:    "day:\n  tasks:\n    - Deep work\n    - \"  \"\n",
			wantErr: "day.tasks[1]",
		},
		{
			name:    "unknown theme",
			yaml:    "tui:\n  theme: solarized\n",
			wantErr: "tui.theme",
		},
		{
			name:    "refresh too fast",
			yaml:    "tui:\n  refresh_interval: 1ms\n",
			wantErr: "refresh_interval",
		},
		{
			name:    "refresh not a duration",
			yaml:    "tui:\n  refresh_interval: fast\n",
			wantErr: "duration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, dir := writeConfig(t, tt.yaml)
			_, err := Load(path, dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_BuildOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Day.Tasks = []string{"Write"}
	day := time.Date(2025, 6, 10, 13, 45, 0, 0, time.UTC)

	opts, err := cfg.BuildOptions(day)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC), opts.Start)
	assert.Equal(t, time.Date(2025, 6, 10, 17, 0, 0, 0, time.UTC), opts.End)
	assert.Equal(t, 25*time.Minute, opts.Work)
	assert.Equal(t, 5*time.Minute, opts.Break)
	assert.Equal(t, []string{"Write"}, opts.Tasks)
}

func TestConfig_BuildOptions_OvernightRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Day.Start = "22:00"
	cfg.Day.End = "02:00"
	day := time.Date(2025, 6, 10, 23, 0, 0, 0, time.UTC)

	opts, err := cfg.BuildOptions(day)
	require.NoError(t, err)
	assert.Equal(t, 4*time.Hour, opts.End.Sub(opts.Start))
	assert.Equal(t, 11, opts.End.Day())
}

func TestConfig_Paths(t *testing.T) {
	cfg := Config{DataDir: "/data/pomodoro"}
	assert.Equal(t, filepath.Join("/data/pomodoro", "schedule.json"), cfg.ScheduleFile())
	assert.Equal(t, filepath.Join("/data/pomodoro", "history.json"), cfg.HistoryFile())
}

func TestCueConfig_Toggles(t *testing.T) {
	on := true
	off := false

	assert.True(t, CueConfig{}.BellEnabled(), "bell defaults on")
	assert.True(t, CueConfig{Bell: &on}.BellEnabled())
	assert.False(t, CueConfig{Bell: &off}.BellEnabled())

	assert.True(t, CueConfig{}.DesktopEnabled(), "desktop defaults to auto")
	assert.False(t, CueConfig{Desktop: &off}.DesktopEnabled())
}

func TestDuration_YAMLRoundTrip(t *testing.T) {
	d := Duration(750 * time.Millisecond)
	out, err := d.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, "750ms", out)
}
