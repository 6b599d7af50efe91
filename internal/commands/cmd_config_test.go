package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate_Valid(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun(t, "config", "validate")
	assert.Contains(t, out, "Configuration is valid")
}

func TestConfigValidate_JSON(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun(t, "config", "validate", "--format", "json")

	var got struct {
		Valid  bool     `json:"valid"`
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.Valid)
	assert.Empty(t, got.Errors)
}

func TestConfigValidate_Warnings(t *testing.T) {
	h := newHarness(t)
	h.flags.Config.Day.WorkMinutes = 180
	h.flags.Config.Day.BreakMinutes = 0

	out := h.mustRun(t, "config", "validate")

	assert.Contains(t, out, "unusually long")
	assert.Contains(t, out, "no breaks will be planned")
	assert.Contains(t, out, "Configuration is valid", "warnings alone do not fail validation")
}

func TestConfigValidate_ScheduleFileIsDirectory(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.MkdirAll(h.flags.Config.ScheduleFile(), 0o755))

	err := h.run(t, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, h.buf.String(), "schedule_file")
}

func TestConfigValidate_ConfigPathIsDirectory(t *testing.T) {
	h := newHarness(t)
	h.flags.ConfigPath = t.TempDir()

	err := h.run(t, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, h.buf.String(), "config_file")
}

func TestInit_WritesConfig(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	h.flags.ConfigPath = path

	out := h.mustRun(t, "init", "--yes")
	assert.Contains(t, out, "Config written")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "work_minutes: 25")
	assert.Contains(t, string(data), "09:00")
	assert.Contains(t, string(data), "# pomodoro configuration")
}

func TestInit_RefusesOverwriteWithoutForce(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	h.flags.ConfigPath = path

	h.mustRun(t, "init", "--yes")
	out := h.mustRun(t, "init", "--yes")
	assert.Contains(t, out, "already exists")
}

func TestInit_ForceKeepsBackup(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	h.flags.ConfigPath = path

	h.mustRun(t, "init", "--yes")
	h.mustRun(t, "init", "--yes", "--force")

	_, err := os.Stat(path + ".bak")
	assert.NoError(t, err)
}
