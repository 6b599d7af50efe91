package config

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/hay-kot/criterio"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration
// including file accessibility and cue hook checks. The configPath argument
// specifies the config file location to validate (empty string skips the
// config file check). This calls Validate() first for basic structural
// validation, then adds I/O checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		c.validateFileAccess(configPath),
		c.validateDataFiles(),
		c.validateCue(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.Day.WorkMinutes > 120 {
		warnings = append(warnings, ValidationWarning{
			Category: "Day",
			Item:     "work_minutes",
			Message:  fmt.Sprintf("%d minute work sessions are unusually long", c.Day.WorkMinutes),
		})
	}
	if c.Day.BreakMinutes == 0 {
		warnings = append(warnings, ValidationWarning{
			Category: "Day",
			Item:     "break_minutes",
			Message:  "no breaks will be planned",
		})
	}
	if c.TUI.RefreshInterval.Std() > time.Second {
		warnings = append(warnings, ValidationWarning{
			Category: "TUI",
			Item:     "refresh_interval",
			Message:  "countdown updates will be visibly choppy above 1s",
		})
	}

	return warnings
}

// validateFileAccess checks the config file and data directory.
func (c *Config) validateFileAccess(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
	)
}

// validateDataFiles checks that existing data files are regular files.
func (c *Config) validateDataFiles() error {
	return criterio.ValidateStruct(
		criterio.Run("schedule_file", c.ScheduleFile(), isFileOrNotExist),
		criterio.Run("history_file", c.HistoryFile(), isFileOrNotExist),
	)
}

// validateCue checks the cue hook can actually run.
func (c *Config) validateCue() error {
	if c.Cue.Command == "" {
		return nil
	}
	return criterio.Run("cue.command", c.Cue.Command, shellAvailable)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

// isFileOrNotExist validates that a path is a regular file or doesn't exist.
func isFileOrNotExist(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("exists but is a directory")
	}
	return nil
}

// shellAvailable validates that a shell exists to run hook commands.
func shellAvailable(cmd string) error {
	if cmd == "" {
		return nil
	}
	if _, err := exec.LookPath("sh"); err != nil {
		return fmt.Errorf("no sh on PATH to run hook command")
	}
	return nil
}
