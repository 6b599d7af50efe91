package executil

import (
	"context"
	"os/exec"
	"sync"
)

// RecordedCommand captures a command that was executed.
type RecordedCommand struct {
	Cmd  string
	Args []string
}

// RecordingExecutor captures commands for testing.
// Configure Outputs, Errors, and Paths maps to control return values.
type RecordingExecutor struct {
	mu       sync.Mutex
	Commands []RecordedCommand

	// Outputs maps command names to their output.
	// Key is the command name (e.g., "notify-send").
	Outputs map[string][]byte

	// Errors maps command names to their error.
	Errors map[string]error

	// Paths maps binary names to resolved paths for LookPath.
	// Binaries missing from the map resolve as not found.
	Paths map[string]string
}

// Run records the command and returns configured output/error.
func (e *RecordingExecutor) Run(ctx context.Context, cmd string, args ...string) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.Commands = append(e.Commands, RecordedCommand{
		Cmd:  cmd,
		Args: args,
	})

	var out []byte
	var err error

	if e.Outputs != nil {
		out = e.Outputs[cmd]
	}
	if e.Errors != nil {
		err = e.Errors[cmd]
	}

	return out, err
}

// LookPath resolves against the configured Paths map.
func (e *RecordingExecutor) LookPath(bin string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if path, ok := e.Paths[bin]; ok {
		return path, nil
	}
	return "", &exec.Error{Name: bin, Err: exec.ErrNotFound}
}

// Reset clears recorded commands.
func (e *RecordingExecutor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Commands = nil
}
