package executil

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSh_StderrCappedAtMaxLen(t *testing.T) {
	ctx := context.Background()

	// Write twice the cap to stderr; only the first maxStderrLen bytes should appear in the error.
	longStderr := strings.Repeat("A", maxStderrLen*2)
	cmd := fmt.Sprintf("printf '%%s' '%s' >&2; exit 1", longStderr)

	err := RunSh(ctx, cmd)
	require.Error(t, err)

	errMsg := err.Error()
	assert.LessOrEqual(t, len(errMsg), maxStderrLen+20, "error message should be capped")
	assert.Equal(t, strings.Repeat("A", maxStderrLen), errMsg[:maxStderrLen])
}

func TestRunSh_PreservesExitError(t *testing.T) {
	ctx := context.Background()

	err := RunSh(ctx, "echo 'error message' >&2; exit 1")
	require.Error(t, err)

	var exitErr *exec.ExitError
	assert.ErrorAs(t, err, &exitErr, "original ExitError should be preserved via wrapping")
}

func TestRunSh_NoStderrReturnsExitError(t *testing.T) {
	ctx := context.Background()

	err := RunSh(ctx, "exit 2")
	require.Error(t, err)

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.ExitCode())
}

func TestRealExecutor_Run(t *testing.T) {
	e := &RealExecutor{}
	ctx := context.Background()

	t.Run("successful command", func(t *testing.T) {
		out, err := e.Run(ctx, "echo", "hello")
		require.NoError(t, err)
		assert.Equal(t, "hello\n", string(out))
	})

	t.Run("command not found", func(t *testing.T) {
		_, err := e.Run(ctx, "nonexistent-command-12345")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exec nonexistent-command-12345")
	})

	t.Run("command fails", func(t *testing.T) {
		_, err := e.Run(ctx, "false")
		require.Error(t, err)
	})
}

func TestRealExecutor_LookPath(t *testing.T) {
	e := &RealExecutor{}

	path, err := e.LookPath("sh")
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	_, err = e.LookPath("nonexistent-command-12345")
	assert.Error(t, err)
}

func TestRecordingExecutor(t *testing.T) {
	t.Run("records commands", func(t *testing.T) {
		e := &RecordingExecutor{}
		ctx := context.Background()

		_, _ = e.Run(ctx, "notify-send", "Title", "Body")
		_, _ = e.Run(ctx, "notify-send", "Other", "Body")

		require.Len(t, e.Commands, 2)
		assert.Equal(t, "notify-send", e.Commands[0].Cmd)
		assert.Equal(t, []string{"Title", "Body"}, e.Commands[0].Args)
	})

	t.Run("returns configured output", func(t *testing.T) {
		e := &RecordingExecutor{
			Outputs: map[string][]byte{"notify-send": []byte("ok")},
		}

		out, err := e.Run(context.Background(), "notify-send", "x")
		require.NoError(t, err)
		assert.Equal(t, []byte("ok"), out)
	})

	t.Run("returns configured error", func(t *testing.T) {
		expectedErr := errors.New("command failed")
		e := &RecordingExecutor{
			Errors: map[string]error{"notify-send": expectedErr},
		}

		_, err := e.Run(context.Background(), "notify-send", "x")
		assert.Equal(t, expectedErr, err)
	})

	t.Run("lookpath resolves configured paths", func(t *testing.T) {
		e := &RecordingExecutor{
			Paths: map[string]string{"notify-send": "/usr/bin/notify-send"},
		}

		path, err := e.LookPath("notify-send")
		require.NoError(t, err)
		assert.Equal(t, "/usr/bin/notify-send", path)

		_, err = e.LookPath("osascript")
		assert.Error(t, err)
	})

	t.Run("reset clears commands", func(t *testing.T) {
		e := &RecordingExecutor{}
		_, _ = e.Run(context.Background(), "echo", "hello")
		require.Len(t, e.Commands, 1)

		e.Reset()
		assert.Empty(t, e.Commands)
	})
}
