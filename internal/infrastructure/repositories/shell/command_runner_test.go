//go:build unit

package shell_test

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitsync/internal/domain/entities"
	"github.com/rios0rios0/gitsync/internal/infrastructure/repositories/shell"
)

func newShellRunner(t *testing.T) (*shell.CommandRunner, *bytes.Buffer) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	out := &bytes.Buffer{}
	return shell.NewCommandRunner("sh", out), out
}

func TestCommandRunnerRun(t *testing.T) {
	t.Parallel()

	t.Run("should capture merged output in arrival order and mirror it", func(t *testing.T) {
		t.Parallel()

		// given
		runner, out := newShellRunner(t)
		request := entities.CommandRequest{Args: []string{"-c", "echo one; echo two 1>&2; echo three"}}

		// when
		result, err := runner.Run(context.Background(), request)

		// then
		require.NoError(t, err)
		assert.Equal(t, 0, result.Code)
		assert.Equal(t, "one\ntwo\nthree\n", result.Output)
		assert.Equal(t, "one\ntwo\nthree\n", out.String())
	})

	t.Run("should not mirror output when silent", func(t *testing.T) {
		t.Parallel()

		// given
		runner, out := newShellRunner(t)
		request := entities.CommandRequest{Args: []string{"-c", "printf 'no newline'"}, Silent: true}

		// when
		result, err := runner.Run(context.Background(), request)

		// then
		require.NoError(t, err)
		assert.Equal(t, "no newline", result.Output)
		assert.Empty(t, out.String())
	})

	t.Run("should return the exit code without error when unchecked", func(t *testing.T) {
		t.Parallel()

		// given
		runner, _ := newShellRunner(t)
		request := entities.CommandRequest{Args: []string{"-c", "echo failing; exit 3"}, Silent: true}

		// when
		result, err := runner.Run(context.Background(), request)

		// then
		require.NoError(t, err)
		assert.Equal(t, 3, result.Code)
		assert.Equal(t, "failing\n", result.Output)
	})

	t.Run("should propagate the exit code when checked", func(t *testing.T) {
		t.Parallel()

		// given
		runner, _ := newShellRunner(t)
		request := entities.CommandRequest{Args: []string{"-c", "exit 42"}, Check: true}

		// when
		result, err := runner.Run(context.Background(), request)

		// then
		var exitErr *entities.ExitError
		require.True(t, errors.As(err, &exitErr))
		assert.Equal(t, 42, exitErr.Code)
		assert.Equal(t, 42, result.Code)
		assert.Contains(t, exitErr.Command, "exit 42")
	})

	t.Run("should run in the requested directory", func(t *testing.T) {
		t.Parallel()

		// given
		runner, _ := newShellRunner(t)
		dir := t.TempDir()
		request := entities.CommandRequest{Args: []string{"-c", "pwd -P"}, Dir: dir, Silent: true}

		// when
		result, err := runner.Run(context.Background(), request)

		// then
		require.NoError(t, err)
		assert.NotEmpty(t, result.Output)
	})

	t.Run("should report code 1 and empty output when the binary is missing", func(t *testing.T) {
		t.Parallel()

		// given
		out := &bytes.Buffer{}
		runner := shell.NewCommandRunner("gitsync-definitely-missing-binary", out)

		// when
		result, err := runner.Run(context.Background(), entities.CommandRequest{Args: []string{"status"}})

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.CommandResult{Code: 1}, result)
	})

	t.Run("should abort with code 1 when a checked binary is missing", func(t *testing.T) {
		t.Parallel()

		// given
		runner := shell.NewCommandRunner("git", &bytes.Buffer{})
		request := entities.CommandRequest{
			Binary: "gitsync-definitely-missing-binary",
			Args:   []string{"fetch", "--all"},
			Check:  true,
		}

		// when
		_, err := runner.Run(context.Background(), request)

		// then
		var exitErr *entities.ExitError
		require.True(t, errors.As(err, &exitErr))
		assert.Equal(t, 1, exitErr.Code)
	})
}
