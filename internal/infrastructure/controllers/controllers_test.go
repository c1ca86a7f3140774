//go:build unit

package controllers_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitsync/internal/domain/entities"
	"github.com/rios0rios0/gitsync/internal/infrastructure/controllers"
	"github.com/rios0rios0/gitsync/test/domain/commanddoubles"
)

// newCommand mirrors the persistent flags registered on the root command.
func newCommand(t *testing.T, controller entities.Controller, args ...string) *cobra.Command {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), ".gitsync.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("branch:\n  fallback: trunk\n"), 0o600))

	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{Use: controller.GetBind().Use}
	cmd.Flags().StringP("config", "c", "", "")
	cmd.Flags().BoolP("verbose", "v", false, "")
	cmd.Flags().StringP("dir", "C", "", "")
	controller.AddFlags(cmd)
	require.NoError(t, cmd.Flags().Parse(append([]string{"--config", configPath}, args...)))
	return cmd
}

func TestPullController(t *testing.T) {
	t.Parallel()

	t.Run("should pass assembled settings and working directory to the command", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubPullCommand{}
		controller := controllers.NewPullController(stub)
		dir := t.TempDir()
		cmd := newCommand(t, controller, "--dir", dir)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, dir, stub.LastOpts.WorkDir)
		assert.NotEmpty(t, stub.LastOpts.SystemName)
		assert.Equal(t, "trunk", stub.LastSettings.FallbackBranch)
	})

	t.Run("should return the command error unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubPullCommand{ExecuteErr: entities.NewExitError(128)}
		controller := controllers.NewPullController(stub)
		cmd := newCommand(t, controller)

		// when
		err := controller.Execute(cmd, nil)

		// then
		var exitErr *entities.ExitError
		require.True(t, errors.As(err, &exitErr))
		assert.Equal(t, 128, exitErr.Code)
	})

	t.Run("should fail before running when the config file is invalid", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubPullCommand{}
		controller := controllers.NewPullController(stub)
		cmd := newCommand(t, controller, "--config", filepath.Join(t.TempDir(), "missing.yaml"))

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.Zero(t, stub.ExecuteCallCount)
	})
}

func TestPushController(t *testing.T) {
	t.Parallel()

	t.Run("should forward the device flag", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubPushCommand{}
		controller := controllers.NewPushController(stub)
		cmd := newCommand(t, controller, "--device")

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.True(t, stub.LastOpts.Device)
		assert.NotEmpty(t, stub.LastOpts.WorkDir)
	})

	t.Run("should default to the plain variant", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubPushCommand{}
		controller := controllers.NewPushController(stub)
		cmd := newCommand(t, controller)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.False(t, stub.LastOpts.Device)
	})
}

func TestStatusController(t *testing.T) {
	t.Parallel()

	// given
	stub := &commanddoubles.StubStatusCommand{}
	controller := controllers.NewStatusController(stub)
	cmd := newCommand(t, controller, "--dir", ".")

	// when
	err := controller.Execute(cmd, nil)

	// then
	require.NoError(t, err)
	assert.Equal(t, 1, stub.ExecuteCallCount)
	assert.True(t, filepath.IsAbs(stub.LastOpts.WorkDir))
}

func TestNewControllers(t *testing.T) {
	t.Parallel()

	// when
	list := controllers.NewControllers(
		controllers.NewPullController(&commanddoubles.StubPullCommand{}),
		controllers.NewPushController(&commanddoubles.StubPushCommand{}),
		controllers.NewStatusController(&commanddoubles.StubStatusCommand{}),
	)

	// then
	uses := make([]string, 0, len(*list))
	for _, controller := range *list {
		uses = append(uses, controller.GetBind().Use)
	}
	assert.Equal(t, []string{"pull", "push", "status"}, uses)
}
