//go:build unit

package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/gitsync/internal/domain/entities"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	t.Run("should use the code carried by an exit error", func(t *testing.T) {
		t.Parallel()

		// given
		err := &entities.ExitError{Code: 128, Command: "git fetch --all"}

		// when
		code := exitCode(err)

		// then
		assert.Equal(t, 128, code)
	})

	t.Run("should default to one for any other error", func(t *testing.T) {
		t.Parallel()

		// when
		code := exitCode(errors.New("boom"))

		// then
		assert.Equal(t, 1, code)
	})
}

func TestAddSubcommands(t *testing.T) {
	t.Parallel()

	// given
	root := buildRootCommand()

	// when
	addSubcommands(root, injectAppContext())

	// then
	push, _, err := root.Find([]string{"push"})
	assert.NoError(t, err)
	assert.NotNil(t, push.Flags().Lookup("device"))
	for _, name := range []string{"config", "verbose", "dir"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}
}
