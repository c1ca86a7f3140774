//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/gitsync/internal/domain/entities"
)

func TestParseGitVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		output   string
		expected string
	}{
		{output: "git version 2.39.2\n", expected: "v2.39.2"},
		{output: "git version 2.39.2 (Apple Git-143)", expected: "v2.39.2"},
		{output: "git version 2.45.1.windows.1", expected: "v2.45.1"},
		{output: "git version 1.8", expected: "v1.8.0"},
		{output: "git: command not found", expected: ""},
		{output: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, entities.ParseGitVersion(tt.output))
		})
	}
}

func TestStashArgs(t *testing.T) {
	t.Parallel()

	t.Run("should use stash push on modern git", func(t *testing.T) {
		t.Parallel()

		// when
		args := entities.StashArgs("v2.39.2", "Auto stash before pull")

		// then
		assert.Equal(t, []string{"stash", "push", "--include-untracked", "-m", "Auto stash before pull"}, args)
	})

	t.Run("should fall back to stash save on old or unknown git", func(t *testing.T) {
		t.Parallel()

		expected := []string{"stash", "save", "--include-untracked", "Auto stash before pull"}
		assert.Equal(t, expected, entities.StashArgs("v2.12.5", "Auto stash before pull"))
		assert.Equal(t, expected, entities.StashArgs("", "Auto stash before pull"))
	})
}
