//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitsync/internal/domain/commands"
	"github.com/rios0rios0/gitsync/internal/domain/entities"
)

// StubPullCommand is a stub implementation of commands.Pull.
type StubPullCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.PullOptions
}

var _ commands.Pull = (*StubPullCommand)(nil)

func (s *StubPullCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.PullOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}
