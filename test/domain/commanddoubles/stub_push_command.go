//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitsync/internal/domain/commands"
	"github.com/rios0rios0/gitsync/internal/domain/entities"
)

// StubPushCommand is a stub implementation of commands.Push.
type StubPushCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.PushOptions
}

var _ commands.Push = (*StubPushCommand)(nil)

func (s *StubPushCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.PushOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}
