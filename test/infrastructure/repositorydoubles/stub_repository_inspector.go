//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitsync/internal/domain/entities"
	"github.com/rios0rios0/gitsync/internal/domain/repositories"
)

// StubRepositoryInspector is a stub implementation of repositories.RepositoryInspector.
type StubRepositoryInspector struct {
	State      entities.RepositoryState
	InspectErr error

	// spy: arguments received
	InspectedDirs    []string
	InspectedRemotes []string
}

var _ repositories.RepositoryInspector = (*StubRepositoryInspector)(nil)

func (s *StubRepositoryInspector) Inspect(
	_ context.Context,
	dir, remoteName string,
) (entities.RepositoryState, error) {
	s.InspectedDirs = append(s.InspectedDirs, dir)
	s.InspectedRemotes = append(s.InspectedRemotes, remoteName)
	return s.State, s.InspectErr
}
