package repositories

import (
	"context"

	"github.com/rios0rios0/gitsync/internal/domain/entities"
)

// RepositoryInspector reads the state of a checkout without invoking git or mutating anything.
type RepositoryInspector interface {
	Inspect(ctx context.Context, dir, remoteName string) (entities.RepositoryState, error)
}
