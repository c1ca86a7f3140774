package commands

import (
	"context"

	"github.com/rios0rios0/gitsync/internal/domain/entities"
	"github.com/rios0rios0/gitsync/internal/domain/repositories"
)

// DescribeState exports describeState for testing.
var DescribeState = describeState //nolint:gochecknoglobals // test export

// EnsureIdentity runs the identity step in isolation for testing.
func EnsureIdentity(ctx context.Context, runner repositories.CommandRunner, settings *entities.Settings) error {
	return newGitSession(runner, settings, "").ensureIdentity(ctx)
}

// EnsureHTTPSRemote runs the remote normalization step in isolation for testing.
func EnsureHTTPSRemote(ctx context.Context, runner repositories.CommandRunner, settings *entities.Settings) error {
	return newGitSession(runner, settings, "").ensureHTTPSRemote(ctx)
}

// CurrentBranch runs the branch resolution step in isolation for testing.
func CurrentBranch(ctx context.Context, runner repositories.CommandRunner, settings *entities.Settings) string {
	return newGitSession(runner, settings, "").currentBranch(ctx)
}
