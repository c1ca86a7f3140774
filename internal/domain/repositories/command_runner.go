package repositories

import (
	"context"

	"github.com/rios0rios0/gitsync/internal/domain/entities"
)

// CommandRunner is the only process boundary of the tool: every git
// invocation made by the flows goes through it.
type CommandRunner interface {
	// Run executes the request and returns the exit code with the merged output.
	// A non-nil error is always an *entities.ExitError, returned when a Check
	// request fails or cannot be started.
	Run(ctx context.Context, request entities.CommandRequest) (entities.CommandResult, error)
}
