package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitsync/internal/domain/entities"
	"github.com/rios0rios0/gitsync/internal/domain/repositories"
)

// Status is the interface for the status command.
type Status interface {
	Execute(ctx context.Context, settings *entities.Settings, opts StatusOptions) error
}

// StatusOptions holds runtime options for the status command.
type StatusOptions struct {
	WorkDir    string
	SystemName string
}

// StatusCommand reports what the pull and push flows would act on, without
// running git or changing anything.
type StatusCommand struct {
	inspector repositories.RepositoryInspector
}

// NewStatusCommand creates a new StatusCommand.
func NewStatusCommand(inspector repositories.RepositoryInspector) *StatusCommand {
	return &StatusCommand{inspector: inspector}
}

// Execute inspects the working directory and logs a summary.
func (it *StatusCommand) Execute(ctx context.Context, settings *entities.Settings, opts StatusOptions) error {
	state, err := it.inspector.Inspect(ctx, opts.WorkDir, settings.RemoteName)
	if err != nil {
		return fmt.Errorf("failed to inspect repository: %w", err)
	}

	for _, line := range describeState(state, settings, opts.SystemName) {
		logger.Info(line)
	}
	return nil
}

func describeState(state entities.RepositoryState, settings *entities.Settings, systemName string) []string {
	branch := state.Branch
	if branch == "" {
		branch = settings.FallbackBranch + " (fallback)"
	}

	lines := []string{
		"📁 Repository: " + state.Root,
		"📦 Current branch: " + branch,
	}

	switch normalized, changed := entities.NormalizeRemoteURL(state.RemoteURL); {
	case state.RemoteURL == "" && settings.ExpectedRemote != "":
		lines = append(lines, fmt.Sprintf("🔗 Remote %s: <none>, would add %s",
			settings.RemoteName, settings.ExpectedRemote))
	case state.RemoteURL == "":
		lines = append(lines, fmt.Sprintf("🔗 Remote %s: <none>", settings.RemoteName))
	case changed:
		lines = append(lines, fmt.Sprintf("🔗 Remote %s: %s, would switch to %s",
			settings.RemoteName, state.RemoteURL, normalized))
	default:
		lines = append(lines, fmt.Sprintf("🔗 Remote %s: %s", settings.RemoteName, state.RemoteURL))
	}

	if state.Clean {
		lines = append(lines, "✨ Working tree clean")
	} else {
		lines = append(lines, "✏️ Working tree has local changes")
	}
	return append(lines, "🖥️ Detected system: "+systemName)
}
