package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitsync/internal/domain/entities"
	"github.com/rios0rios0/gitsync/internal/domain/repositories"
)

// Push is the interface for the push command.
type Push interface {
	Execute(ctx context.Context, settings *entities.Settings, opts PushOptions) error
}

// PushOptions holds runtime options for a single push.
type PushOptions struct {
	WorkDir    string
	SystemName string
	Device     bool // strip device-only build properties and tag the commit with the system name
}

// PushCommand stages every change, commits it with a timestamped message and
// pushes the current branch.
type PushCommand struct {
	runner    repositories.CommandRunner
	workspace repositories.WorkspaceRepository
	clock     entities.Clock
}

// NewPushCommand creates a new PushCommand.
func NewPushCommand(
	runner repositories.CommandRunner,
	workspace repositories.WorkspaceRepository,
	clock entities.Clock,
) *PushCommand {
	return &PushCommand{runner: runner, workspace: workspace, clock: clock}
}

// Execute runs the push flow. Any returned *entities.ExitError carries the
// exit code the invocation must terminate with.
func (it *PushCommand) Execute(ctx context.Context, settings *entities.Settings, opts PushOptions) error {
	session := newGitSession(it.runner, settings, opts.WorkDir)
	if err := session.prepare(ctx); err != nil {
		return err
	}

	if opts.Device {
		if err := it.stripBuildProperties(opts.WorkDir, settings.BuildProperties); err != nil {
			return err
		}
	}

	status := session.query(ctx, "status", "--porcelain")
	if !status.Succeeded() {
		logger.Errorf("Failed to read the working tree status (exit status %d)", status.Code)
		return entities.NewExitError(status.Code)
	}
	if !hasLocalChanges(status.Output) {
		logger.Info("No changes to commit.")
		return nil
	}

	if err := session.mustRun(ctx, "add", "-A"); err != nil {
		return err
	}

	now := it.clock()
	systemTag := ""
	if opts.Device {
		systemTag = opts.SystemName
	}
	if err := session.commit(ctx, entities.CommitMessage(now, systemTag)); err != nil {
		return err
	}

	branch := session.currentBranch(ctx)
	push := session.run(ctx, "push", "-u", settings.RemoteName, branch)
	if !push.Succeeded() {
		session.logPushTips(ctx)
		return entities.NewExitError(push.Code)
	}

	logger.Infof("✅ Push completed successfully at %s", entities.FormatTimestamp(now))
	if opts.Device {
		logger.Infof("📡 Device: %s", opts.SystemName)
	}
	return nil
}

// stripBuildProperties drops device-only lines from the build properties file.
// The file is rewritten only when its content changes.
func (it *PushCommand) stripBuildProperties(workDir string, rule entities.BuildPropertiesRule) error {
	path := filepath.Join(workDir, rule.File)
	exists, err := it.workspace.Exists(path)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", rule.File, err)
	}
	if !exists {
		logger.Debugf("No %s found, nothing to strip", rule.File)
		return nil
	}

	content, err := it.workspace.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", rule.File, err)
	}

	stripped, changed := entities.StripPropertyLines(string(content), rule.Key)
	if !changed {
		return nil
	}
	if writeErr := it.workspace.WriteFile(path, []byte(stripped)); writeErr != nil {
		return fmt.Errorf("failed to write %s: %w", rule.File, writeErr)
	}

	logger.Infof("🧹 Removed %s from %s", rule.Key, rule.File)
	return nil
}

// commit tolerates the benign "nothing to commit" failure, but aborts when
// changes remain staged after a failed commit (for example a rejecting hook).
func (it *gitSession) commit(ctx context.Context, message string) error {
	result := it.run(ctx, "commit", "-m", message)
	if result.Succeeded() {
		return nil
	}

	staged := it.query(ctx, "diff", "--cached", "--name-only")
	if !staged.Succeeded() || !hasLocalChanges(staged.Output) {
		logger.Info("Nothing new to commit after staging, pushing existing commits.")
		return nil
	}

	logger.Errorf("❌ Commit failed (exit status %d) while changes are still staged:", result.Code)
	for _, file := range strings.Split(strings.TrimSpace(staged.Output), "\n") {
		logger.Errorf("  %s", file)
	}
	return entities.NewExitError(result.Code)
}

func (it *gitSession) logPushTips(ctx context.Context) {
	remote := it.remoteURL(ctx)
	if remote == "" {
		remote = it.settings.ExpectedRemote
	}
	if remote == "" {
		remote = "<no remote>"
	}

	logger.Error("❌ Push failed.")
	logger.Warn("Quick tips:")
	logger.Warnf("  • Make sure the HTTPS remote is correct: %s", remote)
	logger.Warn("  • On the first push git asks you to sign in. Use your username and a Personal Access Token.")
	logger.Warn("  • To set the remote explicitly:")
	logger.Warnf("      git remote set-url %s https://github.com/<owner>/<repo>.git", it.settings.RemoteName)
	logger.Warn("  • Create a token at GitHub → Settings → Developer settings → Personal access tokens")
}
