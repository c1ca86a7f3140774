package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitsync/internal/domain/entities"
	"github.com/rios0rios0/gitsync/internal/domain/repositories"
)

// Pull is the interface for the pull command.
type Pull interface {
	Execute(ctx context.Context, settings *entities.Settings, opts PullOptions) error
}

// PullOptions holds runtime options for a single pull.
type PullOptions struct {
	WorkDir    string
	SystemName string
}

// PullCommand stashes local edits, fetches, rebases the current branch on its
// remote counterpart and restores the stash.
type PullCommand struct {
	runner repositories.CommandRunner
	clock  entities.Clock
}

// NewPullCommand creates a new PullCommand.
func NewPullCommand(runner repositories.CommandRunner, clock entities.Clock) *PullCommand {
	return &PullCommand{runner: runner, clock: clock}
}

// Execute runs the pull flow. Any returned *entities.ExitError carries the
// exit code the invocation must terminate with.
func (it *PullCommand) Execute(ctx context.Context, settings *entities.Settings, opts PullOptions) error {
	session := newGitSession(it.runner, settings, opts.WorkDir)
	if err := session.prepare(ctx); err != nil {
		return err
	}

	logger.Infof("🖥️ Detected system: %s", opts.SystemName)
	logger.Info("🔄 Checking for local changes...")
	status := session.query(ctx, "status", "--porcelain")
	stashed := hasLocalChanges(status.Output)

	if stashed {
		logger.Info("💾 Stashing local uncommitted changes...")
		if err := session.mustRun(ctx, session.stashArgs(ctx)...); err != nil {
			return err
		}
	}

	logger.Info("🌍 Fetching latest changes from remote...")
	if err := session.mustRun(ctx, "fetch", "--all"); err != nil {
		return err
	}

	branch := session.currentBranch(ctx)
	logger.Infof("📦 Current branch: %s", branch)

	// the rebase is the one step whose failure the user is expected to resolve,
	// so it bypasses Check to print tailored guidance
	logger.Info("⬇️ Pulling latest changes with rebase...")
	pull := session.run(ctx, "pull", "--rebase", settings.RemoteName, branch)
	if !pull.Succeeded() {
		logger.Error("❌ Pull (rebase) failed.")
		logger.Warn("Try resolving conflicts manually, then run:")
		logger.Warn("  git rebase --continue")
		if stashed {
			logger.Warnf("Your local changes are still stashed as %q; restore them with: git stash pop",
				settings.StashMessage)
		}
		return entities.NewExitError(pull.Code)
	}

	if stashed {
		logger.Info("♻️ Restoring stashed local changes...")
		pop := session.run(ctx, "stash", "pop")
		if !pop.Succeeded() {
			logger.Warn("⚠️ Conflicts occurred while restoring local changes.")
			logger.Warn("Please resolve them manually and commit your fixes.")
			return entities.NewExitError(1)
		}
	}

	logger.Infof("✅ Pull (with rebase) completed successfully at %s", entities.FormatTimestamp(it.clock()))
	logger.Infof("📡 Device: %s", opts.SystemName)
	return nil
}

// stashArgs picks the stash verb supported by the installed git.
func (it *gitSession) stashArgs(ctx context.Context) []string {
	version := ""
	if result := it.query(ctx, "--version"); result.Succeeded() {
		version = entities.ParseGitVersion(result.Output)
	}
	logger.Debugf("Detected git version: %q", version)
	return entities.StashArgs(version, it.settings.StashMessage)
}
