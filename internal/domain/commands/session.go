package commands

import (
	"context"

	"github.com/rios0rios0/gitsync/internal/domain/entities"
	"github.com/rios0rios0/gitsync/internal/domain/repositories"
)

// gitSession binds a runner to one working directory and the settings of the
// current invocation. All helpers shared by the pull and push flows hang off it.
type gitSession struct {
	runner   repositories.CommandRunner
	settings *entities.Settings
	dir      string
}

func newGitSession(
	runner repositories.CommandRunner,
	settings *entities.Settings,
	dir string,
) *gitSession {
	return &gitSession{runner: runner, settings: settings, dir: dir}
}

// query runs a silent command whose failure is interpreted by the caller.
func (it *gitSession) query(ctx context.Context, args ...string) entities.CommandResult {
	// unchecked requests never produce an error, only a non-zero code
	result, _ := it.runner.Run(ctx, it.request(args, true, false))
	return result
}

// run runs a visible command whose failure is interpreted by the caller.
func (it *gitSession) run(ctx context.Context, args ...string) entities.CommandResult {
	result, _ := it.runner.Run(ctx, it.request(args, false, false))
	return result
}

// mustRun runs a visible command that terminates the invocation on failure.
func (it *gitSession) mustRun(ctx context.Context, args ...string) error {
	_, err := it.runner.Run(ctx, it.request(args, false, true))
	return err
}

func (it *gitSession) request(args []string, silent, check bool) entities.CommandRequest {
	return entities.CommandRequest{
		Binary: it.settings.GitBinary,
		Args:   args,
		Dir:    it.dir,
		Silent: silent,
		Check:  check,
	}
}

// prepare runs the steps shared by every mutating flow: trust the working
// directory, make sure an identity exists and normalize the remote.
func (it *gitSession) prepare(ctx context.Context) error {
	it.registerSafeDirectory(ctx)
	if err := it.ensureIdentity(ctx); err != nil {
		return err
	}
	return it.ensureHTTPSRemote(ctx)
}

// registerSafeDirectory is best-effort: older git versions reject the key.
func (it *gitSession) registerSafeDirectory(ctx context.Context) {
	if it.dir == "" {
		return
	}
	it.query(ctx, "config", "--global", "--add", "safe.directory", it.dir)
}
