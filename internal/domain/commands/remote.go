package commands

import (
	"context"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitsync/internal/domain/entities"
)

// remoteURL returns the configured URL of the remote, or an empty string
// when the remote does not exist or cannot be queried.
func (it *gitSession) remoteURL(ctx context.Context) string {
	result := it.query(ctx, "remote", "get-url", it.settings.RemoteName)
	if !result.Succeeded() {
		return ""
	}
	return strings.TrimSpace(result.Output)
}

// ensureHTTPSRemote adds the expected remote when none exists, or rewrites a
// GitHub SSH remote to HTTPS. It performs at most one remote mutation.
func (it *gitSession) ensureHTTPSRemote(ctx context.Context) error {
	current := it.remoteURL(ctx)
	if current == "" {
		if it.settings.ExpectedRemote == "" {
			return nil
		}
		logger.Infof("🔗 Adding remote %s: %s", it.settings.RemoteName, it.settings.ExpectedRemote)
		return it.mustRun(ctx, "remote", "add", it.settings.RemoteName, it.settings.ExpectedRemote)
	}

	normalized, changed := entities.NormalizeRemoteURL(current)
	if !changed {
		return nil
	}
	logger.Infof("🔁 Switching remote %s from SSH to HTTPS: %s", it.settings.RemoteName, normalized)
	return it.mustRun(ctx, "remote", "set-url", it.settings.RemoteName, normalized)
}
