package commands

import (
	"context"
	"strings"

	logger "github.com/sirupsen/logrus"
)

// ensureIdentity sets the global user.name and user.email when they are
// missing. Values that are already configured are never overwritten.
func (it *gitSession) ensureIdentity(ctx context.Context) error {
	name := it.query(ctx, "config", "--global", "user.name")
	email := it.query(ctx, "config", "--global", "user.email")

	if strings.TrimSpace(name.Output) == "" {
		logger.Debugf("No global user.name configured, using %q", it.settings.Identity.Name)
		if err := it.mustRun(ctx, "config", "--global", "user.name", it.settings.Identity.Name); err != nil {
			return err
		}
	}
	if strings.TrimSpace(email.Output) == "" {
		logger.Debugf("No global user.email configured, using %q", it.settings.Identity.Email)
		if err := it.mustRun(ctx, "config", "--global", "user.email", it.settings.Identity.Email); err != nil {
			return err
		}
	}
	return nil
}
