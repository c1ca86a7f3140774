package commands

import (
	"context"
	"strings"
)

// currentBranch returns the abbreviated HEAD name or the configured fallback.
// The fallback is not checked for existence.
func (it *gitSession) currentBranch(ctx context.Context) string {
	result := it.query(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if branch := strings.TrimSpace(result.Output); result.Succeeded() && branch != "" {
		return branch
	}
	return it.settings.FallbackBranch
}

// hasLocalChanges reports whether "status --porcelain" lists anything.
func hasLocalChanges(output string) bool {
	return strings.TrimSpace(output) != ""
}
