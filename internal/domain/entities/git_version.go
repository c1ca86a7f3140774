package entities

import (
	"strings"

	"golang.org/x/mod/semver"
)

// minStashPushVersion is the first git release that understands "stash push".
const minStashPushVersion = "v2.13.0"

// ParseGitVersion extracts a canonical semantic version from "git --version"
// output such as "git version 2.39.2 (Apple Git-143)" or "git version 2.45.1.windows.1".
// It returns an empty string when no version can be found.
func ParseGitVersion(output string) string {
	fields := strings.Fields(output)
	for i, field := range fields {
		if field != "version" || i+1 >= len(fields) {
			continue
		}
		parts := strings.SplitN(fields[i+1], ".", 4) //nolint:mnd // major.minor.patch[.vendor]
		if len(parts) > 3 {                           //nolint:mnd // drop vendor suffixes
			parts = parts[:3]
		}
		candidate := "v" + strings.Join(parts, ".")
		if semver.IsValid(candidate) {
			return semver.Canonical(candidate)
		}
	}
	return ""
}

// StashArgs returns the arguments that stash all local changes, including
// untracked files. Unknown versions fall back to the legacy "stash save" form.
func StashArgs(version, message string) []string {
	if version != "" && semver.Compare(version, minStashPushVersion) >= 0 {
		return []string{"stash", "push", "--include-untracked", "-m", message}
	}
	return []string{"stash", "save", "--include-untracked", message}
}
