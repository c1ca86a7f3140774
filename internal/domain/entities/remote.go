package entities

import "strings"

const (
	sshGitHubPrefix   = "git@github.com:"
	httpsGitHubPrefix = "https://github.com/"
	gitSuffix         = ".git"
)

// IsSSHRemote reports whether url uses the GitHub SSH form (git@github.com:owner/repo[.git]).
func IsSSHRemote(url string) bool {
	return strings.HasPrefix(url, sshGitHubPrefix)
}

// NormalizeRemoteURL rewrites a GitHub SSH remote to its HTTPS equivalent.
// Any other input, including HTTPS remotes and other hosts, is returned unchanged
// and the boolean is false. The rewrite never goes from HTTPS to SSH.
func NormalizeRemoteURL(url string) (string, bool) {
	if !IsSSHRemote(url) {
		return url, false
	}

	tail := strings.TrimPrefix(url, sshGitHubPrefix)
	tail = strings.TrimSuffix(tail, gitSuffix)
	return httpsGitHubPrefix + tail + gitSuffix, true
}
