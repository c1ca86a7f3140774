package entities

const (
	defaultRemoteName     = "origin"
	defaultFallbackBranch = "main"
	defaultGitBinary      = "git"
	defaultStashMessage   = "Auto stash before pull"
)

// Settings is the typed configuration assembled once at startup and handed
// to the pull and push flows. The flows never read the process environment.
type Settings struct {
	Identity        Identity
	ExpectedRemote  string // HTTPS URL added as the remote when none exists yet
	RemoteName      string
	FallbackBranch  string
	GitBinary       string
	StashMessage    string
	BuildProperties BuildPropertiesRule
}

// DefaultSettings returns the settings used when no configuration file is found.
func DefaultSettings() *Settings {
	return &Settings{
		Identity:        DefaultIdentity(),
		RemoteName:      defaultRemoteName,
		FallbackBranch:  defaultFallbackBranch,
		GitBinary:       defaultGitBinary,
		StashMessage:    defaultStashMessage,
		BuildProperties: DefaultBuildPropertiesRule(),
	}
}
