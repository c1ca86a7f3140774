package entities

const (
	defaultIdentityName  = "mohamed-zaitoon"
	defaultIdentityEmail = "mohamedzaitoon01@gmail.com"
)

// Identity is the global git author identity applied when none is configured.
type Identity struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// DefaultIdentity returns the built-in identity.
func DefaultIdentity() Identity {
	return Identity{
		Name:  defaultIdentityName,
		Email: defaultIdentityEmail,
	}
}
