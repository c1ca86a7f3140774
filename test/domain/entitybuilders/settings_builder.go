//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/gitsync/internal/domain/entities"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	settings entities.Settings
}

// NewSettingsBuilder creates a new settings builder starting from the defaults.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		settings:    *entities.DefaultSettings(),
	}
}

// WithIdentity sets the identity applied when none is configured.
func (b *SettingsBuilder) WithIdentity(name, email string) *SettingsBuilder {
	b.settings.Identity = entities.Identity{Name: name, Email: email}
	return b
}

// WithExpectedRemote sets the HTTPS URL added when no remote exists.
func (b *SettingsBuilder) WithExpectedRemote(url string) *SettingsBuilder {
	b.settings.ExpectedRemote = url
	return b
}

// WithRemoteName sets the remote name.
func (b *SettingsBuilder) WithRemoteName(name string) *SettingsBuilder {
	b.settings.RemoteName = name
	return b
}

// WithFallbackBranch sets the branch used when HEAD cannot be resolved.
func (b *SettingsBuilder) WithFallbackBranch(branch string) *SettingsBuilder {
	b.settings.FallbackBranch = branch
	return b
}

// WithBuildProperties sets the device-only properties rule.
func (b *SettingsBuilder) WithBuildProperties(file, key string) *SettingsBuilder {
	b.settings.BuildProperties = entities.BuildPropertiesRule{File: file, Key: key}
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	settings := b.settings
	return &settings
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.settings = *entities.DefaultSettings()
	return b
}

// Clone creates a copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		settings:    b.settings,
	}
}
