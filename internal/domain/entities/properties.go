package entities

import "strings"

const (
	defaultBuildPropertiesFile = "gradle.properties"
	defaultBuildPropertiesKey  = "android.aapt2FromMavenOverride"
)

// BuildPropertiesRule names a properties file and the key whose lines are
// stripped before pushing from a device.
type BuildPropertiesRule struct {
	File string `yaml:"file"`
	Key  string `yaml:"key"`
}

// DefaultBuildPropertiesRule returns the rule for the Android aapt2 override
// that only makes sense on the device where it was set.
func DefaultBuildPropertiesRule() BuildPropertiesRule {
	return BuildPropertiesRule{
		File: defaultBuildPropertiesFile,
		Key:  defaultBuildPropertiesKey,
	}
}

// StripPropertyLines removes every line that starts with key, ignoring leading
// whitespace. It returns the new content and whether anything was removed.
func StripPropertyLines(content, key string) (string, bool) {
	if key == "" {
		return content, false
	}

	lines := strings.SplitAfter(content, "\n")
	kept := make([]string, 0, len(lines))
	removed := false
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), key) {
			removed = true
			continue
		}
		kept = append(kept, line)
	}

	if !removed {
		return content, false
	}
	return strings.Join(kept, ""), true
}
