package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/gitsync/internal/domain/entities"
)

// RemoteEnvVar overrides the expected HTTPS remote.
const RemoteEnvVar = "GIT_REMOTE"

// Config is the on-disk configuration for gitsync. Every field is optional;
// empty values keep the built-in defaults.
type Config struct {
	Identity        entities.Identity            `yaml:"identity"`
	Remote          RemoteConfig                 `yaml:"remote"`
	Branch          BranchConfig                 `yaml:"branch"`
	Git             GitConfig                    `yaml:"git"`
	Stash           StashConfig                  `yaml:"stash"`
	BuildProperties entities.BuildPropertiesRule `yaml:"build_properties"`
}

// RemoteConfig describes the remote the flows synchronize with.
type RemoteConfig struct {
	Name     string `yaml:"name"`     // defaults to "origin"
	Expected string `yaml:"expected"` // HTTPS URL added when the remote is missing
}

// BranchConfig holds branch resolution settings.
type BranchConfig struct {
	Fallback string `yaml:"fallback"`
}

// GitConfig holds settings of the git executable.
type GitConfig struct {
	Binary string `yaml:"binary"`
}

// StashConfig holds settings of the automatic stash.
type StashConfig struct {
	Message string `yaml:"message"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Assemble builds the settings of one invocation: defaults, then the
// configuration file (explicit path or auto-detected), then the environment.
// An explicit path that cannot be loaded is an error; a missing auto-detected
// file is not.
func Assemble(path string, lookup func(string) string) (*entities.Settings, error) {
	settings := entities.DefaultSettings()

	cfgPath := path
	if cfgPath == "" {
		found, err := FindConfigFile()
		if err != nil {
			logger.Debugf("Using built-in settings: %v", err)
		}
		cfgPath = found
	}

	if cfgPath != "" {
		cfg, err := Load(cfgPath)
		if err != nil {
			return nil, err
		}
		cfg.apply(settings)
		logger.Debugf("Loaded settings from %q", cfgPath)
	}

	ApplyEnvironment(settings, lookup)
	return settings, nil
}

// Load reads and parses a configuration file, expanding environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg Config
	if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	for _, field := range []*string{
		&cfg.Identity.Name,
		&cfg.Identity.Email,
		&cfg.Remote.Name,
		&cfg.Remote.Expected,
		&cfg.Branch.Fallback,
		&cfg.Git.Binary,
		&cfg.Stash.Message,
		&cfg.BuildProperties.File,
		&cfg.BuildProperties.Key,
	} {
		*field = strings.TrimSpace(expandEnv(*field))
	}

	if validateErr := validate(&cfg); validateErr != nil {
		return nil, validateErr
	}

	return &cfg, nil
}

// ApplyEnvironment overlays environment overrides on settings.
func ApplyEnvironment(settings *entities.Settings, lookup func(string) string) {
	if lookup == nil {
		return
	}
	if remote := strings.TrimSpace(lookup(RemoteEnvVar)); remote != "" {
		settings.ExpectedRemote = remote
	}
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".gitsync.yaml",
		".gitsync.yml",
		"gitsync.yaml",
		"gitsync.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// apply copies every configured value onto settings.
func (c *Config) apply(settings *entities.Settings) {
	overlay := func(target *string, value string) {
		if value != "" {
			*target = value
		}
	}

	overlay(&settings.Identity.Name, c.Identity.Name)
	overlay(&settings.Identity.Email, c.Identity.Email)
	overlay(&settings.RemoteName, c.Remote.Name)
	overlay(&settings.ExpectedRemote, c.Remote.Expected)
	overlay(&settings.FallbackBranch, c.Branch.Fallback)
	overlay(&settings.GitBinary, c.Git.Binary)
	overlay(&settings.StashMessage, c.Stash.Message)
	overlay(&settings.BuildProperties.File, c.BuildProperties.File)
	overlay(&settings.BuildProperties.Key, c.BuildProperties.Key)
}

// expandEnv expands ${ENV_VAR} references, warning about unset variables.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// validate checks the values that would otherwise fail late inside git.
func validate(cfg *Config) error {
	if cfg.Remote.Expected != "" && entities.IsSSHRemote(cfg.Remote.Expected) {
		return fmt.Errorf("remote.expected must be an HTTPS URL, got %q", cfg.Remote.Expected)
	}
	if cfg.Identity.Email != "" && !strings.Contains(cfg.Identity.Email, "@") {
		return fmt.Errorf("identity.email %q is not an email address", cfg.Identity.Email)
	}
	if strings.ContainsAny(cfg.Remote.Name, " \t") {
		return fmt.Errorf("remote.name %q must not contain whitespace", cfg.Remote.Name)
	}
	return nil
}
