package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
)

const (
	configFileName  = "config.json"
	configDirName   = "icetool"
	logFileName     = "icetool.log"
	sessionFileName = "session.toml"
)

// FeatureRegistry defines all known feature flags and their defaults.
var FeatureRegistry = map[string]FeatureDefinition{
	"tui": {
		Name:        "tui",
		Description: "Full-screen Bubble Tea terminal UI",
		Default:     true,
	},
	"session": {
		Name:        "session",
		Description: "Restore the active tab and list positions between runs",
		Default:     true,
	},
}

// FeatureDefinition describes a feature flag.
type FeatureDefinition struct {
	Name        string
	Description string
	Default     bool
}

// Settings holds the plain configuration values.
type Settings struct {
	ScriptsDir  string `json:"scripts_dir,omitempty"`
	LogFile     string `json:"log_file,omitempty"`
	LogLevel    string `json:"log_level,omitempty"`
	SessionFile string `json:"session_file,omitempty"`
}

// Config holds icetool local settings.
type Config struct {
	path     string
	raw      map[string]json.RawMessage
	features map[string]bool
	settings Settings
}

// Load reads the config from the default path.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom reads the config from the given path.
//
// If path is empty, it defaults to ~/.config/icetool/config.json.
// If the file does not exist, a Config with default values is returned.
// Comments and trailing commas are accepted.
func LoadFrom(path string) (*Config, error) {
	resolved := strings.TrimSpace(path)
	if resolved == "" {
		resolved = defaultConfigPath()
	}

	cfg := &Config{
		path:     resolved,
		raw:      make(map[string]json.RawMessage),
		features: make(map[string]bool),
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return nil, fmt.Errorf("read config file %q: %w", resolved, err)
	}

	data = jsonc.ToJSON(data)

	if err := json.Unmarshal(data, &cfg.raw); err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", resolved, err)
	}

	featuresRaw, ok := cfg.raw["features"]
	if ok {
		var featMap map[string]bool
		if err := json.Unmarshal(featuresRaw, &featMap); err != nil {
			return nil, fmt.Errorf("parse features in config file %q: %w", resolved, err)
		}

		for k, v := range featMap {
			cfg.features[k] = v
		}
	}

	if err := json.Unmarshal(data, &cfg.settings); err != nil {
		return nil, fmt.Errorf("parse settings in config file %q: %w", resolved, err)
	}

	return cfg, nil
}

// Path returns the config file location.
func (c *Config) Path() string {
	if c == nil {
		return ""
	}

	return c.path
}

// IsFeatureEnabled returns whether a feature flag is enabled.
//
// If the feature has not been explicitly set, the registry default is used.
// Unknown feature names always return false.
func (c *Config) IsFeatureEnabled(name string) bool {
	trimmed := strings.TrimSpace(name)

	if c != nil {
		if val, ok := c.features[trimmed]; ok {
			return val
		}
	}

	if def, ok := FeatureRegistry[trimmed]; ok {
		return def.Default
	}

	return false
}

// SetFeature sets a feature flag value and persists the config.
func (c *Config) SetFeature(name string, enabled bool) error {
	if c == nil {
		return errors.New("config is nil")
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errors.New("feature name is required")
	}

	if _, ok := FeatureRegistry[trimmed]; !ok {
		return fmt.Errorf("unknown feature %q", trimmed)
	}

	c.features[trimmed] = enabled

	return c.save()
}

// Features returns a sorted list of all known features with their status.
func (c *Config) Features() []FeatureStatus {
	result := make([]FeatureStatus, 0, len(FeatureRegistry))

	for _, def := range FeatureRegistry {
		result = append(result, FeatureStatus{
			Name:        def.Name,
			Description: def.Description,
			Enabled:     c.IsFeatureEnabled(def.Name),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// FeatureStatus describes the current state of a feature flag.
type FeatureStatus struct {
	Name        string
	Description string
	Enabled     bool
}

// ScriptsDir returns the extra scripts directory, if any.
func (c *Config) ScriptsDir() string {
	if c == nil {
		return ""
	}

	return strings.TrimSpace(c.settings.ScriptsDir)
}

// LogLevel returns the configured log level name.
func (c *Config) LogLevel() string {
	if c == nil {
		return ""
	}

	return strings.TrimSpace(c.settings.LogLevel)
}

// LogFile returns the log file path, defaulting next to the config file.
func (c *Config) LogFile() string {
	if c != nil {
		if path := strings.TrimSpace(c.settings.LogFile); path != "" {
			return path
		}

		if c.path != "" {
			return filepath.Join(filepath.Dir(c.path), logFileName)
		}
	}

	return filepath.Join(filepath.Dir(defaultConfigPath()), logFileName)
}

// SessionFile returns the session file path, defaulting next to the config
// file.
func (c *Config) SessionFile() string {
	if c != nil {
		if path := strings.TrimSpace(c.settings.SessionFile); path != "" {
			return path
		}

		if c.path != "" {
			return filepath.Join(filepath.Dir(c.path), sessionFileName)
		}
	}

	return filepath.Join(filepath.Dir(defaultConfigPath()), sessionFileName)
}

func (c *Config) save() error {
	configDir := filepath.Dir(c.path)
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return fmt.Errorf("create config directory %q: %w", configDir, err)
	}

	featuresJSON, err := json.Marshal(c.features)
	if err != nil {
		return fmt.Errorf("marshal features: %w", err)
	}

	c.raw["features"] = featuresJSON

	data, err := json.MarshalIndent(c.raw, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	data = append(data, '\n')

	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write config file %q: %w", c.path, err)
	}

	return nil
}

func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", configDirName, configFileName)
	}

	return filepath.Join(homeDir, ".config", configDirName, configFileName)
}
