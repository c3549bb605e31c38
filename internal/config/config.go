// Package config handles triage configuration files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all triage configuration.
type Config struct {
	// Classification settings
	Classify ClassifyConfig `json:"classify" yaml:"classify"`

	// Output formatting
	Output OutputConfig `json:"output" yaml:"output"`

	// Logging
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// ClassifyConfig configures the record classifier.
type ClassifyConfig struct {
	// Strict discards inactive records entirely.
	Strict bool `json:"strict" yaml:"strict"`

	// FollowChains walks "next" links after classifying each record.
	FollowChains bool `json:"follow_chains" yaml:"follow_chains"`
}

// OutputConfig configures result output.
type OutputConfig struct {
	Separator string `json:"separator" yaml:"separator"` // list separator for warnings and summaries
	Pretty    bool   `json:"pretty" yaml:"pretty"`       // indent JSON output
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `json:"level" yaml:"level"`   // debug, info, warn, error
	Format string `json:"format" yaml:"format"` // json, console
	File   string `json:"file" yaml:"file"`     // empty = stderr
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Classify: ClassifyConfig{
			Strict:       false,
			FollowChains: true,
		},
		Output: OutputConfig{
			Separator: ", ",
			Pretty:    false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a JSON or YAML file, chosen by extension.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	return cfg, nil
}

// LoadRaw loads a JSON config document as an untyped mapping, for callers
// that need keys beyond the known schema.
func LoadRaw(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return raw, nil
}

// Save writes the configuration to a JSON file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
