package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/arc-language/datamodels/pkg/model"
)

// Config holds datamodels CLI defaults
type Config struct {
	DefaultModel string `yaml:"default_model"`
	Format       string `yaml:"format"`
	Bits         bool   `yaml:"bits"`
	Debug        bool   `yaml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		DefaultModel: model.LP64.String(),
		Format:       "text",
		Bits:         false,
		Debug:        false,
	}
}

// DefaultPath is where LoadConfig looks when no path is given
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "datamodels", "config.yaml"), nil
}

// LoadConfig loads configuration from file. Fields missing from the file keep
// their defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Model resolves DefaultModel against the closed set of data models
func (c *Config) Model() (model.DataModel, error) {
	return model.ParseDataModel(c.DefaultModel)
}

// Validate checks that the configured model is known
func (c *Config) Validate() error {
	if _, err := c.Model(); err != nil {
		return fmt.Errorf("invalid default_model: %w", err)
	}
	return nil
}
