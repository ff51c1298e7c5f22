package client

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the mobctl settings file, ~/.mobctl.yaml by default.
type Config struct {
	URL      string `yaml:"url"`
	Token    string `yaml:"token"`
	Timezone string `yaml:"timezone,omitempty"`
}

const DefaultURL = "http://localhost:8080"

// DefaultConfigPath is ~/.mobctl.yaml, or .mobctl.yaml when the home directory is unknown.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mobctl.yaml"
	}
	return filepath.Join(home, ".mobctl.yaml")
}

// LoadConfig reads path. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{URL: DefaultURL}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	return cfg, nil
}

// Save writes the config with 0600 permissions since it holds an access token.
func (c *Config) Save(path string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(path, b, 0o600)
}
