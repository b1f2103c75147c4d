// Package config handles agent-travaux configuration loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the settings the agent reads at startup. Everything else
// (model, iteration budget, mission) arrives through flags.
type Config struct {
	Anthropic AnthropicConfig `yaml:"anthropic"`
	LogLevel  string          `yaml:"log_level"`
}

// AnthropicConfig defines the completion service credentials.
type AnthropicConfig struct {
	APIKey string `yaml:"api_key"`
}

// DefaultSearchPaths returns the config file search order.
// An explicit path (from -config flag) is checked first.
// Then: ./config.yaml, ~/.config/agent-travaux/config.yaml,
// /etc/agent-travaux/config.yaml.
func DefaultSearchPaths() []string {
	paths := []string{"config.yaml"}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "agent-travaux", "config.yaml"))
	}

	paths = append(paths, "/etc/agent-travaux/config.yaml")
	return paths
}

// Load reads configuration from a YAML file. If explicit is non-empty, the
// file must exist. Otherwise the default search paths are tried in order,
// and when none exists the zero config is returned without error: the API
// key may arrive through the environment instead of a file.
func Load(explicit string) (*Config, error) {
	path := explicit
	if path == "" {
		for _, p := range DefaultSearchPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
		if path == "" {
			return &Config{}, nil
		}
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// ResolveAPIKey returns the completion service credential. The
// ANTHROPIC_API_KEY environment variable takes precedence over the file.
func (c *Config) ResolveAPIKey() string {
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		return k
	}
	return c.Anthropic.APIKey
}
