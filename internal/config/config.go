// Package config handles YAML configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eduardolat/shortclass/internal/alphabet"
	"github.com/eduardolat/shortclass/internal/registry"
	"github.com/eduardolat/shortclass/internal/sequence"
)

const (
	// DefaultOutputPath is the default manifest path
	DefaultOutputPath = "shortclass.yaml"
)

// Config represents the complete application configuration
type Config struct {
	Alphabet           *string `yaml:"alphabet"`
	DisallowedLeading  *string `yaml:"disallowed_leading"`
	Prefix             string  `yaml:"prefix"`
	Suffix             string  `yaml:"suffix"`
	RandomPrefixLength int     `yaml:"random_prefix_length"`
	LastID             string  `yaml:"last_id"`
}

// GetAlphabet returns the token alphabet (default: alphabet.Default)
func (c Config) GetAlphabet() string {
	if c.Alphabet == nil {
		return alphabet.Default
	}
	return *c.Alphabet
}

// GetDisallowedLeading returns the characters that may not start a token (default: digits)
func (c Config) GetDisallowedLeading() string {
	if c.DisallowedLeading == nil {
		return alphabet.DefaultDisallowed
	}
	return *c.DisallowedLeading
}

// HasRandomPrefix returns true if a random prefix should be generated per run
func (c Config) HasRandomPrefix() bool {
	return c.RandomPrefixLength > 0
}

// Default returns a configuration with every default applied
func Default() *Config {
	return &Config{}
}

// Load reads and parses a configuration file.
// An empty path returns the default configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse parses YAML configuration data
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	a, err := alphabet.New(c.GetAlphabet(), c.GetDisallowedLeading())
	if err != nil {
		return fmt.Errorf("config: invalid alphabet: %w", err)
	}

	if c.RandomPrefixLength < 0 {
		return errors.New("config: random_prefix_length cannot be negative")
	}

	if c.Prefix != "" && c.HasRandomPrefix() {
		return errors.New("config: prefix and random_prefix_length cannot be combined")
	}

	if _, err := sequence.Resume(a, c.LastID); err != nil {
		return fmt.Errorf("config: invalid last_id %q: %w", c.LastID, err)
	}

	return nil
}

// RegistryOptions converts the configuration into registry options.
// prefix overrides the configured prefix when non-empty.
func (c *Config) RegistryOptions(prefix string) registry.Options {
	if prefix == "" {
		prefix = c.Prefix
	}

	return registry.Options{
		Alphabet:          c.GetAlphabet(),
		DisallowedLeading: c.GetDisallowedLeading(),
		Prefix:            prefix,
		Suffix:            c.Suffix,
		LastID:            c.LastID,
	}
}
