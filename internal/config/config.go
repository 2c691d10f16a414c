// Package config loads the settings of the puzzle runner.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the config file looked for in the working
// directory.
const FileName = ".aoc2023.yaml"

// Config holds the runner configuration.
type Config struct {
	// InputDir is where <day>.input files are read from. Relative paths
	// are relative to the directory of the solver source. Empty means
	// "input" next to the solver source.
	InputDir string `yaml:"input_dir,omitempty"`

	// SessionFile holds the adventofcode.com session cookie used when
	// Fetch is set.
	SessionFile string `yaml:"session_file,omitempty"`

	// Fetch downloads inputs that are missing from InputDir.
	Fetch bool `yaml:"fetch,omitempty"`

	// Debug turns on debug logging.
	Debug bool `yaml:"debug,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	cfg := &Config{}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.SessionFile = filepath.Join(home, "keys", "aoc.session")
	}
	return cfg
}

// Load loads the configuration at path on top of the defaults.
// It returns the defaults if the file doesn't exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
