// Package config loads pyscan's CLI configuration file, following the
// same "small YAML file next to a directory of inputs" convention as
// sqlcode's cli/cmd/config.go.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk pyscan.yaml shape: per-project scanner tuning
// plus logging verbosity for the CLI.
type Config struct {
	TabWidth int    `yaml:"tabWidth"`
	LogLevel string `yaml:"logLevel"`
	// Paths lists source trees. It is read from pyscan.yaml, but no
	// command consults it: tokenize always takes exactly one file argument.
	Paths []string `yaml:"paths"`
}

// defaultConfig mirrors the scanner package's own defaults so a missing
// or minimal config file still behaves sensibly.
func defaultConfig() Config {
	return Config{TabWidth: 8, LogLevel: "info"}
}

// Load reads pyscan.yaml from dir, falling back to defaultConfig when the
// file does not exist. A malformed file is still an error.
func Load(dir string) (Config, error) {
	result := defaultConfig()

	path := filepath.Join(dir, "pyscan.yaml")
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return result, nil
	}
	if err != nil {
		return Config{}, err
	}

	if err := yaml.Unmarshal(data, &result); err != nil {
		return Config{}, err
	}
	return result, nil
}
