package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// config holds the optional config-file settings. Command-line flags
// take precedence over every field.
type config struct {
	// Locale is the default locale identifier.
	Locale string `yaml:"locale" toml:"locale"`

	// Boundary is the default boundary kind for the boundaries command.
	Boundary string `yaml:"boundary" toml:"boundary"`

	// LogLevel is the default log level.
	LogLevel string `yaml:"log_level" toml:"log_level"`
}

// configNames are the files probed in the working directory when no
// --config flag is given.
var configNames = []string{".textspan.yaml", ".textspan.yml", ".textspan.toml"}

// findConfig returns the first config file present in the working
// directory, or "" when there is none.
func findConfig() string {
	for _, name := range configNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// loadConfig parses the file at path, choosing the format by extension.
func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c config
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, err
		}
	case ".toml":
		if err := toml.Unmarshal(data, &c); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	return &c, nil
}
