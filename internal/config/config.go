// Package config loads and provides tcvt's configuration.
//
// On first run, a default YAML config is written to ~/.tcvtrc.yaml.
// Subsequent runs read and merge that file with built-in defaults, the same
// shape the teacher's internal/config/config.go uses for its own settings.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all user-configurable settings.
type Config struct {
	// NumColumns is the default pane count for the Columns grid (CLI -c
	// overrides this per invocation).
	NumColumns int `yaml:"num_columns"`

	// DefaultShell overrides $SHELL as the child to run when no argv is
	// given on the command line.
	DefaultShell string `yaml:"default_shell"`

	// Devel mirrors TCVT_DEVEL: parser and keymap errors become hard
	// failures instead of being silently absorbed. An environment variable
	// of the same name, if set, always wins over this field.
	Devel bool `yaml:"devel"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		NumColumns:   2,
		DefaultShell: "",
		Devel:        false,
	}
}

// configPath returns the path to ~/.tcvtrc.yaml.
func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tcvtrc.yaml")
}

// Load reads the config file, falling back to defaults for missing fields,
// and writing the defaults to disk the first time there is no file to read.
func Load() Config {
	cfg := DefaultConfig()

	if p := configPath(); p != "" {
		data, err := os.ReadFile(p)
		if err != nil {
			writeDefaults(p, cfg)
		} else {
			_ = yaml.Unmarshal(data, &cfg)
			if cfg.NumColumns < 1 {
				cfg.NumColumns = 1
			}
		}
	}

	if os.Getenv("TCVT_DEVEL") != "" {
		cfg.Devel = true
	}

	return cfg
}

// writeDefaults persists the default configuration to disk.
func writeDefaults(path string, cfg Config) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return
	}
	header := []byte("# tcvt configuration\n# Edit this file to customise defaults.\n\n")
	_ = os.WriteFile(path, append(header, data...), 0644)
}
