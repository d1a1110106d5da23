package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file name searched for when no explicit
// path is given.
const DefaultFile = "gdsc.yml"

// Load reads configuration from a file. If configPath is empty, it
// looks for gdsc.yml in the current directory and falls back to
// defaults when the file does not exist. An explicit path that cannot
// be read is an error.
func Load(configPath string) (*Config, error) {
	explicit := configPath != ""
	if !explicit {
		configPath = DefaultFile
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(configPath), err)
	}
	if cfg.Extension == "" {
		cfg.Extension = ".gd"
	}
	if cfg.Watch.DebounceMillis <= 0 {
		cfg.Watch.DebounceMillis = 100
	}
	return cfg, nil
}
