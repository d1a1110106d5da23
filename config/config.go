// Package config holds the gdsc tool configuration, loaded from an
// optional gdsc.yml next to the scripts being parsed. Everything has
// a sensible default; CLI flags override the file.
package config

import "time"

// Config is the complete gdsc configuration.
type Config struct {
	// Extension is the script extension directory mode looks for.
	Extension string `yaml:"extension"`
	// Exclude lists path segments to skip in directory mode, e.g.
	// "addons" or ".import".
	Exclude []string `yaml:"exclude"`
	// Watch holds watch-mode settings.
	Watch WatchConfig `yaml:"watch"`
}

// WatchConfig holds watch-mode settings.
type WatchConfig struct {
	// DebounceMillis collapses bursts of change events for the same
	// file into one re-parse.
	DebounceMillis int `yaml:"debounce_ms"`
}

// Debounce returns the debounce window as a duration.
func (w WatchConfig) Debounce() time.Duration {
	return time.Duration(w.DebounceMillis) * time.Millisecond
}

// Defaults returns a configuration with every field at its default.
func Defaults() *Config {
	return &Config{
		Extension: ".gd",
		Watch:     WatchConfig{DebounceMillis: 100},
	}
}
