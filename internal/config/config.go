// Package config loads and merges .prosegauge.yml presentation settings.
// Only rendering and input selection are configurable; the analysis
// thresholds are fixed.
package config

import "fmt"

// Config is the top-level configuration.
type Config struct {
	// Format selects the default output format: "text" or "json".
	Format string `yaml:"format"`
	// Color enables ANSI colors in text output.
	Color *bool `yaml:"color"`
	// Quiet suppresses non-essential output.
	Quiet *bool `yaml:"quiet"`
	// Ignore lists glob patterns skipped while walking directories.
	Ignore []string `yaml:"ignore"`
	// Sources lists doublestar patterns used to discover passage files
	// when analyze is invoked without arguments.
	Sources []string `yaml:"sources"`
}

// Validate checks field values that have a closed vocabulary.
func (c *Config) Validate() error {
	switch c.Format {
	case "", "text", "json":
		return nil
	default:
		return fmt.Errorf("unknown format %q (supported: text, json)", c.Format)
	}
}

// ColorEnabled returns the color setting, defaulting to true.
func (c *Config) ColorEnabled() bool {
	if c.Color == nil {
		return true
	}
	return *c.Color
}

// QuietEnabled returns the quiet setting, defaulting to false.
func (c *Config) QuietEnabled() bool {
	if c.Quiet == nil {
		return false
	}
	return *c.Quiet
}
