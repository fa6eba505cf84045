package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// LoggingConfig selects the zerolog level and output encoding.
type LoggingConfig struct {
	// Level is any zerolog level name: trace, debug, info, warn, error, disabled.
	Level string `json:"level"`
	// Format is "json" for machine output or "console" for humans.
	Format string `json:"format"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "json"
	}
}

// Validate checks mandatory fields.
func (c LoggingConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("unknown level %q", c.Level)
	}
	if c.Format != "json" && c.Format != "console" {
		return fmt.Errorf("unknown format %q", c.Format)
	}
	return nil
}
