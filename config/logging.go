package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// LoggingConfig controls the CLI logger
type LoggingConfig struct {
	Level string `hcl:"level,optional"` // trace, debug, info, warn, error, off
}

// Defaults fills in default values for unset fields
func (l *LoggingConfig) Defaults() {
	if l.Level == "" {
		l.Level = "warn"
	}
}

// Validate checks the level name
func (l *LoggingConfig) Validate() error {
	if hclog.LevelFromString(strings.TrimSpace(l.Level)) == hclog.NoLevel {
		return fmt.Errorf("invalid level '%s': must be one of trace, debug, info, warn, error, off", l.Level)
	}
	return nil
}

// HclogLevel returns the configured level
func (l *LoggingConfig) HclogLevel() hclog.Level {
	return hclog.LevelFromString(strings.TrimSpace(l.Level))
}
