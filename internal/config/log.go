package config

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessview-go/internal/errors"
)

// LogConfig holds settings for the structured logger.
type LogConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error, disabled
	Level string

	// Console writes human-readable lines instead of JSON
	Console bool
}

// NewLogConfig logs warnings and above to the console.
func NewLogConfig() *LogConfig {
	return &LogConfig{Level: "warn", Console: true}
}

// Validate checks the level name.
func (l *LogConfig) Validate() error {
	if _, err := zerolog.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	return nil
}
