// Package logging builds the program's zerolog logger from configuration.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessview-go/internal/config"
)

// New returns a logger writing to cfg.LogFile at cfg.Log.Level. Verbosity
// above 1 lowers the level to at least debug.
func New(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}
	if cfg.Verbosity > 1 && level > zerolog.DebugLevel && level != zerolog.Disabled {
		level = zerolog.DebugLevel
	}

	var w io.Writer = cfg.LogFile
	if cfg.Log.Console {
		w = zerolog.ConsoleWriter{Out: cfg.LogFile, TimeFormat: time.TimeOnly, NoColor: true}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Str("app", "chessview").Logger()
}
