// Package config holds the program configuration for chessview.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	// Verbosity: 0 quiet, 1 summaries, 2 per-game progress.
	Verbosity int

	Output   *OutputConfig
	View     *ViewConfig
	Analysis *AnalysisConfig
	Store    *StoreConfig
	Log      *LogConfig

	// OutputFile receives command output; LogFile receives log records.
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		View:       NewViewConfig(),
		Analysis:   NewAnalysisConfig(),
		Store:      NewStoreConfig(),
		Log:        NewLogConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the command output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every sub-config and returns the first problem found.
func (c *Config) Validate() error {
	validators := []interface{ Validate() error }{c.View, c.Analysis, c.Store, c.Log}
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}
