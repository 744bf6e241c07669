package config

import (
	"io"

	"github.com/lgbarn/chessview-go/internal/movegen"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithDBPath sets the database file.
func (b *ConfigBuilder) WithDBPath(path string) *ConfigBuilder {
	b.cfg.Store.Path = path
	return b
}

// WithWorkers sets the analysis worker count.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Analysis.Workers = n
	return b
}

// WithDoublePush sets the pawn double-push rule.
func (b *ConfigBuilder) WithDoublePush(p movegen.DoublePushPolicy) *ConfigBuilder {
	b.cfg.Analysis.DoublePush = p
	return b
}

// WithPosition selects a FEN position and square.
func (b *ConfigBuilder) WithPosition(fen, square string) *ConfigBuilder {
	b.cfg.View.FEN = fen
	b.cfg.View.Square = square
	return b
}

// WithPly selects the game position to view.
func (b *ConfigBuilder) WithPly(ply int) *ConfigBuilder {
	b.cfg.View.Ply = ply
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogOutput sets the log writer.
func (b *ConfigBuilder) WithLogOutput(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
