package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chessview-go/internal/errors"
	"github.com/lgbarn/chessview-go/internal/movegen"
)

// AnalysisConfig holds settings for move generation and batch analysis.
type AnalysisConfig struct {
	Workers    int
	BufferSize int
	DoublePush movegen.DoublePushPolicy
}

// NewAnalysisConfig uses one worker per CPU and the strict double-push rule.
func NewAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		Workers:    runtime.NumCPU(),
		BufferSize: 100,
		DoublePush: movegen.DoublePushStrict,
	}
}

// Validate checks that the analysis configuration is valid.
func (a *AnalysisConfig) Validate() error {
	if a.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", a.Workers, errors.ErrInvalidConfig)
	}
	if a.BufferSize < 1 {
		return fmt.Errorf("buffer size must be at least 1, got %d: %w", a.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}

// Generator builds a move generator for this configuration.
func (a *AnalysisConfig) Generator() *movegen.Generator {
	return movegen.New(movegen.WithDoublePush(a.DoublePush))
}
