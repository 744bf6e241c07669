package config

import (
	"fmt"

	"github.com/lgbarn/chessview-go/internal/errors"
)

// ViewConfig selects the position and square a command looks at.
type ViewConfig struct {
	// FEN is a position to inspect instead of a game
	FEN string

	// Square is the selected square in algebraic form, e.g. "g1"
	Square string

	// Ply is the position within a game; -1 means the final position
	Ply int
}

// NewViewConfig creates a ViewConfig that shows the start of a game.
func NewViewConfig() *ViewConfig {
	return &ViewConfig{}
}

// Validate checks the ply bound.
func (v *ViewConfig) Validate() error {
	if v.Ply < -1 {
		return fmt.Errorf("ply %d: %w", v.Ply, errors.ErrInvalidConfig)
	}
	return nil
}
