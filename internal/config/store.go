package config

import (
	"fmt"

	"github.com/lgbarn/chessview-go/internal/errors"
)

// DefaultDBPath is used when no -db flag is given.
const DefaultDBPath = "chessview.db"

// StoreConfig holds settings for the game database.
type StoreConfig struct {
	// Path is the SQLite file; ":memory:" keeps the database in memory
	Path string

	// Player filters list results by either colour
	Player string

	// Limit caps list results; 0 means no limit
	Limit int
}

// NewStoreConfig creates a StoreConfig with default values.
func NewStoreConfig() *StoreConfig {
	return &StoreConfig{Path: DefaultDBPath}
}

// Validate checks that the store configuration is valid.
func (s *StoreConfig) Validate() error {
	if s.Path == "" {
		return fmt.Errorf("empty database path: %w", errors.ErrInvalidConfig)
	}
	if s.Limit < 0 {
		return fmt.Errorf("limit %d: %w", s.Limit, errors.ErrInvalidConfig)
	}
	return nil
}
