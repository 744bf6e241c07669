// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessview-go/internal/config"
	"github.com/lgbarn/chessview-go/internal/errors"
	"github.com/lgbarn/chessview-go/internal/movegen"
)

var (
	// Position selection
	fenFlag    = flag.String("fen", "", "Position to inspect (FEN, placement field alone is enough)")
	squareFlag = flag.String("square", "", "Square to preview moves for, e.g. g1")
	plyFlag    = flag.Int("ply", 0, "Game position to view (0 = start, -1 = final)")
	flipFlag   = flag.Bool("flip", false, "Draw boards from Black's side")

	// Output options
	jsonOutput = flag.Bool("json", false, "Output in JSON format")
	fullGames  = flag.Bool("full", false, "Include PGN text in game listings")

	// Analysis
	workers    = flag.Int("workers", 0, "Number of worker goroutines (0 = one per CPU)")
	doublePush = flag.String("double-push", "strict", "Pawn double push rule: strict or origin")

	// Database
	dbPath       = flag.String("db", config.DefaultDBPath, "SQLite database file (:memory: for a throwaway database)")
	playerFilter = flag.String("player", "", "List only games with this player (either colour)")
	limit        = flag.Int("limit", 0, "Maximum number of games to list (0 = no limit)")

	// Logging
	logFile   = flag.String("log", "", "Write log records to this file instead of stderr")
	logLevel  = flag.String("log-level", "warn", "Log level: trace, debug, info, warn, error, disabled")
	logJSON   = flag.Bool("log-json", false, "Write log records as JSON lines")
	verbosity = flag.Int("v", 1, "Verbosity: 0 quiet, 1 summaries, 2 progress")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applyViewFlags(cfg)
	applyOutputFlags(cfg)
	applyStoreFlags(cfg)
	applyLogFlags(cfg)
	return applyAnalysisFlags(cfg)
}

func applyViewFlags(cfg *config.Config) {
	cfg.View.FEN = *fenFlag
	cfg.View.Square = *squareFlag
	cfg.View.Ply = *plyFlag
}

func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.FullGames = *fullGames
	cfg.Output.Flip = *flipFlag
	cfg.Verbosity = *verbosity
}

func applyStoreFlags(cfg *config.Config) {
	cfg.Store.Path = *dbPath
	cfg.Store.Player = *playerFilter
	cfg.Store.Limit = *limit
}

func applyLogFlags(cfg *config.Config) {
	cfg.Log.Level = *logLevel
	cfg.Log.Console = !*logJSON
}

func applyAnalysisFlags(cfg *config.Config) error {
	if *workers > 0 {
		cfg.Analysis.Workers = *workers
	} else if *workers < 0 {
		return fmt.Errorf("-workers %d: %w", *workers, errors.ErrInvalidConfig)
	}
	policy, err := movegen.ParseDoublePushPolicy(*doublePush)
	if err != nil {
		return err
	}
	cfg.Analysis.DoublePush = policy
	return nil
}

// setupLogFile points cfg.LogFile at the -log file when one is given.
func setupLogFile(cfg *config.Config) (*os.File, error) {
	if *logFile == "" {
		return nil, nil
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: user-requested log file
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %s", *logFile)
	}
	cfg.LogFile = file
	return file, nil
}
