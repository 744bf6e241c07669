package worker

import (
	"context"

	"github.com/lgbarn/chessview-go/internal/game"
	"github.com/lgbarn/chessview-go/internal/movegen"
)

// MobilityFunc returns a ProcessFunc that computes the mobility profile of
// each game with gen.
func MobilityFunc(gen *movegen.Generator) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		profile, err := game.Mobility(item.Game, gen)
		return ProcessResult{
			Index:    item.Index,
			Game:     item.Game,
			Mobility: profile,
			Error:    err,
		}
	}
}

// Analyze runs processFunc over games on a pool built from opts and returns
// the results in input order. Cancelling ctx stops the pool; games that
// were not processed are reported with ctx.Err().
func Analyze(ctx context.Context, games []*game.Game, processFunc ProcessFunc, opts ...PoolOption) []ProcessResult {
	results := make([]ProcessResult, len(games))
	if len(games) == 0 {
		return results
	}
	done := make([]bool, len(games))

	pool := NewPoolWithOptions(processFunc, opts...)
	pool.Start()

	go func() {
		defer pool.Close()
		for i, g := range games {
			if err := pool.SubmitContext(ctx, WorkItem{Index: i, Game: g}); err != nil {
				pool.Stop()
				return
			}
		}
	}()

	// Results are only touched by this goroutine.
	for r := range pool.Results() {
		if ctx.Err() != nil {
			pool.Stop()
		}
		results[r.Index] = r
		done[r.Index] = true
	}

	for i, ok := range done {
		if !ok {
			results[i] = ProcessResult{Index: i, Game: games[i], Error: ctx.Err()}
		}
	}
	return results
}
