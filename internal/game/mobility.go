package game

import (
	"github.com/lgbarn/chessview-go/internal/chess"
	"github.com/lgbarn/chessview-go/internal/errors"
	"github.com/lgbarn/chessview-go/internal/movegen"
)

// PlyMobility holds the pseudo-legal move counts of both sides in one
// position.
type PlyMobility struct {
	Ply   int `json:"ply"`
	White int `json:"white"`
	Black int `json:"black"`
}

// Mobility computes the move counts of every position in g, starting
// with the initial position.
func Mobility(g *Game, gen *movegen.Generator) ([]PlyMobility, error) {
	profile := make([]PlyMobility, 0, len(g.FENs))
	for ply := range g.FENs {
		fail := func(err error) error {
			gameErr := &errors.GameError{Err: err, PlyNum: ply}
			if ply > 0 && ply <= len(g.SAN) {
				gameErr.MoveText = g.SAN[ply-1]
			}
			return gameErr
		}
		board, err := g.Board(ply)
		if err != nil {
			return nil, fail(err)
		}
		white, err := gen.Count(board, chess.White)
		if err != nil {
			return nil, fail(err)
		}
		black, err := gen.Count(board, chess.Black)
		if err != nil {
			return nil, fail(err)
		}
		profile = append(profile, PlyMobility{Ply: ply, White: white, Black: black})
	}
	return profile, nil
}
