package testutil

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/lgbarn/chessview-go/internal/chess"
	"github.com/lgbarn/chessview-go/internal/engine"
)

// Sq parses an algebraic square name, panicking on bad input.
// Intended for test tables only.
func Sq(name string) chess.Coord {
	c, err := chess.ParseCoord(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Squares parses a list of algebraic square names.
func Squares(names ...string) []chess.Coord {
	coords := make([]chess.Coord, 0, len(names))
	for _, n := range names {
		coords = append(coords, Sq(n))
	}
	return coords
}

// MustBoard decodes a FEN placement, failing the test on error.
func MustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	b, err := engine.ParsePlacement(fen)
	if err != nil {
		t.Fatalf("bad test position %q: %v", fen, err)
	}
	return b
}

// BoardWith builds an otherwise empty board holding the given pieces.
func BoardWith(pieces map[string]chess.Piece) *chess.Board {
	b := chess.NewBoard()
	for sq, p := range pieces {
		b.Set(Sq(sq), p)
	}
	return b
}

// DumpBoard renders a board for failure messages: the placement string
// followed by a spew dump of the occupied slots.
func DumpBoard(b *chess.Board) string {
	occupied := make(map[string]string)
	for i, p := range b.Slots {
		if !p.IsEmpty() {
			occupied[chess.CoordFromIndex(i).String()] = p.String()
		}
	}
	cfg := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}
	return engine.Placement(b) + "\n" + cfg.Sdump(occupied)
}
