// Package movegen generates pseudo-legal destination squares for a single
// piece on a chess.Board.
//
// Moves respect board edges and occupancy only. Check safety, castling,
// en passant and promotion are not modelled. The generator keeps no state
// between calls and never modifies the board, so one Generator may be
// shared by any number of goroutines.
package movegen

import (
	"fmt"

	"github.com/lgbarn/chessview-go/internal/chess"
	"github.com/lgbarn/chessview-go/internal/errors"
)

// DoublePushPolicy selects how a pawn's two-square advance is validated.
type DoublePushPolicy int

const (
	// DoublePushStrict requires both the square passed over and the
	// destination to be empty.
	DoublePushStrict DoublePushPolicy = iota

	// DoublePushOriginRank only checks that the pawn stands on its
	// starting rank and that the destination is on the board and not
	// held by a friendly piece. The square passed over is not inspected
	// and the destination may hold an enemy piece.
	DoublePushOriginRank
)

// String returns the flag spelling of the policy.
func (p DoublePushPolicy) String() string {
	switch p {
	case DoublePushStrict:
		return "strict"
	case DoublePushOriginRank:
		return "origin"
	default:
		return fmt.Sprintf("DoublePushPolicy(%d)", int(p))
	}
}

// ParseDoublePushPolicy parses "strict" or "origin".
func ParseDoublePushPolicy(s string) (DoublePushPolicy, error) {
	switch s {
	case "strict", "":
		return DoublePushStrict, nil
	case "origin":
		return DoublePushOriginRank, nil
	default:
		return DoublePushStrict, fmt.Errorf("double push policy %q: %w", s, errors.ErrInvalidConfig)
	}
}

// Generator produces pseudo-legal moves.
type Generator struct {
	doublePush DoublePushPolicy
}

// Option configures a Generator.
type Option func(*Generator)

// WithDoublePush sets the pawn double-push policy.
func WithDoublePush(p DoublePushPolicy) Option {
	return func(g *Generator) {
		g.doublePush = p
	}
}

// New creates a Generator. The zero configuration uses DoublePushStrict.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// DoublePush returns the configured double-push policy.
func (g *Generator) DoublePush() DoublePushPolicy {
	return g.doublePush
}

var defaultGenerator = New()

// Generate returns the destinations of the piece at `at` using the default
// Generator.
func Generate(board *chess.Board, at chess.Coord) ([]chess.Coord, error) {
	return defaultGenerator.Generate(board, at)
}

// Generate returns the squares the piece at `at` can reach, in a fixed
// per-kind enumeration order. It fails with ErrMalformedBoard for a nil
// board and ErrInvalidCoordinate when `at` is off the board or empty.
func (g *Generator) Generate(board *chess.Board, at chess.Coord) ([]chess.Coord, error) {
	if board == nil {
		return nil, fmt.Errorf("nil board: %w", errors.ErrMalformedBoard)
	}
	if !at.Valid() {
		return nil, fmt.Errorf("square %s is off the board: %w", at, errors.ErrInvalidCoordinate)
	}
	piece := board.At(at)
	if piece.IsEmpty() {
		return nil, fmt.Errorf("square %s is empty: %w", at, errors.ErrInvalidCoordinate)
	}

	switch piece.Kind() {
	case chess.Pawn:
		return g.pawnMoves(board, at, piece), nil
	case chess.Knight:
		return knightMoves(board, at, piece), nil
	case chess.Bishop:
		return slide(board, at, piece, nil, diagonals), nil
	case chess.Rook:
		return slide(board, at, piece, nil, orthogonals), nil
	case chess.Queen:
		moves := slide(board, at, piece, nil, diagonals)
		return slide(board, at, piece, moves, orthogonals), nil
	case chess.King:
		return kingMoves(board, at, piece), nil
	default:
		return nil, fmt.Errorf("square %s holds unknown piece %d: %w", at, piece, errors.ErrInvalidCoordinate)
	}
}

// Targets returns the moves of every piece of the given colour, keyed by
// origin square.
func (g *Generator) Targets(board *chess.Board, colour chess.Colour) (map[chess.Coord][]chess.Coord, error) {
	if board == nil {
		return nil, fmt.Errorf("nil board: %w", errors.ErrMalformedBoard)
	}
	targets := make(map[chess.Coord][]chess.Coord)
	for _, from := range board.Pieces(colour) {
		moves, err := g.Generate(board, from)
		if err != nil {
			return nil, err
		}
		targets[from] = moves
	}
	return targets, nil
}

// Count returns the total number of moves available to one colour.
func (g *Generator) Count(board *chess.Board, colour chess.Colour) (int, error) {
	targets, err := g.Targets(board, colour)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, moves := range targets {
		n += len(moves)
	}
	return n, nil
}
