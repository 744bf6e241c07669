// Package engine decodes and encodes board-description strings.
package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessview-go/internal/chess"
	"github.com/lgbarn/chessview-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// InitialPlacement is the piece-placement field of InitialFEN.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ParsePlacement decodes the piece-placement field of a FEN string into a
// board. A complete FEN may be passed; fields after the first are ignored.
//
// Ranks run from 8 down to 1, separated by '/'. Digits 1-8 stand for runs of
// empty squares, uppercase letters for White and lowercase for Black.
func ParsePlacement(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}
	placement := parts[0]

	board := chess.NewBoard()
	slot := 0
	rankStart := 0
	ranks := 1

	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			if slot-rankStart != chess.BoardSize {
				return nil, rankWidthError(placement, i, slot-rankStart)
			}
			ranks++
			rankStart = slot
		case c >= '1' && c <= '8':
			slot += int(c - '0')
		default:
			piece, ok := chess.PieceFromLetter(c)
			if !ok {
				return nil, &errors.ParseError{
					Err:      errors.ErrInvalidFEN,
					Input:    placement,
					Column:   i + 1,
					Expected: "piece letter, digit 1-8 or '/'",
					Got:      fmt.Sprintf("%q", c),
				}
			}
			if slot < chess.NumSlots {
				board.Slots[slot] = piece
			}
			slot++
		}
		if slot > chess.NumSlots {
			return nil, &errors.ParseError{
				Err:    errors.ErrMalformedBoard,
				Input:  placement,
				Column: i + 1,
				Got:    "more than 64 squares",
			}
		}
	}

	if slot-rankStart != chess.BoardSize {
		return nil, rankWidthError(placement, len(placement), slot-rankStart)
	}
	if ranks != chess.BoardSize {
		return nil, &errors.ParseError{
			Err:      errors.ErrMalformedBoard,
			Input:    placement,
			Expected: "8 ranks",
			Got:      fmt.Sprintf("%d", ranks),
		}
	}
	return board, nil
}

func rankWidthError(placement string, col, width int) error {
	return &errors.ParseError{
		Err:      errors.ErrMalformedBoard,
		Input:    placement,
		Column:   col,
		Expected: "8 squares in rank",
		Got:      fmt.Sprintf("%d", width),
	}
}

// SideToMove returns the colour named by the second FEN field.
// A placement-only string defaults to White.
func SideToMove(fen string) (chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// Placement encodes the board as a FEN piece-placement field.
func Placement(board *chess.Board) string {
	var sb strings.Builder

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.At(chess.Coord{File: file, Rank: rank})
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}
