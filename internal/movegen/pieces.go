package movegen

import "github.com/lgbarn/chessview-go/internal/chess"

// offset is a (file, rank) step.
type offset struct {
	df, dr int
}

// Knight jumps: |df|+|dr| == 3, enumerated by df then dr from -2 to 2.
var knightOffsets = []offset{
	{-2, -1}, {-2, 1},
	{-1, -2}, {-1, 2},
	{1, -2}, {1, 2},
	{2, -1}, {2, 1},
}

// King steps, enumerated by df then dr from -1 to 1.
var kingOffsets = []offset{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

var diagonals = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

var orthogonals = []offset{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// acceptable reports whether mover may land on c: on the board and either
// empty or held by the other colour.
func acceptable(board *chess.Board, c chess.Coord, mover chess.Piece) bool {
	if !c.Valid() {
		return false
	}
	target := board.At(c)
	return target.IsEmpty() || mover.Opposes(target)
}

func jumps(board *chess.Board, at chess.Coord, mover chess.Piece, offsets []offset) []chess.Coord {
	var moves []chess.Coord
	for _, o := range offsets {
		c := at.Offset(o.df, o.dr)
		if acceptable(board, c, mover) {
			moves = append(moves, c)
		}
	}
	return moves
}

func knightMoves(board *chess.Board, at chess.Coord, mover chess.Piece) []chess.Coord {
	return jumps(board, at, mover, knightOffsets)
}

func kingMoves(board *chess.Board, at chess.Coord, mover chess.Piece) []chess.Coord {
	return jumps(board, at, mover, kingOffsets)
}

// slide ray-walks each direction, appending to moves. A ray ends at the
// board edge or at the first occupied square, which is included only when
// it holds an enemy piece.
func slide(board *chess.Board, at chess.Coord, mover chess.Piece, moves []chess.Coord, dirs []offset) []chess.Coord {
	for _, d := range dirs {
		for step := 1; step < chess.BoardSize; step++ {
			c := at.Offset(d.df*step, d.dr*step)
			if !c.Valid() {
				break
			}
			target := board.At(c)
			if target.IsEmpty() {
				moves = append(moves, c)
				continue
			}
			if mover.Opposes(target) {
				moves = append(moves, c)
			}
			break
		}
	}
	return moves
}

func startRank(colour chess.Colour) int {
	if colour == chess.White {
		return chess.WhitePawnRank
	}
	return chess.BlackPawnRank
}

// pawnMoves yields the single push, the double push, then the captures
// toward file+1 and file-1.
func (g *Generator) pawnMoves(board *chess.Board, at chess.Coord, mover chess.Piece) []chess.Coord {
	var moves []chess.Coord
	dir := mover.Colour().Forward()

	one := at.Offset(0, dir)
	oneEmpty := one.Valid() && board.At(one).IsEmpty()
	if oneEmpty {
		moves = append(moves, one)
	}

	if at.Rank == startRank(mover.Colour()) {
		two := at.Offset(0, 2*dir)
		switch g.doublePush {
		case DoublePushOriginRank:
			if acceptable(board, two, mover) {
				moves = append(moves, two)
			}
		default:
			if oneEmpty && two.Valid() && board.At(two).IsEmpty() {
				moves = append(moves, two)
			}
		}
	}

	for _, df := range []int{1, -1} {
		c := at.Offset(df, dir)
		if c.Valid() && mover.Opposes(board.At(c)) {
			moves = append(moves, c)
		}
	}
	return moves
}
