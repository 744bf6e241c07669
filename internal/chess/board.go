package chess

import (
	"fmt"

	"github.com/lgbarn/chessview-go/internal/errors"
)

// Coord addresses a square by 0-based file (a=0) and rank (1=0).
type Coord struct {
	File int
	Rank int
}

// Valid reports whether the coordinate lies on the board.
func (c Coord) Valid() bool {
	return c.File >= 0 && c.File < BoardSize && c.Rank >= 0 && c.Rank < BoardSize
}

// Index returns the slot index of c: file + 8*(7-rank).
// Rank 7 maps to slots 0-7 and rank 0 to slots 56-63.
func (c Coord) Index() int {
	return c.File + BoardSize*(BoardSize-1-c.Rank)
}

// Offset returns c shifted by (df, dr). The result may be off the board.
func (c Coord) Offset(df, dr int) Coord {
	return Coord{File: c.File + df, Rank: c.Rank + dr}
}

// String returns the algebraic name of the square, e.g. "e4".
func (c Coord) String() string {
	if !c.Valid() {
		return fmt.Sprintf("(%d,%d)", c.File, c.Rank)
	}
	return string([]byte{byte('a' + c.File), byte('1' + c.Rank)})
}

// CoordFromIndex is the inverse of Coord.Index.
func CoordFromIndex(i int) Coord {
	return Coord{File: i % BoardSize, Rank: BoardSize - 1 - i/BoardSize}
}

// ParseCoord parses an algebraic square name such as "e2".
func ParseCoord(s string) (Coord, error) {
	if len(s) != 2 {
		return Coord{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidCoordinate)
	}
	c := Coord{File: int(s[0]) - 'a', Rank: int(s[1]) - '1'}
	if s[0] >= 'A' && s[0] <= 'H' {
		c.File = int(s[0]) - 'A'
	}
	if !c.Valid() {
		return Coord{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidCoordinate)
	}
	return c, nil
}

// Board is a flat 64-slot board. See Coord.Index for the slot layout.
type Board struct {
	Slots [NumSlots]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// BoardFromSlots builds a board from a caller-supplied slot sequence,
// which must hold exactly 64 entries.
func BoardFromSlots(slots []Piece) (*Board, error) {
	if len(slots) != NumSlots {
		return nil, fmt.Errorf("board has %d slots, want %d: %w", len(slots), NumSlots, errors.ErrMalformedBoard)
	}
	b := &Board{}
	copy(b.Slots[:], slots)
	return b, nil
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Set(Coord{file, 0}, W(backRank[file]))
		b.Set(Coord{file, WhitePawnRank}, W(Pawn))
		b.Set(Coord{file, BlackPawnRank}, B(Pawn))
		b.Set(Coord{file, BoardSize - 1}, B(backRank[file]))
	}
}

// Clear empties every slot.
func (b *Board) Clear() {
	b.Slots = [NumSlots]Piece{}
}

// At returns the piece at c, or NoPiece when c is off the board.
func (b *Board) At(c Coord) Piece {
	if !c.Valid() {
		return NoPiece
	}
	return b.Slots[c.Index()]
}

// Set places a piece at c. Off-board coordinates are ignored.
func (b *Board) Set(c Coord, p Piece) {
	if c.Valid() {
		b.Slots[c.Index()] = p
	}
}

// Copy creates a copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Pieces returns the coordinates of all pieces of the given colour
// in slot order.
func (b *Board) Pieces(colour Colour) []Coord {
	var coords []Coord
	for i, p := range b.Slots {
		if !p.IsEmpty() && p.Colour() == colour {
			coords = append(coords, CoordFromIndex(i))
		}
	}
	return coords
}

// Count returns the number of non-empty slots.
func (b *Board) Count() int {
	n := 0
	for _, p := range b.Slots {
		if !p.IsEmpty() {
			n++
		}
	}
	return n
}
