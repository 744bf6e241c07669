// Package chess provides the board model shared by the viewer packages.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the rank step of a pawn of this colour:
// +1 for White, -1 for Black.
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// Kind represents a chess piece type without colour.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Constants for board dimensions.
const (
	BoardSize = 8
	NumSlots  = BoardSize * BoardSize

	// Starting ranks of the pawns, 0-based.
	WhitePawnRank = 1
	BlackPawnRank = 6
)

// colourBit marks a dark piece. The two colours of one kind
// therefore differ by a fixed offset of 8.
const colourBit = 1 << 3

const kindMask = colourBit - 1

// Piece is a coloured piece occupying a slot. The zero value is NoPiece.
type Piece uint8

// NoPiece marks an empty slot.
const NoPiece Piece = 0

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind Kind) Piece {
	if kind <= NoKind || kind >= NumKinds {
		return NoPiece
	}
	p := Piece(kind)
	if colour == Black {
		p |= colourBit
	}
	return p
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// IsEmpty reports whether p is NoPiece.
func (p Piece) IsEmpty() bool {
	return p.Kind() == NoKind
}

// Kind extracts the piece type.
func (p Piece) Kind() Kind {
	return Kind(p & kindMask)
}

// Colour extracts the colour. It is meaningless for NoPiece.
func (p Piece) Colour() Colour {
	if p&colourBit != 0 {
		return Black
	}
	return White
}

// Opposes reports whether p and other are both pieces of different colours.
func (p Piece) Opposes(other Piece) bool {
	return !p.IsEmpty() && !other.IsEmpty() && p.Colour() != other.Colour()
}

// Letter returns the board-description letter: uppercase for White,
// lowercase for Black, '.' for an empty slot.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Kind().Letter()
	if p.Colour() == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns a readable name such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return fmt.Sprintf("%s %s", p.Colour(), p.Kind())
}

// PieceFromLetter converts a board-description letter to a piece.
// The second result is false for unknown letters.
func PieceFromLetter(c byte) (Piece, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	var kind Kind
	switch c {
	case 'P':
		kind = Pawn
	case 'N':
		kind = Knight
	case 'B':
		kind = Bishop
	case 'R':
		kind = Rook
	case 'Q':
		kind = Queen
	case 'K':
		kind = King
	default:
		return NoPiece, false
	}
	return MakePiece(colour, kind), true
}
