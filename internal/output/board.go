// Package output renders boards and writes games as text or JSON.
package output

import (
	"bufio"
	"io"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessview-go/internal/chess"
)

// BoardOptions controls RenderBoard.
type BoardOptions struct {
	// Selected is drawn in brackets, e.g. [N].
	Selected *chess.Coord

	// Targets are marked with * when empty and in parentheses when occupied.
	Targets []chess.Coord

	// Flip draws the board from Black's side.
	Flip bool
}

const (
	boardBorder = "  +------------------------+\n"
	filesWhite  = "    a  b  c  d  e  f  g  h\n"
	filesBlack  = "    h  g  f  e  d  c  b  a\n"
)

// RenderBoard draws a text diagram of the board, rank 8 at the top unless
// Flip is set.
func RenderBoard(w io.Writer, board *chess.Board, opts BoardOptions) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(boardBorder) //nolint:errcheck // checked by Flush
	for row := 0; row < chess.BoardSize; row++ {
		rank := chess.BoardSize - 1 - row
		if opts.Flip {
			rank = row
		}
		bw.WriteByte(byte('1' + rank)) //nolint:errcheck // checked by Flush
		bw.WriteString(" |")           //nolint:errcheck // checked by Flush
		for col := 0; col < chess.BoardSize; col++ {
			file := col
			if opts.Flip {
				file = chess.BoardSize - 1 - col
			}
			c := chess.Coord{File: file, Rank: rank}
			bw.WriteString(cell(board.At(c), c, opts)) //nolint:errcheck // checked by Flush
		}
		bw.WriteString("|\n") //nolint:errcheck // checked by Flush
	}
	bw.WriteString(boardBorder) //nolint:errcheck // checked by Flush
	if opts.Flip {
		bw.WriteString(filesBlack) //nolint:errcheck // checked by Flush
	} else {
		bw.WriteString(filesWhite) //nolint:errcheck // checked by Flush
	}
	return bw.Flush()
}

func cell(p chess.Piece, c chess.Coord, opts BoardOptions) string {
	letter := string(p.Letter())
	switch {
	case opts.Selected != nil && *opts.Selected == c:
		return "[" + letter + "]"
	case slices.Contains(opts.Targets, c):
		if p.IsEmpty() {
			return " * "
		}
		return "(" + letter + ")"
	default:
		return " " + letter + " "
	}
}
