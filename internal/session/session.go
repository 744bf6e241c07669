// Package session holds the state of a game being viewed: the current ply,
// the decoded board and the square the user has selected.
package session

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessview-go/internal/chess"
	"github.com/lgbarn/chessview-go/internal/game"
	"github.com/lgbarn/chessview-go/internal/movegen"
	"github.com/lgbarn/chessview-go/internal/output"
)

// Session is a cursor over one game. It is not safe for concurrent use.
type Session struct {
	game  *game.Game
	gen   *movegen.Generator
	log   zerolog.Logger
	ply   int
	board *chess.Board

	selected *chess.Coord
	targets  []chess.Coord
	flip     bool
}

// New opens a session on g positioned at the starting position.
func New(g *game.Game, gen *movegen.Generator, log zerolog.Logger) (*Session, error) {
	s := &Session{game: g, gen: gen, log: log}
	if err := s.Seek(0); err != nil {
		return nil, err
	}
	return s, nil
}

// Game returns the game being viewed.
func (s *Session) Game() *game.Game {
	return s.game
}

// Ply returns the current ply.
func (s *Session) Ply() int {
	return s.ply
}

// Board returns the current position. Callers must not modify it.
func (s *Session) Board() *chess.Board {
	return s.board
}

// Seek moves to the position after ply plies and clears the selection.
func (s *Session) Seek(ply int) error {
	board, err := s.game.Board(ply)
	if err != nil {
		return err
	}
	s.ply = ply
	s.board = board
	s.Clear()
	s.log.Debug().Int("ply", ply).Msg("seek")
	return nil
}

// Next advances one ply. It reports false at the end of the game.
func (s *Session) Next() bool {
	if s.ply >= s.game.PlyCount() {
		return false
	}
	return s.Seek(s.ply+1) == nil
}

// Prev steps back one ply. It reports false at the start of the game.
func (s *Session) Prev() bool {
	if s.ply == 0 {
		return false
	}
	return s.Seek(s.ply-1) == nil
}

// Select marks the piece at c and returns its destinations. Selecting an
// empty or off-board square fails and leaves the previous selection intact.
func (s *Session) Select(c chess.Coord) ([]chess.Coord, error) {
	targets, err := s.gen.Generate(s.board, c)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", c, err)
	}
	sel := c
	s.selected = &sel
	s.targets = targets
	s.log.Debug().
		Int("ply", s.ply).
		Str("square", c.String()).
		Str("piece", s.board.At(c).String()).
		Int("targets", len(targets)).
		Msg("select")
	return targets, nil
}

// Selected returns the selected square and its destinations.
func (s *Session) Selected() (chess.Coord, []chess.Coord, bool) {
	if s.selected == nil {
		return chess.Coord{}, nil, false
	}
	return *s.selected, s.targets, true
}

// Clear drops the selection.
func (s *Session) Clear() {
	s.selected = nil
	s.targets = nil
}

// SetFlip draws later renders from Black's side.
func (s *Session) SetFlip(flip bool) {
	s.flip = flip
}

// Render draws the current position with the selection highlighted.
func (s *Session) Render(w io.Writer) error {
	opts := output.BoardOptions{Targets: s.targets, Flip: s.flip}
	if s.selected != nil {
		opts.Selected = s.selected
	}
	if err := output.RenderBoard(w, s.board, opts); err != nil {
		return err
	}
	last := "start"
	if s.ply > 0 {
		last = s.game.SAN[s.ply-1]
	}
	toMove, err := s.game.ToMove(s.ply)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "ply %d/%d (%s), %s to move\n", s.ply, s.game.PlyCount(), last, toMove)
	return err
}
