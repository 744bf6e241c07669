// Package game loads PGN games and exposes their positions ply by ply.
//
// Parsing and rule enforcement (SAN decoding, legality, castling, en passant,
// promotion) are delegated to github.com/notnil/chess. This package keeps
// only what the viewer needs: tags, the move list and the FEN of every
// position reached.
package game

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chessview-go/internal/chess"
	"github.com/lgbarn/chessview-go/internal/engine"
	"github.com/lgbarn/chessview-go/internal/errors"
)

// Game is a replayed game.
type Game struct {
	// Tags in the order they appeared (Event, Site, Date, ...).
	Tags []Tag

	// Moves in SAN and in UCI (e2e4) form, one entry per ply.
	SAN []string
	UCI []string

	// FENs[0] is the starting position, FENs[i] the position after ply i.
	FENs []string

	// Result is the PGN result token: "1-0", "0-1", "1/2-1/2" or "*".
	Result string

	// PGN is the game re-encoded by the notation library.
	PGN string
}

// Tag is a PGN tag pair.
type Tag struct {
	Name  string
	Value string
}

// Tag returns the value of the named tag, or "" when absent.
func (g *Game) Tag(name string) string {
	for _, t := range g.Tags {
		if t.Name == name {
			return t.Value
		}
	}
	return ""
}

// PlyCount returns the number of half-moves played.
func (g *Game) PlyCount() int {
	return len(g.SAN)
}

// Board decodes the position after ply plies.
func (g *Game) Board(ply int) (*chess.Board, error) {
	fen, err := g.FEN(ply)
	if err != nil {
		return nil, err
	}
	return engine.ParsePlacement(fen)
}

// FEN returns the FEN of the position after ply plies.
func (g *Game) FEN(ply int) (string, error) {
	if ply < 0 || ply >= len(g.FENs) {
		return "", fmt.Errorf("ply %d of %d: %w", ply, g.PlyCount(), errors.ErrPlyOutOfRange)
	}
	return g.FENs[ply], nil
}

// ToMove returns the side to move after ply plies.
func (g *Game) ToMove(ply int) (chess.Colour, error) {
	fen, err := g.FEN(ply)
	if err != nil {
		return chess.White, err
	}
	return engine.SideToMove(fen)
}

// Fingerprint identifies a game by its players, date and moves.
// Two imports of the same game share a fingerprint.
func (g *Game) Fingerprint() string {
	h := sha256.New()
	for _, name := range []string{"White", "Black", "Date"} {
		fmt.Fprintf(h, "%s=%s\n", name, g.Tag(name))
	}
	if len(g.FENs) > 0 {
		fmt.Fprintf(h, "start=%s\n", g.FENs[0])
	}
	io.WriteString(h, strings.Join(g.UCI, " ")) //nolint:errcheck // hash writes never fail
	return hex.EncodeToString(h.Sum(nil))
}

// Title returns a one-line description such as "Alice - Bob, 2024.01.01 (1-0)".
func (g *Game) Title() string {
	white, black := g.Tag("White"), g.Tag("Black")
	if white == "" {
		white = "?"
	}
	if black == "" {
		black = "?"
	}
	title := white + " - " + black
	if date := g.Tag("Date"); date != "" {
		title += ", " + date
	}
	return fmt.Sprintf("%s (%s)", title, g.Result)
}

// Parse decodes a single PGN game. Input with neither tags nor moves is
// not a game.
func Parse(pgn string) (*Game, error) {
	opt, err := nchess.PGN(strings.NewReader(pgn))
	if err != nil {
		return nil, &errors.GameError{Err: fmt.Errorf("%v: %w", err, errors.ErrParseFailure), GameNum: 1}
	}
	lg := nchess.NewGame(opt)
	if isBlank(lg) {
		return nil, &errors.GameError{Err: fmt.Errorf("no tags or moves: %w", errors.ErrParseFailure), GameNum: 1}
	}
	return fromLibrary(lg), nil
}

// ReadAll decodes every game in r. It stops at the first game that fails
// to parse; games decoded before it are returned along with the error.
// Blank entries (text with neither tags nor moves) are skipped, so input
// holding no PGN at all yields no games.
func ReadAll(r io.Reader) ([]*Game, error) {
	scanner := nchess.NewScanner(r)
	var games []*Game
	for scanner.Scan() {
		lg := scanner.Next()
		if isBlank(lg) {
			continue
		}
		games = append(games, fromLibrary(lg))
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return games, &errors.GameError{
			Err:     fmt.Errorf("%v: %w", err, errors.ErrParseFailure),
			GameNum: len(games) + 1,
		}
	}
	return games, nil
}

func isBlank(lg *nchess.Game) bool {
	return len(lg.TagPairs()) == 0 && len(lg.Moves()) == 0
}

// FromFEN starts a game with no moves from the given position. A bare
// placement field is completed as White to move with no castling rights.
func FromFEN(fen string) (*Game, error) {
	if _, err := engine.ParsePlacement(fen); err != nil {
		return nil, err
	}
	fields := strings.Fields(fen)
	if len(fields) == 1 {
		fen = fields[0] + " w - - 0 1"
	}
	opt, err := nchess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}
	return fromLibrary(nchess.NewGame(opt)), nil
}

func fromLibrary(lg *nchess.Game) *Game {
	g := &Game{
		Result: string(lg.Outcome()),
		PGN:    lg.String(),
	}
	for _, tp := range lg.TagPairs() {
		g.Tags = append(g.Tags, Tag{Name: tp.Key, Value: tp.Value})
	}

	positions := lg.Positions()
	notation := nchess.AlgebraicNotation{}
	for i, m := range lg.Moves() {
		g.SAN = append(g.SAN, notation.Encode(positions[i], m))
		g.UCI = append(g.UCI, m.String())
	}
	for _, pos := range positions {
		g.FENs = append(g.FENs, pos.String())
	}
	return g
}
