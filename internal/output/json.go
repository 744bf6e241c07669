package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessview-go/internal/chess"
	"github.com/lgbarn/chessview-go/internal/game"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID         string             `json:"id,omitempty"`
	Tags       map[string]string  `json:"tags"`
	SAN        []string           `json:"san,omitempty"`
	UCI        []string           `json:"uci,omitempty"`
	Result     string             `json:"result,omitempty"`
	PlyCount   int                `json:"plyCount"`
	InitialFEN string             `json:"initialFEN,omitempty"`
	FinalFEN   string             `json:"finalFEN,omitempty"`
	Mobility   []game.PlyMobility `json:"mobility,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// JSONMoves lists the destinations of one piece.
type JSONMoves struct {
	FEN   string   `json:"fen"`
	From  string   `json:"from"`
	Piece string   `json:"piece"`
	Moves []string `json:"moves"`
}

// GameToJSON converts an entry to JSON format.
func GameToJSON(e Entry) *JSONGame {
	g := e.Game
	jg := &JSONGame{
		ID:       e.ID,
		Tags:     make(map[string]string, len(g.Tags)),
		SAN:      g.SAN,
		UCI:      g.UCI,
		Result:   g.Result,
		PlyCount: g.PlyCount(),
		Mobility: e.Mobility,
	}
	for _, t := range g.Tags {
		jg.Tags[t.Name] = t.Value
	}
	if n := len(g.FENs); n > 0 {
		jg.InitialFEN = g.FENs[0]
		jg.FinalFEN = g.FENs[n-1]
	}
	return jg
}

// MovesToJSON builds the JSON form of a move preview.
func MovesToJSON(fen string, from chess.Coord, piece chess.Piece, moves []chess.Coord) *JSONMoves {
	jm := &JSONMoves{
		FEN:   fen,
		From:  from.String(),
		Piece: piece.String(),
		Moves: make([]string, 0, len(moves)),
	}
	for _, m := range moves {
		jm.Moves = append(jm.Moves, m.String())
	}
	return jm
}

// WriteJSON encodes v with two-space indentation.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
