package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessview-go/internal/game"
)

// Entry is a game plus the optional data produced around it.
type Entry struct {
	ID       string
	Game     *game.Game
	Mobility []game.PlyMobility
}

// GameWriter is the interface for writing games to output.
// Different implementations handle different output formats (text, JSON).
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(e Entry) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes one summary line per game, or the full PGN when
// Full is set.
type TextWriter struct {
	w    io.Writer
	Full bool
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, full bool) *TextWriter {
	return &TextWriter{w: w, Full: full}
}

// WriteGame writes the game summary.
func (tw *TextWriter) WriteGame(e Entry) error {
	line := e.Game.Title()
	if e.ID != "" {
		line = e.ID + "  " + line
	}
	line += fmt.Sprintf(", %d plies", e.Game.PlyCount())
	if n := len(e.Mobility); n > 0 {
		avgW, avgB := averageMobility(e.Mobility)
		line += fmt.Sprintf(", mobility %.1f/%.1f", avgW, avgB)
	}
	if _, err := fmt.Fprintln(tw.w, line); err != nil {
		return err
	}
	if tw.Full {
		_, err := fmt.Fprintf(tw.w, "%s\n\n", e.Game.PGN)
		return err
	}
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

func averageMobility(profile []game.PlyMobility) (white, black float64) {
	for _, p := range profile {
		white += float64(p.White)
		black += float64(p.Black)
	}
	n := float64(len(profile))
	return white / n, black / n
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	entries []Entry
	single  bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(e Entry) error {
	if jw.single {
		return WriteJSON(jw.w, GameToJSON(e))
	}
	jw.entries = append(jw.entries, e)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.entries) == 0 {
		return nil
	}

	out := &JSONOutput{Games: make([]*JSONGame, 0, len(jw.entries))}
	for _, e := range jw.entries {
		out.Games = append(out.Games, GameToJSON(e))
	}

	err := WriteJSON(jw.w, out)
	jw.entries = jw.entries[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
