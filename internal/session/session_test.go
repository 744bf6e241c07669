package session

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessview-go/internal/chess"
	"github.com/lgbarn/chessview-go/internal/engine"
	cverrors "github.com/lgbarn/chessview-go/internal/errors"
	"github.com/lgbarn/chessview-go/internal/game"
	"github.com/lgbarn/chessview-go/internal/movegen"
	"github.com/lgbarn/chessview-go/internal/testutil"
)

func newSession(t *testing.T, pgn string) *Session {
	t.Helper()
	g, err := game.Parse(pgn)
	testutil.AssertNoError(t, err)
	s, err := New(g, movegen.New(), zerolog.Nop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func TestSession_Navigation(t *testing.T) {
	s := newSession(t, testutil.FoolsMatePGN)

	testutil.AssertEqual(t, s.Ply(), 0)
	testutil.AssertEqual(t, engine.Placement(s.Board()), engine.InitialPlacement)
	testutil.AssertTrue(t, !s.Prev(), "Prev at start should fail")

	steps := 0
	for s.Next() {
		steps++
	}
	testutil.AssertEqual(t, steps, 4)
	testutil.AssertEqual(t, s.Ply(), 4)
	testutil.AssertEqual(t, s.Board().At(testutil.Sq("h4")), chess.B(chess.Queen))

	testutil.AssertTrue(t, s.Prev())
	testutil.AssertEqual(t, s.Ply(), 3)

	testutil.AssertErrorIs(t, s.Seek(9), cverrors.ErrPlyOutOfRange)
	testutil.AssertEqual(t, s.Ply(), 3, "failed Seek must not move the cursor")
}

func TestSession_Select(t *testing.T) {
	s := newSession(t, testutil.ScholarsMatePGN)

	targets, err := s.Select(testutil.Sq("g1"))
	testutil.AssertNoError(t, err)
	testutil.AssertSameElements(t, targets, testutil.Squares("f3", "h3"))

	sq, got, ok := s.Selected()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, sq, testutil.Sq("g1"))
	testutil.AssertEqual(t, got, targets)

	_, err = s.Select(testutil.Sq("e4"))
	testutil.AssertErrorIs(t, err, cverrors.ErrInvalidCoordinate)
	sq, _, ok = s.Selected()
	testutil.AssertTrue(t, ok, "failed select keeps the previous selection")
	testutil.AssertEqual(t, sq, testutil.Sq("g1"))

	testutil.AssertTrue(t, s.Next())
	_, _, ok = s.Selected()
	testutil.AssertTrue(t, !ok, "moving clears the selection")

	s.Seek(5) //nolint:errcheck // ply 5 exists
	targets, err = s.Select(testutil.Sq("h5"))
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, containsCoord(targets, testutil.Sq("f7")), "queen on h5 should reach f7")
	testutil.AssertTrue(t, containsCoord(targets, testutil.Sq("e5")), "queen on h5 should reach e5")
}

func TestSession_Render(t *testing.T) {
	s := newSession(t, testutil.ScholarsMatePGN)
	testutil.AssertTrue(t, s.Next())
	_, err := s.Select(testutil.Sq("e7"))
	testutil.AssertNoError(t, err)

	var buf bytes.Buffer
	testutil.AssertNoError(t, s.Render(&buf))

	out := buf.String()
	testutil.AssertContains(t, out, "[p]")
	testutil.AssertContains(t, out, "ply 1/7 (e4), Black to move")
	testutil.AssertContains(t, out, "6 | .  .  .  .  *  .  .  . |")
	testutil.AssertContains(t, out, "5 | .  .  .  .  *  .  .  . |")
}

func containsCoord(coords []chess.Coord, c chess.Coord) bool {
	for _, x := range coords {
		if x == c {
			return true
		}
	}
	return false
}

func TestSession_RenderFlipped(t *testing.T) {
	s := newSession(t, testutil.FoolsMatePGN)
	s.SetFlip(true)

	var buf bytes.Buffer
	testutil.AssertNoError(t, s.Render(&buf))

	out := buf.String()
	testutil.AssertContains(t, out, "    h  g  f  e  d  c  b  a")
	testutil.AssertContains(t, out, "1 | R  N  B  K  Q  B  N  R |")
	testutil.AssertContains(t, out, "ply 0/4 (start), White to move")
}
