package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chessview-go/internal/chess"
	cverrors "github.com/lgbarn/chessview-go/internal/errors"
)

// Failure paths cannot be exercised without mocking *testing.T, so these
// tests cover the passing cases and the message formatter.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, []chess.Coord{{File: 1, Rank: 2}}, []chess.Coord{{File: 1, Rank: 2}})
	AssertEqual(t, 42, 42, "value should be %d", 42)
}

func TestAssertSameElements_Success(t *testing.T) {
	AssertSameElements(t, Squares("a1", "b2", "c3"), Squares("c3", "a1", "b2"))
	AssertSameElements(t, []chess.Coord{}, nil)
}

func TestAssertErrorIs_Success(t *testing.T) {
	AssertNoError(t, nil)
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", cverrors.ErrInvalidCoordinate), cverrors.ErrInvalidCoordinate)
}

func TestAssertContains_Success(t *testing.T) {
	AssertContains(t, "hello world", "world")
	AssertTrue(t, len("hello") == 5)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"hello %s", "world"}, "hello world"},
		{"format multiple", []interface{}{"%s %d %s", "test", 42, "end"}, "test 42 end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestBoardHelpers(t *testing.T) {
	b := BoardWith(map[string]chess.Piece{"e1": chess.W(chess.King), "e8": chess.B(chess.King)})
	AssertEqual(t, b.Count(), 2)
	AssertEqual(t, b.At(Sq("e8")), chess.B(chess.King))

	dump := DumpBoard(b)
	AssertContains(t, dump, "4k3/8/8/8/8/8/8/4K3")
	AssertContains(t, dump, "White King")

	m := MustBoard(t, "8/8/8/8/8/8/8/4K3")
	AssertEqual(t, m.At(Sq("e1")), chess.W(chess.King))
}
