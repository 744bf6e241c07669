package movegen

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/lgbarn/chessview-go/internal/chess"
	cverrors "github.com/lgbarn/chessview-go/internal/errors"
	"github.com/lgbarn/chessview-go/internal/testutil"
)

func TestGenerate_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]chess.Piece
		from   string
		want   []chess.Coord
	}{
		{
			name:   "rook in corner of empty board",
			pieces: map[string]chess.Piece{"a1": chess.W(chess.Rook)},
			from:   "a1",
			want: testutil.Squares(
				"a2", "a3", "a4", "a5", "a6", "a7", "a8",
				"b1", "c1", "d1", "e1", "f1", "g1", "h1",
			),
		},
		{
			name:   "knight on b1 of empty board",
			pieces: map[string]chess.Piece{"b1": chess.W(chess.Knight)},
			from:   "b1",
			want:   testutil.Squares("a3", "c3", "d2"),
		},
		{
			name: "king next to own pawn",
			pieces: map[string]chess.Piece{
				"e1": chess.W(chess.King),
				"e2": chess.W(chess.Pawn),
			},
			from: "e1",
			want: testutil.Squares("d1", "d2", "f1", "f2"),
		},
		{
			name:   "pawn on starting rank",
			pieces: map[string]chess.Piece{"d2": chess.W(chess.Pawn)},
			from:   "d2",
			want:   testutil.Squares("d3", "d4"),
		},
		{
			name:   "black pawn on starting rank moves down",
			pieces: map[string]chess.Piece{"c7": chess.B(chess.Pawn)},
			from:   "c7",
			want:   testutil.Squares("c6", "c5"),
		},
		{
			name:   "pawn off starting rank has single push only",
			pieces: map[string]chess.Piece{"d3": chess.W(chess.Pawn)},
			from:   "d3",
			want:   testutil.Squares("d4"),
		},
		{
			name: "pawn captures both ways, blocked ahead",
			pieces: map[string]chess.Piece{
				"e4": chess.W(chess.Pawn),
				"e5": chess.B(chess.Pawn),
				"d5": chess.B(chess.Knight),
				"f5": chess.B(chess.Bishop),
			},
			from: "e4",
			want: testutil.Squares("f5", "d5"),
		},
		{
			name: "pawn ignores friendly diagonal",
			pieces: map[string]chess.Piece{
				"e4": chess.W(chess.Pawn),
				"d5": chess.W(chess.Knight),
			},
			from: "e4",
			want: testutil.Squares("e5"),
		},
		{
			name:   "pawn on last rank has no moves",
			pieces: map[string]chess.Piece{"a8": chess.W(chess.Pawn)},
			from:   "a8",
			want:   nil,
		},
		{
			name: "bishop stops at blockers",
			pieces: map[string]chess.Piece{
				"c1": chess.W(chess.Bishop),
				"b2": chess.W(chess.Pawn),
				"e3": chess.B(chess.Pawn),
			},
			from: "c1",
			want: testutil.Squares("d2", "e3"),
		},
		{
			name: "queen from the centre",
			pieces: map[string]chess.Piece{
				"d4": chess.W(chess.Queen),
				"d6": chess.B(chess.Rook),
				"f4": chess.W(chess.Knight),
				"b2": chess.B(chess.Pawn),
			},
			from: "d4",
			want: testutil.Squares(
				// diagonals
				"c3", "b2",
				"c5", "b6", "a7",
				"e3", "f2", "g1",
				"e5", "f6", "g7", "h8",
				// orthogonals
				"d5", "d6",
				"d3", "d2", "d1",
				"e4",
				"c4", "b4", "a4",
			),
		},
		{
			name:   "king in the middle",
			pieces: map[string]chess.Piece{"e4": chess.B(chess.King)},
			from:   "e4",
			want:   testutil.Squares("d3", "d4", "d5", "e3", "e5", "f3", "f4", "f5"),
		},
		{
			name: "knight captures and avoids friends",
			pieces: map[string]chess.Piece{
				"g1": chess.W(chess.Knight),
				"f3": chess.W(chess.Pawn),
				"h3": chess.B(chess.Pawn),
				"e2": chess.B(chess.Queen),
			},
			from: "g1",
			want: testutil.Squares("e2", "h3"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.BoardWith(tt.pieces)
			got, err := Generate(board, testutil.Sq(tt.from))
			testutil.AssertNoError(t, err)
			testutil.AssertSameElements(t, got, tt.want, "moves from %s on\n%s", tt.from, testutil.DumpBoard(board))
		})
	}
}

func TestGenerate_Order(t *testing.T) {
	t.Run("knight", func(t *testing.T) {
		board := testutil.BoardWith(map[string]chess.Piece{"b1": chess.W(chess.Knight)})
		got, err := Generate(board, testutil.Sq("b1"))
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, testutil.Squares("a3", "c3", "d2"))
	})

	t.Run("queen diagonals before orthogonals", func(t *testing.T) {
		board := testutil.BoardWith(map[string]chess.Piece{
			"a1": chess.W(chess.Queen),
			"c3": chess.B(chess.Pawn),
			"a3": chess.W(chess.Pawn),
			"c1": chess.W(chess.Pawn),
		})
		got, err := Generate(board, testutil.Sq("a1"))
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, testutil.Squares("b2", "c3", "a2", "b1"))
	})

	t.Run("pawn push then captures", func(t *testing.T) {
		board := testutil.BoardWith(map[string]chess.Piece{
			"d2": chess.W(chess.Pawn),
			"c3": chess.B(chess.Pawn),
			"e3": chess.B(chess.Pawn),
		})
		got, err := Generate(board, testutil.Sq("d2"))
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, testutil.Squares("d3", "d4", "e3", "c3"))
	})
}

func TestGenerate_DoublePushPolicy(t *testing.T) {
	strict := New()
	origin := New(WithDoublePush(DoublePushOriginRank))

	tests := []struct {
		name       string
		pieces     map[string]chess.Piece
		from       string
		wantStrict []chess.Coord
		wantOrigin []chess.Coord
	}{
		{
			name: "intermediate square occupied",
			pieces: map[string]chess.Piece{
				"e2": chess.W(chess.Pawn),
				"e3": chess.B(chess.Knight),
			},
			from:       "e2",
			wantStrict: nil,
			wantOrigin: testutil.Squares("e4"),
		},
		{
			name: "enemy on destination",
			pieces: map[string]chess.Piece{
				"e7": chess.B(chess.Pawn),
				"e5": chess.W(chess.Bishop),
			},
			from:       "e7",
			wantStrict: testutil.Squares("e6"),
			wantOrigin: testutil.Squares("e6", "e5"),
		},
		{
			name: "friend on destination",
			pieces: map[string]chess.Piece{
				"a2": chess.W(chess.Pawn),
				"a4": chess.W(chess.Rook),
			},
			from:       "a2",
			wantStrict: testutil.Squares("a3"),
			wantOrigin: testutil.Squares("a3"),
		},
		{
			name:       "both empty",
			pieces:     map[string]chess.Piece{"h7": chess.B(chess.Pawn)},
			from:       "h7",
			wantStrict: testutil.Squares("h6", "h5"),
			wantOrigin: testutil.Squares("h6", "h5"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.BoardWith(tt.pieces)

			got, err := strict.Generate(board, testutil.Sq(tt.from))
			testutil.AssertNoError(t, err)
			testutil.AssertSameElements(t, got, tt.wantStrict, "strict")

			got, err = origin.Generate(board, testutil.Sq(tt.from))
			testutil.AssertNoError(t, err)
			testutil.AssertSameElements(t, got, tt.wantOrigin, "origin")
		})
	}
}

func TestGenerate_InvalidInput(t *testing.T) {
	board := testutil.BoardWith(map[string]chess.Piece{"e1": chess.W(chess.King)})

	tests := []struct {
		name  string
		board *chess.Board
		at    chess.Coord
		want  error
	}{
		{"nil board", nil, chess.Coord{File: 4, Rank: 0}, cverrors.ErrMalformedBoard},
		{"file too large", board, chess.Coord{File: 8, Rank: 0}, cverrors.ErrInvalidCoordinate},
		{"negative rank", board, chess.Coord{File: 0, Rank: -1}, cverrors.ErrInvalidCoordinate},
		{"empty square", board, chess.Coord{File: 3, Rank: 3}, cverrors.ErrInvalidCoordinate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moves, err := Generate(tt.board, tt.at)
			testutil.AssertErrorIs(t, err, tt.want)
			testutil.AssertTrue(t, moves == nil, "moves should be nil on error")
		})
	}
}

func TestGenerate_DoesNotModifyBoard(t *testing.T) {
	board := testutil.MustBoard(t, "rnbqkbnr/pppppppp/8/1KP5/8/P7/1PPPPPPP/RNBQKBNR")
	before := *board

	for i, p := range board.Slots {
		if p.IsEmpty() {
			continue
		}
		if _, err := Generate(board, chess.CoordFromIndex(i)); err != nil {
			t.Fatalf("Generate(%s) error = %v", chess.CoordFromIndex(i), err)
		}
	}

	testutil.AssertEqual(t, *board, before)
}

// propertyBoards returns a mix of real positions and seeded random boards.
func propertyBoards(t *testing.T) []*chess.Board {
	t.Helper()
	boards := []*chess.Board{
		testutil.MustBoard(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"),
		testutil.MustBoard(t, "rnbqkbnr/pppppppp/8/1KP5/8/P7/1PPPPPPP/RNBQKBNR"),
		testutil.MustBoard(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R"),
		testutil.MustBoard(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8"),
	}

	rng := rand.New(rand.NewSource(20240101))
	kinds := []chess.Kind{chess.Pawn, chess.Knight, chess.Bishop, chess.Rook, chess.Queen, chess.King}
	for i := 0; i < 200; i++ {
		b := chess.NewBoard()
		for slot := range b.Slots {
			if rng.Intn(3) != 0 {
				continue
			}
			colour := chess.White
			if rng.Intn(2) == 0 {
				colour = chess.Black
			}
			b.Slots[slot] = chess.MakePiece(colour, kinds[rng.Intn(len(kinds))])
		}
		boards = append(boards, b)
	}
	return boards
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func TestGenerate_Properties(t *testing.T) {
	for _, gen := range []*Generator{New(), New(WithDoublePush(DoublePushOriginRank))} {
		for bi, board := range propertyBoards(t) {
			for i, mover := range board.Slots {
				if mover.IsEmpty() {
					continue
				}
				from := chess.CoordFromIndex(i)
				moves, err := gen.Generate(board, from)
				if err != nil {
					t.Fatalf("board %d: Generate(%s) error = %v", bi, from, err)
				}

				seen := make(map[chess.Coord]bool)
				for _, to := range moves {
					if !to.Valid() {
						t.Fatalf("board %d: %s -> %v is off the board", bi, from, to)
					}
					target := board.At(to)
					if !target.IsEmpty() && target.Colour() == mover.Colour() {
						t.Fatalf("board %d: %s -> %s lands on own piece\n%s", bi, from, to, testutil.DumpBoard(board))
					}
					if seen[to] {
						t.Fatalf("board %d: %s -> %s generated twice", bi, from, to)
					}
					seen[to] = true

					df, dr := to.File-from.File, to.Rank-from.Rank
					switch mover.Kind() {
					case chess.Knight:
						if abs(df)+abs(dr) != 3 || abs(df) > 2 || abs(dr) > 2 {
							t.Fatalf("board %d: knight %s -> %s is not a knight jump", bi, from, to)
						}
					case chess.King:
						if abs(df) > 1 || abs(dr) > 1 {
							t.Fatalf("board %d: king %s -> %s is not a unit step", bi, from, to)
						}
					case chess.Pawn:
						if df != 0 && !mover.Opposes(target) {
							t.Fatalf("board %d: pawn %s -> %s moves diagonally without capture", bi, from, to)
						}
						if dr != mover.Colour().Forward() && dr != 2*mover.Colour().Forward() {
							t.Fatalf("board %d: pawn %s -> %s moves the wrong way", bi, from, to)
						}
					case chess.Bishop, chess.Rook, chess.Queen:
						sf, sr := sign(df), sign(dr)
						for c := from.Offset(sf, sr); c != to; c = c.Offset(sf, sr) {
							if !board.At(c).IsEmpty() {
								t.Fatalf("board %d: %s -> %s passes occupied %s\n%s", bi, from, to, c, testutil.DumpBoard(board))
							}
						}
					}
				}

				switch mover.Kind() {
				case chess.Knight:
					testutil.AssertTrue(t, len(moves) <= 8, "knight move count %d", len(moves))
					testutil.AssertEqual(t, len(moves), countAcceptable(board, from, mover, knightOffsets))
				case chess.King:
					testutil.AssertTrue(t, len(moves) <= 8, "king move count %d", len(moves))
					testutil.AssertEqual(t, len(moves), countAcceptable(board, from, mover, kingOffsets))
				}
			}
		}
	}
}

func countAcceptable(board *chess.Board, from chess.Coord, mover chess.Piece, offsets []offset) int {
	n := 0
	for _, o := range offsets {
		c := from.Offset(o.df, o.dr)
		if !c.Valid() {
			continue
		}
		if t := board.At(c); t.IsEmpty() || t.Colour() != mover.Colour() {
			n++
		}
	}
	return n
}

func TestGenerate_Concurrent(t *testing.T) {
	board := testutil.MustBoard(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R")
	gen := New()

	want := make(map[chess.Coord][]chess.Coord)
	for i, p := range board.Slots {
		if p.IsEmpty() {
			continue
		}
		c := chess.CoordFromIndex(i)
		moves, err := gen.Generate(board, c)
		testutil.AssertNoError(t, err)
		want[c] = moves
	}

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c, expected := range want {
				got, err := gen.Generate(board, c)
				if err != nil || len(got) != len(expected) {
					errs <- c.String()
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for sq := range errs {
		t.Errorf("concurrent Generate(%s) disagreed with sequential result", sq)
	}
}

func TestTargetsAndCount(t *testing.T) {
	board := testutil.MustBoard(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")
	gen := New()

	targets, err := gen.Targets(board, chess.White)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(targets), 16)
	testutil.AssertSameElements(t, targets[testutil.Sq("g1")], testutil.Squares("f3", "h3"))
	testutil.AssertEqual(t, len(targets[testutil.Sq("a1")]), 0)

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		n, err := gen.Count(board, colour)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, n, 20, "%s opening mobility", colour)
	}

	_, err = gen.Targets(nil, chess.White)
	testutil.AssertErrorIs(t, err, cverrors.ErrMalformedBoard)
}

func TestParseDoublePushPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    DoublePushPolicy
		wantErr bool
	}{
		{"strict", DoublePushStrict, false},
		{"", DoublePushStrict, false},
		{"origin", DoublePushOriginRank, false},
		{"sometimes", DoublePushStrict, true},
	}

	for _, tt := range tests {
		got, err := ParseDoublePushPolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDoublePushPolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDoublePushPolicy(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if !tt.wantErr && tt.in != "" && got.String() != tt.in {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), tt.in)
		}
	}
}
