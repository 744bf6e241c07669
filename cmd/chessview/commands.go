package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessview-go/internal/chess"
	"github.com/lgbarn/chessview-go/internal/config"
	"github.com/lgbarn/chessview-go/internal/errors"
	"github.com/lgbarn/chessview-go/internal/game"
	"github.com/lgbarn/chessview-go/internal/movegen"
	"github.com/lgbarn/chessview-go/internal/output"
	"github.com/lgbarn/chessview-go/internal/session"
	"github.com/lgbarn/chessview-go/internal/store"
	"github.com/lgbarn/chessview-go/internal/worker"
)

// app carries what every command needs.
type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	gen    *movegen.Generator
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func newApp(cfg *config.Config, log zerolog.Logger) *app {
	return &app{
		cfg:    cfg,
		log:    log,
		gen:    cfg.Analysis.Generator(),
		in:     os.Stdin,
		out:    cfg.OutputFile,
		errOut: os.Stderr,
	}
}

type command func(a *app, ctx context.Context, args []string) error

var commands = map[string]command{
	"moves":   (*app).moves,
	"show":    (*app).show,
	"import":  (*app).importGames,
	"analyze": (*app).analyze,
	"list":    (*app).list,
	"get":     (*app).get,
	"delete":  (*app).deleteGame,
}

// run dispatches args[0] to its command.
func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command: %w", errors.ErrInvalidConfig)
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("unknown command %q: %w", args[0], errors.ErrInvalidConfig)
	}
	a.log.Debug().Str("command", args[0]).Strs("args", args[1:]).Msg("running")
	return cmd(a, ctx, args[1:])
}

// moves prints the destinations of the piece on -square, either in the -fen
// position or at position -ply of the first game read from args.
func (a *app) moves(_ context.Context, args []string) error {
	if a.cfg.View.Square == "" {
		return fmt.Errorf("moves needs -square: %w", errors.ErrInvalidConfig)
	}
	from, err := chess.ParseCoord(a.cfg.View.Square)
	if err != nil {
		return err
	}

	var (
		g   *game.Game
		ply int
	)
	if a.cfg.View.FEN != "" {
		if g, err = game.FromFEN(a.cfg.View.FEN); err != nil {
			return err
		}
	} else {
		if g, err = a.firstGame(args); err != nil {
			return err
		}
		ply = a.resolvePly(g)
	}
	board, err := g.Board(ply)
	if err != nil {
		return err
	}
	fen, err := g.FEN(ply)
	if err != nil {
		return err
	}

	targets, err := a.gen.Generate(board, from)
	if err != nil {
		return err
	}

	if a.cfg.Output.JSONFormat {
		return output.WriteJSON(a.out, output.MovesToJSON(fen, from, board.At(from), targets))
	}

	names := make([]string, 0, len(targets))
	for _, t := range targets {
		names = append(names, t.String())
	}
	if _, err := fmt.Fprintf(a.out, "%s on %s: %s\n", board.At(from), from, strings.Join(names, " ")); err != nil {
		return err
	}
	if a.cfg.Verbosity > 1 {
		return output.RenderBoard(a.out, board, output.BoardOptions{Selected: &from, Targets: targets, Flip: a.cfg.Output.Flip})
	}
	return nil
}

// show draws position -ply of the first game, previewing -square if set.
func (a *app) show(_ context.Context, args []string) error {
	g, err := a.firstGame(args)
	if err != nil {
		return err
	}
	s, err := session.New(g, a.gen, a.log)
	if err != nil {
		return err
	}
	s.SetFlip(a.cfg.Output.Flip)
	if err := s.Seek(a.resolvePly(g)); err != nil {
		return err
	}

	var targets []chess.Coord
	var from chess.Coord
	if a.cfg.View.Square != "" {
		if from, err = chess.ParseCoord(a.cfg.View.Square); err != nil {
			return err
		}
		if targets, err = s.Select(from); err != nil {
			return err
		}
	}

	if a.cfg.Output.JSONFormat {
		if a.cfg.View.Square == "" {
			return output.WriteJSON(a.out, output.GameToJSON(output.Entry{Game: g}))
		}
		fen, err := g.FEN(s.Ply())
		if err != nil {
			return err
		}
		return output.WriteJSON(a.out, output.MovesToJSON(fen, from, s.Board().At(from), targets))
	}

	if _, err := fmt.Fprintln(a.out, g.Title()); err != nil {
		return err
	}
	return s.Render(a.out)
}

// importGames analyses every game in args and saves the ones that succeed.
// Duplicates are reported and skipped.
func (a *app) importGames(ctx context.Context, args []string) error {
	games, err := a.readGames(args)
	if err != nil {
		return err
	}

	db, err := store.Open(ctx, a.cfg.Store.Path, a.log)
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck // read-only use after the last Save

	w := a.gameWriter(false)
	var imported, duplicates, failed int
	for _, r := range a.analyseAll(ctx, games) {
		if r.Error != nil {
			failed++
			a.log.Warn().Err(r.Error).Int("game", r.Index+1).Msg("analysis failed")
			continue
		}
		id, err := db.Save(ctx, r.Game)
		switch {
		case stderrors.Is(err, errors.ErrDuplicateGame):
			duplicates++
			a.log.Warn().Str("game", r.Game.Title()).Msg("duplicate skipped")
			continue
		case err != nil:
			return err
		}
		imported++
		if err := w.WriteGame(output.Entry{ID: id, Game: r.Game, Mobility: r.Mobility}); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	if a.cfg.Verbosity > 0 {
		fmt.Fprintf(a.errOut, "%d game(s) imported, %d duplicate(s), %d failed out of %d.\n",
			imported, duplicates, failed, len(games))
	}
	return ctx.Err()
}

// analyze prints the mobility profile of every game in args.
func (a *app) analyze(ctx context.Context, args []string) error {
	games, err := a.readGames(args)
	if err != nil {
		return err
	}

	w := a.gameWriter(false)
	failed := 0
	for _, r := range a.analyseAll(ctx, games) {
		if r.Error != nil {
			failed++
			a.log.Warn().Err(r.Error).Int("game", r.Index+1).Msg("analysis failed")
			continue
		}
		if err := w.WriteGame(output.Entry{Game: r.Game, Mobility: r.Mobility}); err != nil {
			return err
		}
		if !a.cfg.Output.JSONFormat && a.cfg.Verbosity > 1 {
			if err := writeMobilityTable(a.out, r.Game, r.Mobility); err != nil {
				return err
			}
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	if a.cfg.Verbosity > 0 {
		fmt.Fprintf(a.errOut, "%d game(s) analysed, %d failed.\n", len(games)-failed, failed)
	}
	return ctx.Err()
}

func writeMobilityTable(w io.Writer, g *game.Game, profile []game.PlyMobility) error {
	for _, p := range profile {
		move := "start"
		if p.Ply > 0 {
			move = g.SAN[p.Ply-1]
		}
		if _, err := fmt.Fprintf(w, "  %3d %-8s white %2d  black %2d\n", p.Ply, move, p.White, p.Black); err != nil {
			return err
		}
	}
	return nil
}

// list prints stored games matching -player, at most -limit of them.
func (a *app) list(ctx context.Context, _ []string) error {
	db, err := store.Open(ctx, a.cfg.Store.Path, a.log)
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck // read-only

	records, err := db.List(ctx, store.ListOptions{Player: a.cfg.Store.Player, Limit: a.cfg.Store.Limit})
	if err != nil {
		return err
	}

	w := a.gameWriter(a.cfg.Output.FullGames)
	for _, rec := range records {
		if err := w.WriteGame(output.Entry{ID: rec.ID, Game: rec.Game}); err != nil {
			return err
		}
	}
	return w.Close()
}

// get prints one stored game in full.
func (a *app) get(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("get needs exactly one id: %w", errors.ErrInvalidConfig)
	}
	db, err := store.Open(ctx, a.cfg.Store.Path, a.log)
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck // read-only

	rec, err := db.Get(ctx, args[0])
	if err != nil {
		return err
	}
	var w output.GameWriter = output.NewTextWriter(a.out, true)
	if a.cfg.Output.JSONFormat {
		w = output.NewJSONWriterSingle(a.out)
	}
	if err := w.WriteGame(output.Entry{ID: rec.ID, Game: rec.Game}); err != nil {
		return err
	}
	return w.Close()
}

// deleteGame removes one stored game.
func (a *app) deleteGame(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("delete needs exactly one id: %w", errors.ErrInvalidConfig)
	}
	db, err := store.Open(ctx, a.cfg.Store.Path, a.log)
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck // Delete has committed

	if err := db.Delete(ctx, args[0]); err != nil {
		return err
	}
	if a.cfg.Verbosity > 0 {
		fmt.Fprintf(a.out, "deleted %s\n", args[0])
	}
	return nil
}

func (a *app) gameWriter(full bool) output.GameWriter {
	if a.cfg.Output.JSONFormat {
		return output.NewJSONWriter(a.out)
	}
	return output.NewTextWriter(a.out, full)
}

func (a *app) analyseAll(ctx context.Context, games []*game.Game) []worker.ProcessResult {
	bufferSize := a.cfg.Analysis.BufferSize
	if len(games) < bufferSize {
		bufferSize = len(games)
	}
	return worker.Analyze(ctx, games, worker.MobilityFunc(a.gen),
		worker.WithWorkers(a.cfg.Analysis.Workers),
		worker.WithBufferSize(bufferSize),
	)
}

// resolvePly maps -ply -1 to the final position.
func (a *app) resolvePly(g *game.Game) int {
	if a.cfg.View.Ply == -1 {
		return g.PlyCount()
	}
	return a.cfg.View.Ply
}

func (a *app) firstGame(args []string) (*game.Game, error) {
	games, err := a.readGames(args)
	if err != nil {
		return nil, err
	}
	return games[0], nil
}

// readGames reads every game from the named files, or from stdin when args
// is empty or "-". An input without games is an error.
func (a *app) readGames(args []string) ([]*game.Game, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}

	var all []*game.Game
	for _, name := range args {
		games, err := a.readFile(name)
		if err != nil {
			return nil, err
		}
		a.log.Info().Str("file", name).Int("games", len(games)).Msg("games read")
		all = append(all, games...)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("no games in %s: %w", strings.Join(args, ", "), errors.ErrParseFailure)
	}
	return all, nil
}

func (a *app) readFile(name string) ([]*game.Game, error) {
	if name == "-" {
		games, err := game.ReadAll(a.in)
		return games, withFile(err, "stdin")
	}
	file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close() //nolint:errcheck // read-only

	games, err := game.ReadAll(file)
	return games, withFile(err, name)
}

func withFile(err error, name string) error {
	var gameErr *errors.GameError
	if stderrors.As(err, &gameErr) {
		gameErr.File = name
	}
	return err
}
