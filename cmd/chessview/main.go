// chessview inspects chess positions and games: it previews the squares a
// piece can reach, steps through PGN games, and keeps analysed games in a
// local SQLite database.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/chessview-go/internal/config"
	"github.com/lgbarn/chessview-go/internal/logging"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessview version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	logOut, err := setupLogFile(cfg)
	if err != nil {
		fatal(err)
	}
	if logOut != nil {
		defer logOut.Close() //nolint:errcheck // best-effort on exit
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := newApp(cfg, logging.New(cfg))
	if err := app.run(ctx, flag.Args()); err != nil {
		stop()
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "chessview: %v\n", err)
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessview [options] <command> [args...]\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  moves [file.pgn]     List the squares the piece on -square can reach\n")
	fmt.Fprintf(os.Stderr, "  show <file.pgn>      Draw position -ply of the first game\n")
	fmt.Fprintf(os.Stderr, "  import <files...>    Analyse games and save them to the database\n")
	fmt.Fprintf(os.Stderr, "  analyze <files...>   Report per-ply mobility without saving\n")
	fmt.Fprintf(os.Stderr, "  list                 List stored games\n")
	fmt.Fprintf(os.Stderr, "  get <id>             Print a stored game\n")
	fmt.Fprintf(os.Stderr, "  delete <id>          Remove a stored game\n\n")
	fmt.Fprintf(os.Stderr, "Files default to stdin when omitted or given as -.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
