// Package store persists games in a local SQLite database.
package store

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chessview-go/internal/errors"
	"github.com/lgbarn/chessview-go/internal/game"
)

const schema = `
CREATE TABLE IF NOT EXISTS games (
	id          TEXT PRIMARY KEY,
	fingerprint TEXT NOT NULL UNIQUE,
	event       TEXT NOT NULL DEFAULT '',
	site        TEXT NOT NULL DEFAULT '',
	date        TEXT NOT NULL DEFAULT '',
	white       TEXT NOT NULL DEFAULT '',
	black       TEXT NOT NULL DEFAULT '',
	result      TEXT NOT NULL DEFAULT '*',
	ply_count   INTEGER NOT NULL,
	final_fen   TEXT NOT NULL,
	pgn         TEXT NOT NULL,
	created_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS games_white ON games (white);
CREATE INDEX IF NOT EXISTS games_black ON games (black);
`

// Record is a stored game.
type Record struct {
	ID        string
	Game      *game.Game
	CreatedAt time.Time
}

// ListOptions filters List.
type ListOptions struct {
	// Player matches either colour, case-insensitively, as a substring.
	Player string

	// Limit caps the number of rows; 0 means no limit.
	Limit int
}

// Store is a SQLite-backed game store. It is safe for concurrent use.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
	now func() time.Time
}

// Open opens (creating if needed) the database at path and applies the
// schema. Use ":memory:" for a private in-memory database.
func Open(ctx context.Context, path string, log zerolog.Logger) (*Store, error) {
	dsn := path
	if path != ":memory:" {
		dsn = "file:" + path + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	// A ":memory:" database exists per connection.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close() //nolint:errcheck,gosec // already failing
		return nil, errors.Wrapf(err, "apply schema to %s", path)
	}

	log.Debug().Str("path", path).Msg("game store opened")
	return &Store{db: db, log: log, now: time.Now}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores g and returns its new id. A game with the same fingerprint
// is rejected with ErrDuplicateGame.
func (s *Store) Save(ctx context.Context, g *game.Game) (string, error) {
	id := uuid.NewString()
	finalFEN := ""
	if n := len(g.FENs); n > 0 {
		finalFEN = g.FENs[n-1]
	}
	result := g.Result
	if result == "" {
		result = "*"
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO games (id, fingerprint, event, site, date, white, black, result, ply_count, final_fen, pgn, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, g.Fingerprint(),
		g.Tag("Event"), g.Tag("Site"), g.Tag("Date"), g.Tag("White"), g.Tag("Black"),
		result, g.PlyCount(), finalFEN, g.PGN, s.now().UnixNano(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("%s: %w", g.Title(), errors.ErrDuplicateGame)
		}
		return "", errors.Wrap(err, "insert game")
	}

	s.log.Info().Str("id", id).Str("game", g.Title()).Int("plies", g.PlyCount()).Msg("game saved")
	return id, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !stderrors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

// Get loads the game with the given id.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, pgn, created_at FROM games WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("id %s: %w", id, errors.ErrGameNotFound)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load game %s", id)
	}
	return rec, nil
}

// List returns stored games, oldest first.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]*Record, error) {
	query := `SELECT id, pgn, created_at FROM games`
	var args []interface{}
	if opts.Player != "" {
		query += ` WHERE lower(white) LIKE ? OR lower(black) LIKE ?`
		pattern := "%" + strings.ToLower(opts.Player) + "%"
		args = append(args, pattern, pattern)
	}
	query += ` ORDER BY created_at, id`
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list games")
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Delete removes the game with the given id.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM games WHERE id = ?`, id)
	if err != nil {
		return errors.Wrapf(err, "delete game %s", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "delete game %s", id)
	}
	if n == 0 {
		return fmt.Errorf("id %s: %w", id, errors.ErrGameNotFound)
	}
	s.log.Info().Str("id", id).Msg("game deleted")
	return nil
}

// Count returns the number of stored games.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM games`).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "count games")
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanRecord reads (id, pgn, created_at) and replays the PGN.
func scanRecord(row scanner) (*Record, error) {
	var (
		id      string
		pgn     string
		created int64
	)
	if err := row.Scan(&id, &pgn, &created); err != nil {
		return nil, err
	}
	g, err := game.Parse(pgn)
	if err != nil {
		return nil, errors.Wrapf(err, "replay stored game %s", id)
	}
	return &Record{ID: id, Game: g, CreatedAt: time.Unix(0, created)}, nil
}
