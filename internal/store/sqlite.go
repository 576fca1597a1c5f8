package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/robherley/game-of-life/internal/codec"
	"github.com/robherley/game-of-life/internal/game"
)

const tableSchema = `
CREATE TABLE IF NOT EXISTS games (
    name TEXT PRIMARY KEY,
    board BLOB NOT NULL,
    generation INTEGER NOT NULL,
    delta INTEGER NOT NULL
)`

// SQLite is the Store implementation backed by a local SQLite file
// (or an in-memory database for tests and ephemeral runs). Boards are
// stored as compressed blobs in the codec storage format.
type SQLite struct {
	db *sql.DB
}

var _ Store = (*SQLite)(nil)

// OpenSQLite opens (creating if needed) the database at path. Pass
// ":memory:" for a throwaway in-memory database.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// A single connection keeps in-memory databases coherent and
	// sidesteps SQLITE_BUSY on concurrent writers.
	db.SetMaxOpenConns(1)

	return &SQLite{db: db}, nil
}

// Migrate creates the games table if it does not exist yet.
func (s *SQLite) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, tableSchema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (s *SQLite) Find(ctx context.Context, name string) (*game.Game, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT board, generation, delta FROM games WHERE name = ?", name)

	var blob []byte
	var generation, delta uint64
	if err := row.Scan(&blob, &generation, &delta); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find %q: %w", name, err)
	}

	board, err := codec.DecodeStorage(blob)
	if err != nil {
		return nil, fmt.Errorf("find %q: %w", name, err)
	}

	return &game.Game{Board: board, Generation: generation, Delta: delta}, nil
}

func (s *SQLite) Create(ctx context.Context, name string, g *game.Game) error {
	blob, err := codec.EncodeStorage(g.Board)
	if err != nil {
		return fmt.Errorf("create %q: %w", name, err)
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO games (name, board, generation, delta) VALUES (?, ?, ?, ?) ON CONFLICT(name) DO NOTHING",
		name, blob, g.Generation, g.Delta)
	if err != nil {
		return fmt.Errorf("create %q: %w", name, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("create %q: %w", name, err)
	}
	if affected == 0 {
		return ErrExists
	}
	return nil
}

func (s *SQLite) Update(ctx context.Context, name string, g *game.Game) error {
	blob, err := codec.EncodeStorage(g.Board)
	if err != nil {
		return fmt.Errorf("update %q: %w", name, err)
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE games SET board = ?, generation = ?, delta = ? WHERE name = ?",
		blob, g.Generation, g.Delta, name)
	if err != nil {
		return fmt.Errorf("update %q: %w", name, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update %q: %w", name, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
