package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const DefaultDB = "data/snake.db"

// SQLiteStore keeps the best score in a single-row table.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at dbPath.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		dbPath = DefaultDB
	}
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// One connection keeps ":memory:" databases coherent.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS best_score (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		score INTEGER NOT NULL,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(ctx context.Context) (int, error) {
	var score int
	err := s.db.QueryRowContext(ctx, `SELECT score FROM best_score WHERE id = 1`).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read best score: %w", err)
	}
	return score, nil
}

func (s *SQLiteStore) Set(ctx context.Context, score int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO best_score (id, score, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at
	`, score)
	if err != nil {
		return fmt.Errorf("failed to write best score: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
