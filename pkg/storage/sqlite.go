package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS buckets (
	name  TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// SQLite is a durable Gateway backed by a single-file sqlite database. One
// row per bucket; the value column holds the JSON aggregate.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and ensures the
// bucket table exists. Pass ":memory:" for a throwaway store.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrStorage, path, err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: init schema: %v", ErrStorage, err)
	}
	return &SQLite{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) Read(ctx context.Context, bucket string, into any) error {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM buckets WHERE name = ?`, bucket).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: read bucket %s: %v", ErrStorage, bucket, err)
	}
	if err := json.Unmarshal([]byte(raw), into); err != nil {
		return fmt.Errorf("%w: decode bucket %s: %v", ErrStorage, bucket, err)
	}
	return nil
}

func (s *SQLite) Write(ctx context.Context, bucket string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encode bucket %s: %v", ErrStorage, bucket, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO buckets (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
		bucket, string(raw))
	if err != nil {
		return fmt.Errorf("%w: write bucket %s: %v", ErrStorage, bucket, err)
	}
	return nil
}
