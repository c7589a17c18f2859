// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/weekgrid/internal/schedule"
)

// SQLite implements schedule.Store using SQLite.
type SQLite struct {
	db *sql.DB
}

var _ schedule.Store = (*SQLite)(nil)

// New creates a new SQLite store and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// ErrNotWeekgrid is returned when a database has no weekgrid kv table.
var ErrNotWeekgrid = errors.New("not a weekgrid database")

// OpenReadOnly opens an existing weekgrid database without migrating or
// writing to it.
func OpenReadOnly(path string) (*SQLite, error) {
	dsn := (&url.URL{Scheme: "file", Path: path, RawQuery: "mode=ro"}).String()
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'kv'`).Scan(&name)
	if err == sql.ErrNoRows {
		_ = db.Close()
		return nil, ErrNotWeekgrid
	}
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Get returns the value stored under key.
func (s *SQLite) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("querying %q: %w", key, err)
	}
	return []byte(value), true, nil
}

// Put inserts or replaces the value stored under key.
func (s *SQLite) Put(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, key, string(value), time.Now().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("writing %q: %w", key, err)
	}
	return nil
}

// UpdatedAt returns when key was last written.
func (s *SQLite) UpdatedAt(ctx context.Context, key string) (time.Time, bool, error) {
	var updatedAt string
	err := s.db.QueryRowContext(ctx, `SELECT updated_at FROM kv WHERE key = ?`, key).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("querying %q: %w", key, err)
	}
	t, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parsing updated at: %w", err)
	}
	return t, true, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}
