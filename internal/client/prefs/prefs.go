// Package prefs persists small client-side settings (the last email used to
// sign in and each user's preferred listing layout) in a local SQLite file.
package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/oluccaa/qualidade-sub001/internal/dbx"
	"github.com/oluccaa/qualidade-sub001/internal/explorer"
)

const schema = `
CREATE TABLE IF NOT EXISTS preferences (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`

const (
	keyLastEmail      = "last_email"
	keyViewModePrefix = "view_mode:"
)

type Store struct {
	db     dbx.DBTX
	closer func() error
}

// Open opens (and creates if needed) the preferences file at path. An empty
// path keeps the preferences in memory for the lifetime of the process.
func Open(ctx context.Context, path string) (*Store, error) {
	dsn := path
	if dsn == "" {
		dsn = ":memory:"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open preferences: %w", err)
	}
	// every :memory: connection is a separate database
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init preferences: %w", err)
	}
	return &Store{db: db, closer: db.Close}, nil
}

// NewStore wraps an already initialised database.
func NewStore(db dbx.DBTX) *Store {
	return &Store{db: db}
}

func (s *Store) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}

// Get returns the value stored under key; ok is false when there is none.
func (s *Store) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	err = s.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get preference[%s]: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set preference[%s]: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM preferences WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete preference[%s]: %w", key, err)
	}
	return nil
}

// LastEmail returns the email of the last successful sign-in, or "".
func (s *Store) LastEmail(ctx context.Context) (string, error) {
	v, _, err := s.Get(ctx, keyLastEmail)
	return v, err
}

func (s *Store) SetLastEmail(ctx context.Context, email string) error {
	return s.Set(ctx, keyLastEmail, email)
}

// ViewMode returns the listing layout userID chose last. Users without a
// stored choice get the list layout.
func (s *Store) ViewMode(ctx context.Context, userID string) (explorer.ViewMode, error) {
	v, _, err := s.Get(ctx, keyViewModePrefix+userID)
	if err != nil {
		return explorer.ViewList, err
	}
	if v == explorer.ViewGrid.String() {
		return explorer.ViewGrid, nil
	}
	return explorer.ViewList, nil
}

func (s *Store) SetViewMode(ctx context.Context, userID string, mode explorer.ViewMode) error {
	return s.Set(ctx, keyViewModePrefix+userID, mode.String())
}
