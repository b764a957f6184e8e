package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS fitness_kv (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`

// Sqlite stores values in a local sqlite file.
type Sqlite struct {
	db *sql.DB
}

// NewSqlite opens (or creates) the database at path and ensures the schema.
// Use ":memory:" for a throwaway database.
func NewSqlite(ctx context.Context, path string) (*Sqlite, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite [%s]: %w", path, err)
	}
	// single writer, and keeps a ":memory:" db on one connection
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create fitness_kv table: %w", err)
	}

	return &Sqlite{
		db: db,
	}, nil
}

func (s *Sqlite) Load(ctx context.Context, key string) (_ []byte, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.sqlite.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if key == "" {
		return nil, false, ErrEmptyKey
	}

	var value []byte
	err = s.db.QueryRowContext(ctx, `SELECT value FROM fitness_kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("select [%s]: %w", key, err)
	}

	return value, true, nil
}

func (s *Sqlite) Save(ctx context.Context, key string, value []byte) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.sqlite.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if key == "" {
		return ErrEmptyKey
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO fitness_kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upsert [%s]: %w", key, err)
	}

	return nil
}

func (s *Sqlite) Close() error {
	return s.db.Close()
}
