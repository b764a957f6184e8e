package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS fitness_kv (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type pgxDB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres stores values in the fitness_kv table. Values must be valid JSON.
type Postgres struct {
	db pgxDB
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{
		db: pool,
	}
}

// EnsureSchema creates the fitness_kv table if missing.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("create fitness_kv table: %w", err)
	}
	return nil
}

func (p *Postgres) Load(ctx context.Context, key string) (_ []byte, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.postgres.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if key == "" {
		return nil, false, ErrEmptyKey
	}

	var value []byte
	err = p.db.QueryRow(ctx, `SELECT value FROM fitness_kv WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("select [%s]: %w", key, err)
	}

	return value, true, nil
}

func (p *Postgres) Save(ctx context.Context, key string, value []byte) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.postgres.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if key == "" {
		return ErrEmptyKey
	}

	tag, err := p.db.Exec(ctx, `
		INSERT INTO fitness_kv (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("upsert [%s]: %w", key, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("upsert [%s]: no rows affected", key)
	}

	return nil
}
