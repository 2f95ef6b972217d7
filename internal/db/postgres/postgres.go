package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mibal-ua/cyrillic-file-renamer/internal/db"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    id BIGSERIAL PRIMARY KEY,
    dir TEXT NOT NULL,
    variant TEXT NOT NULL,
    dry_run BOOLEAN NOT NULL DEFAULT FALSE,
    started_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    finished_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS entries (
    id BIGSERIAL PRIMARY KEY,
    run_id BIGINT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    source TEXT NOT NULL,
    target TEXT,
    outcome TEXT NOT NULL,
    error TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_entries_run_id ON entries(run_id);
`

// Repository implements db.Repository using PostgreSQL via pgx
type Repository struct {
	pool *pgxpool.Pool
}

// New connects to databaseURL and makes sure the journal tables exist.
func New(ctx context.Context, databaseURL string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database URL: %w", err)
	}

	// One CLI run at a time; a handful of connections covers the workers.
	config.MaxConns = 4
	config.MinConns = 1
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Repository{pool: pool}, nil
}

func (r *Repository) Close() error {
	r.pool.Close()
	return nil
}

func (r *Repository) StartRun(ctx context.Context, arg db.StartRunParams) (db.Run, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO runs (dir, variant, dry_run)
		VALUES ($1, $2, $3)
		RETURNING id, dir, variant, dry_run, started_at, finished_at
	`, arg.Dir, arg.Variant, arg.DryRun)
	return scanRun(row)
}

func (r *Repository) FinishRun(ctx context.Context, id int64) (db.Run, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE runs SET finished_at = now()
		WHERE id = $1
		RETURNING id, dir, variant, dry_run, started_at, finished_at
	`, id)
	return scanRun(row)
}

func (r *Repository) GetRun(ctx context.Context, id int64) (db.Run, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, dir, variant, dry_run, started_at, finished_at
		FROM runs WHERE id = $1
	`, id)
	return scanRun(row)
}

func (r *Repository) LastRun(ctx context.Context) (db.Run, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, dir, variant, dry_run, started_at, finished_at
		FROM runs ORDER BY id DESC LIMIT 1
	`)
	return scanRun(row)
}

func (r *Repository) RecordEntry(ctx context.Context, arg db.RecordEntryParams) (db.Entry, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO entries (run_id, source, target, outcome, error)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, run_id, source, target, outcome, error, created_at
	`, arg.RunID, arg.Source, arg.Target, arg.Outcome, arg.Error)
	return scanEntry(row)
}

func (r *Repository) ListEntries(ctx context.Context, runID int64) ([]db.Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, run_id, source, target, outcome, error, created_at
		FROM entries
		WHERE run_id = $1
		ORDER BY source COLLATE "C", id
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []db.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *Repository) CountByOutcome(ctx context.Context, runID int64) (map[string]int64, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT outcome, COUNT(*) FROM entries WHERE run_id = $1 GROUP BY outcome
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var outcome string
		var n int64
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, err
		}
		counts[outcome] = n
	}
	return counts, rows.Err()
}

func scanRun(row pgx.Row) (db.Run, error) {
	var run db.Run
	err := row.Scan(&run.ID, &run.Dir, &run.Variant, &run.DryRun, &run.StartedAt, &run.FinishedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.Run{}, db.ErrNoRows
	}
	return run, err
}

func scanEntry(row pgx.Row) (db.Entry, error) {
	var e db.Entry
	err := row.Scan(&e.ID, &e.RunID, &e.Source, &e.Target, &e.Outcome, &e.Error, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.Entry{}, db.ErrNoRows
	}
	return e, err
}
