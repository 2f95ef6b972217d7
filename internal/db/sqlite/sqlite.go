package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/mibal-ua/cyrillic-file-renamer/internal/db"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Repository implements db.Repository using SQLite
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

// New opens (creating if needed) the SQLite journal at dbPath. ":memory:"
// gives a private in-memory journal.
func New(ctx context.Context, dbPath string) (*Repository, error) {
	// Strip sqlite:// prefix if present
	dbPath = strings.TrimPrefix(dbPath, "sqlite://")

	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite database: %w", err)
	}
	// A single connection serializes writers and keeps ":memory:" databases
	// from splitting across the pool.
	sqliteDB.SetMaxOpenConns(1)

	if _, err := sqliteDB.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := sqliteDB.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if _, err := sqliteDB.ExecContext(ctx, schemaSQL); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Repository{db: sqliteDB, now: time.Now}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// Run methods

func (r *Repository) StartRun(ctx context.Context, arg db.StartRunParams) (db.Run, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO runs (dir, variant, dry_run, started_at)
		VALUES (?, ?, ?, ?)
	`, arg.Dir, arg.Variant, arg.DryRun, formatTime(r.now()))
	if err != nil {
		return db.Run{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return db.Run{}, err
	}
	return r.GetRun(ctx, id)
}

func (r *Repository) FinishRun(ctx context.Context, id int64) (db.Run, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE runs SET finished_at = ? WHERE id = ?
	`, formatTime(r.now()), id)
	if err != nil {
		return db.Run{}, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return db.Run{}, err
	}
	if rowsAffected == 0 {
		return db.Run{}, db.ErrNoRows
	}
	return r.GetRun(ctx, id)
}

func (r *Repository) GetRun(ctx context.Context, id int64) (db.Run, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, dir, variant, dry_run, started_at, finished_at
		FROM runs
		WHERE id = ?
	`, id)
	return scanRun(row)
}

func (r *Repository) LastRun(ctx context.Context) (db.Run, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, dir, variant, dry_run, started_at, finished_at
		FROM runs
		ORDER BY id DESC
		LIMIT 1
	`)
	return scanRun(row)
}

// Entry methods

func (r *Repository) RecordEntry(ctx context.Context, arg db.RecordEntryParams) (db.Entry, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO entries (run_id, source, target, outcome, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, arg.RunID, arg.Source, arg.Target, arg.Outcome, arg.Error, formatTime(r.now()))
	if err != nil {
		return db.Entry{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return db.Entry{}, err
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, run_id, source, target, outcome, error, created_at
		FROM entries WHERE id = ?
	`, id)
	return scanEntry(row)
}

func (r *Repository) ListEntries(ctx context.Context, runID int64) ([]db.Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, run_id, source, target, outcome, error, created_at
		FROM entries
		WHERE run_id = ?
		ORDER BY source, id
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
	rows, err := r.db.QueryContext(ctx, `
		SELECT outcome, COUNT(*) FROM entries WHERE run_id = ? GROUP BY outcome
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

// Helpers

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (db.Run, error) {
	var run db.Run
	var startedAtStr string
	var finishedAtStr sql.NullString
	err := row.Scan(&run.ID, &run.Dir, &run.Variant, &run.DryRun, &startedAtStr, &finishedAtStr)
	if err == sql.ErrNoRows {
		return db.Run{}, db.ErrNoRows
	}
	if err != nil {
		return db.Run{}, err
	}
	run.StartedAt, _ = time.Parse(time.RFC3339Nano, startedAtStr)
	if finishedAtStr.Valid {
		finishedAt, _ := time.Parse(time.RFC3339Nano, finishedAtStr.String)
		run.FinishedAt = sql.NullTime{Time: finishedAt, Valid: true}
	}
	return run, nil
}

func scanEntry(row scanner) (db.Entry, error) {
	var e db.Entry
	var createdAtStr string
	err := row.Scan(&e.ID, &e.RunID, &e.Source, &e.Target, &e.Outcome, &e.Error, &createdAtStr)
	if err == sql.ErrNoRows {
		return db.Entry{}, db.ErrNoRows
	}
	if err != nil {
		return db.Entry{}, err
	}
	e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAtStr)
	return e, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
