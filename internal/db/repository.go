// Package db is the rename journal: every run of the renamer and the outcome
// for each file it looked at. Backends live in the sqlite and postgres
// subpackages.
package db

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// Run is one invocation of the renamer over a directory.
type Run struct {
	ID         int64
	Dir        string
	Variant    string
	DryRun     bool
	StartedAt  time.Time
	FinishedAt sql.NullTime
}

// Entry records what happened to a single source file during a run.
type Entry struct {
	ID        int64
	RunID     int64
	Source    string
	Target    sql.NullString
	Outcome   string
	Error     sql.NullString
	CreatedAt time.Time
}

type StartRunParams struct {
	Dir     string
	Variant string
	DryRun  bool
}

type RecordEntryParams struct {
	RunID   int64
	Source  string
	Target  sql.NullString
	Outcome string
	Error   sql.NullString
}

// Repository defines the journal operations the renamer needs.
type Repository interface {
	StartRun(ctx context.Context, arg StartRunParams) (Run, error)
	FinishRun(ctx context.Context, id int64) (Run, error)
	GetRun(ctx context.Context, id int64) (Run, error)
	// LastRun returns the most recently started run, or ErrNoRows.
	LastRun(ctx context.Context) (Run, error)

	RecordEntry(ctx context.Context, arg RecordEntryParams) (Entry, error)
	ListEntries(ctx context.Context, runID int64) ([]Entry, error)
	CountByOutcome(ctx context.Context, runID int64) (map[string]int64, error)

	Close() error
}

// Scheme returns "postgres" or "sqlite" for a journal URL. Anything that is
// not a postgres URL is treated as a SQLite path.
func Scheme(url string) string {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return "postgres"
	}
	return "sqlite"
}

func NullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
