package db

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
)

// ErrNoRows is returned when a run or entry is not in the journal.
var ErrNoRows = errors.New("not found in journal")

// ErrNoJournal is returned by operations that read the journal when none is
// configured.
var ErrNoJournal = errors.New("no journal configured")

// IsNoRows reports whether err means the journal has no matching run or
// entry, whichever backend produced it.
func IsNoRows(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrNoRows), errors.Is(err, sql.ErrNoRows), errors.Is(err, pgx.ErrNoRows):
		return true
	default:
		return false
	}
}
