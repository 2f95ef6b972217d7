package report

import (
	"bytes"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mibal-ua/cyrillic-file-renamer/internal/db"
	"github.com/mibal-ua/cyrillic-file-renamer/internal/renamer"
	"github.com/mibal-ua/cyrillic-file-renamer/internal/transliteration"
)

func TestWrite(t *testing.T) {
	summary := renamer.Summary{
		Dir:     "/data/docs",
		OutDir:  "/data/docs/renamedToLatin",
		Variant: transliteration.UAOfficial,
		RunID:   12,
		Results: []renamer.Result{
			{Source: "Звіт.txt", Target: "Zvit.txt", Outcome: renamer.Renamed},
			{Source: "photo.jpg", Outcome: renamer.Skipped, Err: transliteration.ErrNoCyrillic},
			{Source: "мы.txt", Outcome: renamer.Unsupported, Err: &transliteration.UnsupportedLetterError{Letter: 'ы', Language: transliteration.Ukrainian}},
			{Source: "big.iso", Outcome: renamer.Failed, Err: errors.New("disk full")},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, summary))
	out := buf.String()

	assert.Contains(t, out, "Transliterated /data/docs (ua-official)")
	assert.Contains(t, out, "Files:       4")
	assert.Contains(t, out, "Renamed:     1")
	assert.Contains(t, out, "Skipped:     1")
	assert.Contains(t, out, "Unsupported: 1")
	assert.Contains(t, out, "Failed:      1")
	assert.NotContains(t, out, "Exists:")
	assert.Contains(t, out, "Output:      /data/docs/renamedToLatin")
	assert.Contains(t, out, "Journal run: 12")
	assert.Contains(t, out, "мы.txt - letter 'ы' is not part of the Ukrainian alphabet")
	assert.Contains(t, out, "big.iso - disk full")
	assert.NotContains(t, out, "Звіт.txt", "renamed files are not listed")
	assert.NotContains(t, out, "\x1b[", "no colors for a non-terminal writer")
}

func TestWriteDryRun(t *testing.T) {
	summary := renamer.Summary{
		Dir:     "/data",
		OutDir:  "/data/renamedToLatin",
		Variant: transliteration.RUExtended,
		DryRun:  true,
		Results: []renamer.Result{{Source: "Юля.png", Target: "Yulia.png", Outcome: renamer.Renamed}},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, summary))
	out := buf.String()

	assert.Contains(t, out, "(ru-extended) [dry run]")
	assert.NotContains(t, out, "Output:")
	assert.NotContains(t, out, "Journal run")
}

func TestWriteRun(t *testing.T) {
	started := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	run := db.Run{
		ID:         7,
		Dir:        "/data/docs",
		Variant:    "ru-extended",
		StartedAt:  started,
		FinishedAt: sql.NullTime{Time: started.Add(time.Second), Valid: true},
	}
	counts := map[string]int64{"renamed": 2, "exists": 1}
	entries := []db.Entry{
		{Source: "Жизнь.txt", Outcome: "renamed", Target: db.NullString("Zhyzn.txt")},
		{Source: "отчёт.odt", Outcome: "renamed", Target: db.NullString("otchyot.odt")},
		{Source: "Отчёт.odt", Outcome: "exists", Error: db.NullString("target already exists")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRun(&buf, run, counts, entries))
	out := buf.String()

	assert.Contains(t, out, "Run 7: /data/docs (ru-extended)")
	assert.Contains(t, out, "Started:     "+started.Local().Format(time.DateTime))
	assert.Contains(t, out, "Files:       3")
	assert.Contains(t, out, "Renamed:     2")
	assert.Contains(t, out, "Exists:      1")
	assert.Contains(t, out, "Отчёт.odt - target already exists")
	assert.NotContains(t, out, "Жизнь.txt")
	assert.NotContains(t, out, "never")
}

func TestWriteRunUnfinished(t *testing.T) {
	run := db.Run{ID: 3, Dir: "/data", Variant: "ua-official", DryRun: true, StartedAt: time.Now()}

	var buf bytes.Buffer
	require.NoError(t, WriteRun(&buf, run, map[string]int64{}, nil))
	out := buf.String()

	assert.Contains(t, out, "Run 3: /data (ua-official) [dry run]")
	assert.Contains(t, out, "Finished:    never")
	assert.Contains(t, out, "Files:       0")
	assert.Contains(t, out, "Renamed:     0")
}
