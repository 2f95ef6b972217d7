package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/samber/lo"

	"github.com/mibal-ua/cyrillic-file-renamer/internal/db"
	"github.com/mibal-ua/cyrillic-file-renamer/internal/db/sqlite"
	"github.com/mibal-ua/cyrillic-file-renamer/internal/logger"
	"github.com/mibal-ua/cyrillic-file-renamer/internal/renamer"
	"github.com/mibal-ua/cyrillic-file-renamer/internal/report"
	"github.com/mibal-ua/cyrillic-file-renamer/internal/transliteration"
)

func main() {
	if err := run(); err != nil {
		slog.Error("E2E FAILED", "error", err)
		os.Exit(1)
	}
	slog.Info("E2E PASSED")
}

type fixture struct {
	source  string
	target  string
	outcome renamer.Outcome
}

var ukrainianFixtures = []fixture{
	{"Мій файл.txt", "Miy fayl.txt", renamer.Renamed},
	{"Щастя.docx", "Shchastia.docx", renamer.Renamed},
	{"ЩоДня.md", "ShchoDnia.md", renamer.Renamed},
	{"photo.jpg", "", renamer.Skipped},
	{"мы.txt", "", renamer.Unsupported},
}

var cases = []struct {
	variant  transliteration.Variant
	fixtures []fixture
}{
	{transliteration.UAOfficial, ukrainianFixtures},
	{transliteration.UAExtended, ukrainianFixtures},
	{transliteration.RUOfficial, []fixture{
		{"мой отчёт.odt", "moi otchet.odt", renamer.Renamed},
		{"Жизнь.txt", "Zhizn.txt", renamer.Renamed},
		{"photo.jpg", "", renamer.Skipped},
		{"їжак.txt", "", renamer.Unsupported},
	}},
	{transliteration.RUExtended, []fixture{
		{"мой отчёт.odt", "moy otchyot.odt", renamer.Renamed},
		{"Жизнь.txt", "Zhyzn.txt", renamer.Renamed},
		{"photo.jpg", "", renamer.Skipped},
		{"їжак.txt", "", renamer.Unsupported},
	}},
}

func run() error {
	_ = godotenv.Load()

	log := logger.New()
	ctx := context.Background()

	root, err := os.MkdirTemp("", "cyrillic-renamer-e2e-")
	if err != nil {
		return fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(root)

	repo, err := sqlite.New(ctx, filepath.Join(root, "journal.db"))
	if err != nil {
		return fmt.Errorf("creating temp SQLite: %w", err)
	}
	defer repo.Close()

	var errs []error
	for _, c := range cases {
		log.Info("running variant", "variant", c.variant)
		if err := runCase(ctx, log, repo, root, c.variant, c.fixtures); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", c.variant, err))
		}
	}
	return errors.Join(errs...)
}

func runCase(ctx context.Context, log *slog.Logger, repo db.Repository, root string, v transliteration.Variant, fixtures []fixture) error {
	dir := filepath.Join(root, v.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, f := range fixtures {
		if err := os.WriteFile(filepath.Join(dir, f.source), []byte(f.source), 0o644); err != nil {
			return fmt.Errorf("writing fixture %s: %w", f.source, err)
		}
	}

	r := renamer.New(renamer.Config{Variant: v, Workers: 2}, log, repo)
	summary, err := r.Run(ctx, dir)
	if err != nil {
		return fmt.Errorf("running renamer: %w", err)
	}
	if err := report.Write(os.Stdout, summary); err != nil {
		return err
	}

	results := lo.KeyBy(summary.Results, func(res renamer.Result) string { return res.Source })
	var errs []error
	for _, f := range fixtures {
		res, ok := results[f.source]
		if !ok {
			errs = append(errs, fmt.Errorf("%s: no result", f.source))
			continue
		}
		if res.Outcome != f.outcome {
			errs = append(errs, fmt.Errorf("%s: outcome %s, want %s", f.source, res.Outcome, f.outcome))
			continue
		}
		if f.target == "" {
			continue
		}
		got, err := os.ReadFile(filepath.Join(summary.OutDir, f.target))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.source, err))
			continue
		}
		if string(got) != f.source {
			errs = append(errs, fmt.Errorf("%s: copied content differs", f.target))
		}
	}

	entries, err := repo.ListEntries(ctx, summary.RunID)
	if err != nil {
		return fmt.Errorf("listing journal entries: %w", err)
	}
	if len(entries) != len(fixtures) {
		errs = append(errs, fmt.Errorf("journal has %d entries, want %d", len(entries), len(fixtures)))
	}
	return errors.Join(errs...)
}
