// renamer copies Cyrillic-named files into a renamedToLatin subdirectory
// under their Latin transliteration.
//
//	renamer [path] [ua|ru] [official|extended]
//	renamer --journal sqlite://journal.db --last-run
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/mibal-ua/cyrillic-file-renamer/internal/db"
	"github.com/mibal-ua/cyrillic-file-renamer/internal/db/postgres"
	"github.com/mibal-ua/cyrillic-file-renamer/internal/db/sqlite"
	"github.com/mibal-ua/cyrillic-file-renamer/internal/logger"
	"github.com/mibal-ua/cyrillic-file-renamer/internal/metrics"
	"github.com/mibal-ua/cyrillic-file-renamer/internal/renamer"
	"github.com/mibal-ua/cyrillic-file-renamer/internal/report"
	"github.com/mibal-ua/cyrillic-file-renamer/internal/setup"
)

func main() {
	if err := mainE(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, setup.ErrAborted) {
			os.Exit(130)
		}
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

type options struct {
	setup.Config
	OutDir      string
	Workers     int
	Journal     string
	MetricsFile string
	DryRun      bool
	Interactive bool
	// ShowRun prints a journal run instead of renaming; -1 means none and 0
	// the latest.
	ShowRun int64
}

// parseOptions reads flags and positional arguments. Usage goes to w when
// parsing fails or help is requested, in which case the error is ff.ErrHelp.
func parseOptions(args []string, w io.Writer) (options, error) {
	fs := ff.NewFlagSet("renamer")
	var (
		path        = fs.StringLong("path", "", "directory with the files to rename")
		lang        = fs.StringLong("lang", "", "language of the file names: ua or ru")
		standard    = fs.StringLong("standard", "", "transliteration standard: official or extended")
		outDir      = fs.StringLong("out-dir", renamer.DefaultOutDir, "output directory created inside path")
		workers     = fs.IntLong("workers", 4, "number of files copied concurrently")
		journal     = fs.StringLong("journal", "", "journal database URL (sqlite://file.db or postgres://...)")
		metricsFile = fs.StringLong("metrics-file", "", "write Prometheus metrics to this textfile")
		dryRun      = fs.BoolLong("dry-run", "compute new names without copying")
		interactive = fs.BoolLong("interactive", "always confirm the configuration in the wizard")
		lastRun     = fs.BoolLong("last-run", "print the latest run from the journal and exit")
		showRun     = fs.IntLong("show-run", 0, "print the journal run with this ID and exit")
	)

	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("RENAMER")); err != nil {
		fmt.Fprintf(w, "%s\n", ffhelp.Flags(fs))
		if errors.Is(err, ff.ErrHelp) {
			return options{}, ff.ErrHelp
		}
		return options{}, fmt.Errorf("parsing flags: %w", err)
	}

	opts := options{
		Config:      setup.Config{Path: *path, Language: *lang, Standard: *standard},
		OutDir:      *outDir,
		Workers:     *workers,
		Journal:     *journal,
		MetricsFile: *metricsFile,
		DryRun:      *dryRun,
		Interactive: *interactive,
		ShowRun:     -1,
	}
	switch {
	case *showRun > 0:
		opts.ShowRun = int64(*showRun)
	case *showRun < 0:
		return options{}, fmt.Errorf("show-run must be a positive run ID, got %d", *showRun)
	case *lastRun:
		opts.ShowRun = 0
	}

	// Positional shortcuts fill whatever the flags left empty.
	rest := fs.GetArgs()
	if len(rest) > 3 {
		fmt.Fprintf(w, "%s\n", ffhelp.Flags(fs))
		return options{}, fmt.Errorf("unexpected arguments: %v", rest[3:])
	}
	positional := []*string{&opts.Path, &opts.Language, &opts.Standard}
	for i, arg := range rest {
		if *positional[i] == "" {
			*positional[i] = arg
		}
	}
	return opts, nil
}

func openJournal(ctx context.Context, url string) (db.Repository, error) {
	if url == "" {
		return nil, nil
	}
	switch db.Scheme(url) {
	case "postgres":
		return postgres.New(ctx, url)
	default:
		return sqlite.New(ctx, url)
	}
}

// showRun prints run id from the journal, or the latest run when id is 0.
func showRun(ctx context.Context, w io.Writer, journal db.Repository, id int64) error {
	var (
		run db.Run
		err error
	)
	if id == 0 {
		run, err = journal.LastRun(ctx)
		if db.IsNoRows(err) {
			_, err = fmt.Fprintln(w, "No runs in the journal yet.")
			return err
		}
	} else {
		run, err = journal.GetRun(ctx, id)
	}
	if err != nil {
		return fmt.Errorf("loading run: %w", err)
	}

	counts, err := journal.CountByOutcome(ctx, run.ID)
	if err != nil {
		return fmt.Errorf("counting outcomes of run %d: %w", run.ID, err)
	}
	entries, err := journal.ListEntries(ctx, run.ID)
	if err != nil {
		return fmt.Errorf("listing entries of run %d: %w", run.ID, err)
	}
	return report.WriteRun(w, run, counts, entries)
}

func mainE(args []string, stdout io.Writer) error {
	_ = godotenv.Load()

	opts, err := parseOptions(args, stdout)
	if errors.Is(err, ff.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if opts.ShowRun >= 0 {
		if opts.Journal == "" {
			return fmt.Errorf("reading runs: %w", db.ErrNoJournal)
		}
		ctx := context.Background()
		journal, err := openJournal(ctx, opts.Journal)
		if err != nil {
			return fmt.Errorf("opening journal: %w", err)
		}
		defer journal.Close()
		return showRun(ctx, stdout, journal, opts.ShowRun)
	}

	if !opts.Complete() || opts.Interactive {
		if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			return errors.New("path, lang and standard are required when stdin is not a terminal")
		}
		if opts.Interactive {
			opts.Config, err = setup.Confirm(opts.Config)
		} else {
			opts.Config, err = setup.Run(opts.Config)
		}
		if err != nil {
			return err
		}
	}

	variant, err := opts.Variant()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)
	log := logger.Init()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case sig := <-sigChan:
			log.Info("received signal, stopping", "signal", sig)
			cancel(errors.New("signal received"))
		case <-ctx.Done():
		}
	}()

	journal, err := openJournal(ctx, opts.Journal)
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	if journal != nil {
		defer journal.Close()
	}

	r := renamer.New(renamer.Config{
		Variant: variant,
		OutDir:  opts.OutDir,
		Workers: opts.Workers,
		DryRun:  opts.DryRun,
	}, log, journal)

	summary, runErr := r.Run(ctx, opts.Path)
	if len(summary.Results) > 0 || runErr == nil {
		if err := report.Write(stdout, summary); err != nil {
			log.Warn("writing report", "error", err)
		}
	}

	if opts.MetricsFile != "" {
		if err := metrics.WriteTextfile(opts.MetricsFile); err != nil {
			log.Warn("writing metrics", "file", opts.MetricsFile, "error", err)
		}
	}

	return runErr
}
