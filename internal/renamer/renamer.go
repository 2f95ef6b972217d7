// Package renamer copies the Cyrillic-named files of a directory into an
// output directory under their transliterated names.
package renamer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/mibal-ua/cyrillic-file-renamer/internal/db"
	"github.com/mibal-ua/cyrillic-file-renamer/internal/metrics"
	"github.com/mibal-ua/cyrillic-file-renamer/internal/transliteration"
)

// DefaultOutDir is created inside the scanned directory to hold the copies.
const DefaultOutDir = "renamedToLatin"

type Outcome string

const (
	Renamed     Outcome = "renamed"
	Skipped     Outcome = "skipped"
	Unsupported Outcome = "unsupported"
	Exists      Outcome = "exists"
	Failed      Outcome = "failed"

	pending Outcome = ""
)

// Logger defines the logging interface used by Renamer
type Logger interface {
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

type Config struct {
	Variant transliteration.Variant
	// OutDir is the name of the output directory inside the scanned one.
	OutDir  string
	Workers int
	DryRun  bool
}

// Result is the outcome for one source file. Target is set whenever a
// Latin name was computed, even if the copy did not happen.
type Result struct {
	Source  string
	Target  string
	Outcome Outcome
	Err     error
}

type Summary struct {
	Dir     string
	OutDir  string
	Variant transliteration.Variant
	DryRun  bool
	// RunID is the journal run, 0 without a journal.
	RunID    int64
	Results  []Result
	Duration time.Duration
}

func (s Summary) Count(o Outcome) int {
	return lo.CountBy(s.Results, func(r Result) bool { return r.Outcome == o })
}

// Problems returns every result that did not end in a copy.
func (s Summary) Problems() []Result {
	return lo.Filter(s.Results, func(r Result, _ int) bool { return r.Outcome != Renamed })
}

type Renamer struct {
	cfg     Config
	log     Logger
	journal db.Repository
}

// New creates a Renamer. journal may be nil to run without one.
func New(cfg Config, log Logger, journal db.Repository) *Renamer {
	if cfg.OutDir == "" {
		cfg.OutDir = DefaultOutDir
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Renamer{cfg: cfg, log: log, journal: journal}
}

// Run processes every eligible file in dir. Per-file problems end up in the
// Summary; an error is returned only when the run as a whole cannot proceed
// or ctx is cancelled, in which case the partial Summary is still returned.
func (r *Renamer) Run(ctx context.Context, dir string) (Summary, error) {
	start := time.Now()
	summary := Summary{
		Dir:     dir,
		OutDir:  filepath.Join(dir, r.cfg.OutDir),
		Variant: r.cfg.Variant,
		DryRun:  r.cfg.DryRun,
	}

	names, err := Scan(dir)
	if err != nil {
		return summary, err
	}
	r.log.InfoContext(ctx, "scanned directory", "dir", dir, "files", len(names), "variant", r.cfg.Variant)

	if !r.cfg.DryRun {
		if err := os.MkdirAll(summary.OutDir, 0o755); err != nil {
			return summary, fmt.Errorf("creating output directory: %w", err)
		}
	}

	if r.journal != nil {
		run, err := r.journal.StartRun(ctx, db.StartRunParams{
			Dir:     dir,
			Variant: r.cfg.Variant.String(),
			DryRun:  r.cfg.DryRun,
		})
		if err != nil {
			return summary, fmt.Errorf("starting journal run: %w", err)
		}
		summary.RunID = run.ID
	}

	results := r.plan(ctx, names)

	var eg errgroup.Group
	eg.SetLimit(r.cfg.Workers)
	for i := range results {
		if results[i].Outcome != pending {
			r.record(ctx, summary.RunID, results[i])
			continue
		}
		if ctx.Err() != nil {
			break
		}
		i := i // per-iteration copy; go directive is 1.21
		eg.Go(func() error {
			results[i] = r.transfer(ctx, dir, summary.OutDir, results[i])
			r.record(ctx, summary.RunID, results[i])
			return nil
		})
	}
	_ = eg.Wait()

	// Files never scheduled because of cancellation are left out.
	summary.Results = lo.Filter(results, func(res Result, _ int) bool { return res.Outcome != pending })
	summary.Duration = time.Since(start)
	metrics.RunDuration.Observe(summary.Duration.Seconds())
	metrics.LastRunTimestamp.SetToCurrentTime()

	if r.journal != nil {
		// The run is closed even when cancelled so the journal shows it ended.
		if _, err := r.journal.FinishRun(context.WithoutCancel(ctx), summary.RunID); err != nil {
			r.log.WarnContext(ctx, "finishing journal run", "run", summary.RunID, "error", err)
		}
	}

	r.log.InfoContext(ctx, "run complete",
		"renamed", summary.Count(Renamed),
		"skipped", summary.Count(Skipped),
		"unsupported", summary.Count(Unsupported),
		"exists", summary.Count(Exists),
		"failed", summary.Count(Failed),
		"duration", summary.Duration.Round(time.Millisecond),
	)

	if ctx.Err() != nil {
		return summary, fmt.Errorf("run interrupted: %w", context.Cause(ctx))
	}
	return summary, nil
}

// plan transliterates every name up front. Names are handled in order, so
// when two sources map to the same Latin name the first one keeps it.
// Results that still need a copy are left pending.
func (r *Renamer) plan(ctx context.Context, names []string) []Result {
	results := make([]Result, len(names))
	claimed := make(map[string]string, len(names))

	for i, name := range names {
		res := Result{Source: name}

		target, err := transliteration.Translate(name, r.cfg.Variant)
		var unsupported *transliteration.UnsupportedLetterError
		switch {
		case errors.Is(err, transliteration.ErrNoCyrillic):
			res.Outcome, res.Err = Skipped, err
			r.log.DebugContext(ctx, "nothing to transliterate", "file", name)
		case errors.As(err, &unsupported):
			res.Outcome, res.Err = Unsupported, err
			r.log.WarnContext(ctx, "unsupported letter", "file", name, "letter", string(unsupported.Letter), "language", unsupported.Language.Name())
		case err != nil:
			res.Outcome, res.Err = Failed, err
			r.log.ErrorContext(ctx, "transliterating", "file", name, "error", err)
		default:
			res.Target = target
			if owner, ok := claimed[target]; ok {
				res.Outcome = Exists
				res.Err = fmt.Errorf("%w: %s is also produced by %s", errTargetExists, target, owner)
				r.log.WarnContext(ctx, "name collision", "file", name, "target", target, "other", owner)
			} else {
				claimed[target] = name
			}
		}
		results[i] = res
	}
	return results
}

// transfer copies a planned file into outDir, or only checks the target in
// a dry run.
func (r *Renamer) transfer(ctx context.Context, dir, outDir string, res Result) Result {
	dst := filepath.Join(outDir, res.Target)

	if r.cfg.DryRun {
		if _, err := os.Lstat(dst); err == nil {
			res.Outcome, res.Err = Exists, errTargetExists
			return res
		}
		res.Outcome = Renamed
		r.log.InfoContext(ctx, "would rename", "from", res.Source, "to", res.Target)
		return res
	}

	copyStart := time.Now()
	err := copyFile(filepath.Join(dir, res.Source), dst)
	metrics.CopyDuration.Observe(time.Since(copyStart).Seconds())
	switch {
	case errors.Is(err, errTargetExists):
		res.Outcome, res.Err = Exists, err
		r.log.WarnContext(ctx, "target exists", "file", res.Source, "target", res.Target)
	case err != nil:
		res.Outcome, res.Err = Failed, err
		r.log.ErrorContext(ctx, "copying file", "file", res.Source, "target", res.Target, "error", err)
	default:
		res.Outcome = Renamed
		r.log.InfoContext(ctx, "renamed", "from", res.Source, "to", res.Target)
	}
	return res
}

func (r *Renamer) record(ctx context.Context, runID int64, res Result) {
	metrics.FilesTotal.WithLabelValues(string(res.Outcome), r.cfg.Variant.String()).Inc()
	if r.journal == nil {
		return
	}

	var errText string
	if res.Err != nil {
		errText = res.Err.Error()
	}
	_, err := r.journal.RecordEntry(context.WithoutCancel(ctx), db.RecordEntryParams{
		RunID:   runID,
		Source:  res.Source,
		Target:  db.NullString(res.Target),
		Outcome: string(res.Outcome),
		Error:   db.NullString(errText),
	})
	if err != nil {
		r.log.WarnContext(ctx, "recording journal entry", "file", res.Source, "error", err)
	}
}
