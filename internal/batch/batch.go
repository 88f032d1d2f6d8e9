// Package batch validates every draw file in a directory against one
// tournament format. Files are checked concurrently; the validator is
// read-only, so one instance serves all workers.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/albapepper/drawcert/internal/draw"
	"github.com/albapepper/drawcert/internal/loader"
	"github.com/albapepper/drawcert/internal/tournament"
	"github.com/albapepper/drawcert/internal/validate"
)

const defaultWorkers = 4

// Item tracks the outcome for a single draw file.
type Item struct {
	File     string
	Season   string
	Valid    bool
	Errors   []string
	Warnings []string
	LoadErr  string // non-empty when the file never reached validation
	Duration time.Duration
}

// Summary returns a human-readable summary.
func (it Item) Summary() string {
	status := "ok"
	switch {
	case it.LoadErr != "":
		status = "LOAD FAILED"
	case !it.Valid:
		status = "INVALID"
	}
	return fmt.Sprintf("file=%s season=%s errors=%d warnings=%d status=%s dur=%s",
		it.File, it.Season, len(it.Errors), len(it.Warnings), status,
		it.Duration.Round(time.Millisecond))
}

// Result tracks the outcome of a full batch run.
type Result struct {
	FilesFound int
	Validated  int
	Valid      int
	Invalid    int
	LoadFailed int
	Duration   time.Duration
	Items      []Item
}

// Summary returns a human-readable summary.
func (r Result) Summary() string {
	return fmt.Sprintf("found=%d validated=%d valid=%d invalid=%d load_failed=%d dur=%s",
		r.FilesFound, r.Validated, r.Valid, r.Invalid, r.LoadFailed,
		r.Duration.Round(time.Millisecond))
}

// OK reports whether at least one draw was found and every draw loaded and
// passed validation.
func (r Result) OK() bool {
	return r.FilesFound > 0 && r.Valid == r.FilesFound
}

// Run validates every *.json file under dir as a draw for the given clubs
// and format. Items come back in file-name order regardless of which worker
// finished first; per-file problems are recorded on the item, never aborting
// the rest of the batch. Cancelling ctx stops the run early.
func Run(ctx context.Context, dir string, clubs []*draw.Club, format tournament.Format, workers int, logger *slog.Logger) (Result, error) {
	start := time.Now()

	// Glob returns the files already sorted.
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return Result{}, fmt.Errorf("scanning %s: %w", dir, err)
	}

	result := Result{FilesFound: len(files), Items: make([]Item, len(files))}
	if len(files) == 0 {
		logger.Info("No draw files found", "dir", dir)
		result.Duration = time.Since(start)
		return result, nil
	}

	v := validate.New(format)

	if workers < 1 {
		workers = defaultWorkers
	}
	if workers > len(files) {
		workers = len(files)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, file := range files {
		i, file := i, file // per-iteration copies; required while go.mod targets go < 1.22
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result.Items[i] = validateFile(file, clubs, v)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		result.Duration = time.Since(start)
		return result, err
	}

	for _, it := range result.Items {
		switch {
		case it.LoadErr != "":
			result.LoadFailed++
		case it.Valid:
			result.Validated++
			result.Valid++
		default:
			result.Validated++
			result.Invalid++
		}
	}
	result.Duration = time.Since(start)

	logger.Info("Batch validation complete", "dir", dir, "summary", result.Summary())
	return result, nil
}

func validateFile(path string, clubs []*draw.Club, v *validate.Validator) Item {
	start := time.Now()
	it := Item{File: filepath.Base(path)}

	d, err := loader.Draw(path, clubs, v.Format())
	if err != nil {
		it.LoadErr = err.Error()
		it.Duration = time.Since(start)
		return it
	}

	report := v.Validate(d)
	it.Season = d.Season()
	it.Valid = report.Valid
	it.Errors = report.Errors
	it.Warnings = report.Warnings
	it.Duration = time.Since(start)
	return it
}
