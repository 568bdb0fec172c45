// Package driver orchestrates a whole checking run: collect the files,
// fan the per-file check-fix loop out over a worker pool, and assemble
// the deterministic report the renderers consume.
//
// The loop is file-local, so files parallelize freely. The registry and
// the configuration are read-only after load and shared by every worker;
// each worker owns its FileSet. Output order never depends on
// scheduling: results land in a slice indexed by collection position and
// the merged records are sorted canonically at the end.
package driver

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"sgstyle/internal/checker"
	"sgstyle/internal/config"
	"sgstyle/internal/diag"
	"sgstyle/internal/observ"
	"sgstyle/internal/rule"
	"sgstyle/internal/srcmodel"
)

// ErrNoParser is returned by Run when the options carry no parser.
var ErrNoParser = errors.New("driver: no parser configured")

// Options configures one Run.
type Options struct {
	// Fix applies safe fixes and rewrites changed files in place.
	Fix bool
	// Jobs bounds the worker pool; values <= 0 mean GOMAXPROCS.
	Jobs int
	// Parser turns file revisions into token streams. Required.
	Parser srcmodel.Parser
	// Cache short-circuits unchanged files in check-only mode. Nil
	// disables caching; fix runs never consult it.
	Cache *Cache
	// Observer, when set, receives start and done events per file. It is
	// called from worker goroutines and must be safe for concurrent use.
	Observer FileObserver
	// Timer, when set, records the collect and check phases.
	Timer *observ.Timer
}

// Report is the outcome of one Run.
type Report struct {
	// Results holds one entry per collected file, in collection order.
	// After a cancelled run, entries for files that never ran keep their
	// zero value with an empty Path.
	Results []checker.RunResult
	// Bag holds every record of every completed file, canonically sorted.
	Bag *diag.Bag
	// FilesChecked counts the collected files, cached hits included.
	FilesChecked int
	// Duration is the wall time of the whole run.
	Duration time.Duration
}

// Outcome is the worst per-file outcome, OutcomeClean for an empty run.
func (r *Report) Outcome() checker.Outcome {
	worst := checker.OutcomeClean
	for i := range r.Results {
		if r.Results[i].Outcome > worst {
			worst = r.Results[i].Outcome
		}
	}
	return worst
}

// Run checks every file reachable from paths. The error return covers
// run-level failures only: bad arguments or cancellation. Per-file
// problems, unreadable files included, surface as tool-category records
// inside the report. On cancellation the report still carries whatever
// completed, alongside the error.
func Run(ctx context.Context, paths []string, cfg *config.Config, reg *rule.Registry, opts Options) (*Report, error) {
	if opts.Parser == nil {
		return nil, ErrNoParser
	}
	started := time.Now()

	collectPhase := opts.Timer.Begin("collect")
	files, err := CollectFiles(paths)
	if err != nil {
		return nil, err
	}
	opts.Timer.End(collectPhase, countNote(len(files)))

	report := &Report{
		Results:      make([]checker.RunResult, len(files)),
		FilesChecked: len(files),
	}

	checkPhase := opts.Timer.Begin("check")
	var waitErr error
	if len(files) > 0 {
		jobs := opts.Jobs
		if jobs <= 0 {
			jobs = runtime.GOMAXPROCS(0)
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(min(jobs, len(files)))

		for i, path := range files {
			g.Go(func(i int, path string) func() error {
				return func() error {
					select {
					case <-gctx.Done():
						return gctx.Err()
					default:
					}

					opts.observe(FileEvent{
						Path: path, Index: i, Total: len(files),
						Status: FileStart,
					})
					fileStart := time.Now()

					res, fromCache := runFile(opts.Parser, reg, cfg, opts.Cache, path, opts.Fix)
					// The index is unique per goroutine, no mutex needed.
					report.Results[i] = res

					opts.observe(FileEvent{
						Path: path, Index: i, Total: len(files),
						Status: FileDone, Outcome: res.Outcome,
						FromCache: fromCache, Elapsed: time.Since(fileStart),
					})
					return nil
				}
			}(i, path))
		}
		waitErr = g.Wait()
	}
	opts.Timer.End(checkPhase, countNote(len(files)))

	total := 0
	for i := range report.Results {
		total += len(report.Results[i].Records)
	}
	bag := diag.NewBag(total)
	for i := range report.Results {
		for _, r := range report.Results[i].Records {
			bag.Add(r)
		}
	}
	bag.Sort()
	report.Bag = bag
	report.Duration = time.Since(started)
	return report, waitErr
}

func (o Options) observe(ev FileEvent) {
	if o.Observer != nil {
		o.Observer(ev)
	}
}

func countNote(n int) string {
	if n == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", n)
}
