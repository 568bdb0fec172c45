// Package watch re-runs a check whenever watched files change on disk.
//
// Events are debounced so that a burst of writes, such as an editor save
// or a branch switch, triggers a single re-run instead of one per file.
package watch

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the loop waits after the last event before
// re-running the check.
const DefaultDebounce = 100 * time.Millisecond

// CheckFunc is one full check cycle. It runs once up front and again
// after every debounced batch of file events.
type CheckFunc func(ctx context.Context) error

// Options adjust the watch loop.
type Options struct {
	// Debounce overrides DefaultDebounce when positive.
	Debounce time.Duration

	// Extra lists files outside the checked tree whose changes also
	// trigger a re-run, such as the active config file.
	Extra []string

	// Log receives human-readable progress notes. Nil discards them.
	Log io.Writer
}

// Run performs one check immediately, then repeats it after every change
// to a watched file until ctx is cancelled. A failing check is reported
// to opts.Log and does not stop the loop; only cancellation does.
func Run(ctx context.Context, paths []string, check CheckFunc, opts Options) error {
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	logw := opts.Log
	if logw == nil {
		logw = io.Discard
	}
	if len(paths) == 0 {
		paths = []string{"."}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Explicitly named files match events by exact path; directories
	// match any *.sg file below them.
	explicit := make(map[string]struct{})
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("failed to stat %q: %w", path, err)
		}
		if info.IsDir() {
			if err := watchTree(watcher, path); err != nil {
				return fmt.Errorf("failed to watch %q: %w", path, err)
			}
			continue
		}
		explicit[filepath.Clean(path)] = struct{}{}
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			return fmt.Errorf("failed to watch %q: %w", path, err)
		}
	}
	for _, path := range opts.Extra {
		explicit[filepath.Clean(path)] = struct{}{}
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			return fmt.Errorf("failed to watch %q: %w", path, err)
		}
	}

	runCheck := func() error {
		if err := check(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintf(logw, "check failed: %v\n", err)
		}
		return nil
	}

	if err := runCheck(); err != nil {
		return err
	}
	fmt.Fprintf(logw, "watching for changes, press Ctrl+C to stop\n")

	timer := time.NewTimer(debounce)
	defer timer.Stop()
	disarm := func() {
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
	}
	disarm()
	schedule := func() {
		disarm()
		timer.Reset(debounce)
	}

	last := ""
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					// New directories join the watch so that files
					// created inside them keep triggering re-runs.
					if !strings.HasPrefix(filepath.Base(ev.Name), ".") {
						_ = watchTree(watcher, ev.Name)
						last = ev.Name
						schedule()
					}
					continue
				}
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !triggers(ev.Name, explicit) {
				continue
			}
			last = ev.Name
			schedule()

		case <-timer.C:
			fmt.Fprintf(logw, "change detected: %s\n", filepath.Base(last))
			if err := runCheck(); err != nil {
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(logw, "watch error: %v\n", err)
		}
	}
}

// triggers reports whether a change to name warrants a re-run.
func triggers(name string, explicit map[string]struct{}) bool {
	if filepath.Ext(name) == ".sg" {
		return true
	}
	_, ok := explicit[filepath.Clean(name)]
	return ok
}

// watchTree registers root and every non-hidden directory below it.
func watchTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.Add(path)
	})
}
