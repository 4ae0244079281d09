package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces the bursts of events editors produce for one save.
const debounceDelay = 100 * time.Millisecond

// WatchResult is the outcome of one regeneration triggered by a change.
type WatchResult struct {
	// Trigger is the schema file whose change started the run
	Trigger string
	Report  *Report
	Err     error
}

// Watch regenerates whenever one of files is written or re-created, calling
// onResult after each run. Runs are serialized. Watch blocks until ctx is done.
func (e *Engine) Watch(ctx context.Context, files []string, opts GenerateOptions, onResult func(WatchResult)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	watched := make(map[string]bool, len(files))
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", f, err)
		}
		watched[abs] = true

		// Watch parent directories; a save may replace the file.
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	e.logger.Info("watching schemas", "files", len(files), "dirs", len(dirs))

	return e.watchLoop(ctx, watcher, watched, files, opts, onResult)
}

// watchLoop handles file system events.
func (e *Engine) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, watched map[string]bool,
	files []string, opts GenerateOptions, onResult func(WatchResult)) error {
	// Debounce timer
	var debounceTimer *time.Timer
	var fire <-chan time.Time
	var trigger string

	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// Only handle write/create events for watched schemas
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}

			trigger = event.Name
			if debounceTimer == nil {
				debounceTimer = time.NewTimer(debounceDelay)
			} else {
				debounceTimer.Reset(debounceDelay)
			}
			fire = debounceTimer.C

		case <-fire:
			fire = nil
			e.logger.Info("change detected", "file", trigger)
			report, err := e.Generate(ctx, files, opts)
			if ctx.Err() != nil {
				return nil
			}
			if onResult != nil {
				onResult(WatchResult{Trigger: trigger, Report: report, Err: err})
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			e.logger.Warn("watcher error", "error", err)
		}
	}
}
