// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package watch re-runs the migration each time an info.yaml changes on disk
// and hands every result to a display.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/tinytapeout/tt-upgrade/internal/logging"
	"github.com/tinytapeout/tt-upgrade/internal/shell"
	"github.com/tinytapeout/tt-upgrade/pkg/types"
)

// DefaultDebounce is used when the configured debounce is not positive.
const DefaultDebounce = 100 * time.Millisecond

// Handler receives the result of each migration run. Calls are sequential.
type Handler func(shell.Output)

// Watcher migrates one file whenever it settles after a change.
type Watcher struct {
	path     string
	debounce time.Duration
	handle   Handler
	run      func(raw string) shell.Output

	// last holds the content of the most recent run, so saves that do not
	// change the file do not re-render.
	last    string
	hasLast bool
}

// New returns a Watcher for the file at path.
func New(path string, cfg types.WatchConfig, handle Handler) (*Watcher, error) {
	if handle == nil {
		return nil, errors.New("watch: nil handler")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		path:     filepath.Clean(abs),
		debounce: debounce,
		handle:   handle,
		run:      shell.Run,
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Run migrates the file once, then again after every settled change, until
// ctx is cancelled. The containing directory is watched so that editors
// which save by renaming a temporary file are still followed.
func (w *Watcher) Run(ctx context.Context) error {
	log := logging.Logger().With(zap.String("path", w.path))

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	log.Info("watching", zap.Duration("debounce", w.debounce))

	w.runOnce(log)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("watch stopped")
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			log.Debug("file event", zap.Stringer("op", event.Op))
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))

		case <-timer.C:
			w.runOnce(log)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)
}

func (w *Watcher) runOnce(log *zap.Logger) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		log.Warn("read failed", zap.Error(err))
		w.hasLast = false
		w.handle(shell.Output{Failed: true, Err: fmt.Sprintf("reading %s: %v", w.path, err)})
		return
	}

	raw := string(data)
	if w.hasLast && raw == w.last {
		log.Debug("content unchanged")
		return
	}
	w.last, w.hasLast = raw, true

	w.handle(w.run(raw))
}
