// Package watch re-runs a callback when files under a set of directories
// change.
package watch

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/thoreinstein/folio/internal/errors"
	"github.com/thoreinstein/folio/internal/logging"
	"github.com/thoreinstein/folio/internal/paths"
)

// DefaultDebounce is the quiet period used when Run is given zero.
const DefaultDebounce = 100 * time.Millisecond

// Watcher watches directory trees recursively.
type Watcher struct {
	fsw *fsnotify.Watcher
}

// New starts watching every directory under dirs. Hidden directories are
// skipped. The caller must Run or Close the watcher.
func New(dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating watcher")
	}
	w := &Watcher{fsw: fsw}
	for _, dir := range dirs {
		if err := w.addTree(dir); err != nil {
			fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

// Watch is New followed by Run.
func Watch(ctx context.Context, dirs []string, debounce time.Duration, fn func(context.Context) error) error {
	w, err := New(dirs...)
	if err != nil {
		return err
	}
	return w.Run(ctx, debounce, fn)
}

// Close stops watching. Run closes the watcher itself when it returns.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, "walking %s", p)
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && hidden(p) {
			return filepath.SkipDir
		}
		return errors.Wrapf(w.fsw.Add(p), "watching %s", p)
	})
}

// Run calls fn once per burst of changes, after debounce has passed without
// a further event. Calls never overlap. An error from fn is logged and
// watching continues. Run returns nil when ctx is done.
func (w *Watcher) Run(ctx context.Context, debounce time.Duration, fn func(context.Context) error) error {
	defer w.fsw.Close()

	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	logger := logging.FromContext(ctx)

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}
			if !relevant(event) {
				continue
			}
			logger.Debug("change detected", "path", event.Name, "op", event.Op.String())

			if event.Has(fsnotify.Create) && paths.IsDir(event.Name) {
				if err := w.addTree(event.Name); err != nil {
					logger.Warn("watching new directory", "path", event.Name, "error", err)
				}
			}
			timer.Reset(debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errors.New("watcher error channel closed")
			}
			logger.Error("watch error", "error", err)

		case <-timer.C:
			if err := fn(ctx); err != nil {
				logger.Error("rebuild failed", "error", err)
			}
		}
	}
}

// relevant drops chmod-only events and changes to hidden files, which
// include folio's own temp files.
func relevant(e fsnotify.Event) bool {
	if !e.Has(fsnotify.Create) && !e.Has(fsnotify.Write) && !e.Has(fsnotify.Remove) && !e.Has(fsnotify.Rename) {
		return false
	}
	return !hidden(e.Name)
}

func hidden(p string) bool {
	return strings.HasPrefix(filepath.Base(p), ".")
}
