package templating

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultReloadDebounce batches filesystem events before re-parsing.
const DefaultReloadDebounce = 200 * time.Millisecond

// Reloader is a Source that re-parses templates when files under the watched
// directory change. A failed reload is logged and the last good engine stays
// active, so a broken edit never takes the running process down; the startup
// fail-fast policy applies to startup only.
type Reloader struct {
	current  atomic.Pointer[Engine]
	load     func() (*Engine, error)
	dir      string
	logger   *slog.Logger
	debounce time.Duration
}

// ReloaderOption configures a Reloader.
type ReloaderOption func(*Reloader)

// WithReloadLogger sets the logger for reload outcomes.
func WithReloadLogger(logger *slog.Logger) ReloaderOption {
	return func(r *Reloader) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithReloadDebounce sets how long to wait after the last filesystem event
// before re-parsing.
func WithReloadDebounce(d time.Duration) ReloaderOption {
	return func(r *Reloader) {
		if d > 0 {
			r.debounce = d
		}
	}
}

// NewReloader creates a reloading Source over the given template directory.
// The initial load must succeed; later reload failures keep the last good set.
func NewReloader(dir string, load func() (*Engine, error), opts ...ReloaderOption) (*Reloader, error) {
	r := &Reloader{
		load:     load,
		dir:      dir,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		debounce: DefaultReloadDebounce,
	}
	for _, opt := range opts {
		opt(r)
	}

	engine, err := load()
	if err != nil {
		return nil, err
	}
	r.current.Store(engine)
	return r, nil
}

// Engine returns the most recently parsed engine.
func (r *Reloader) Engine() *Engine {
	return r.current.Load()
}

// Reload re-parses templates immediately. On failure the previous engine
// remains active and the error is returned.
func (r *Reloader) Reload() error {
	engine, err := r.load()
	if err != nil {
		return err
	}
	r.current.Store(engine)
	return nil
}

// Watch blocks watching the template directory (recursively) until the
// context is canceled. File changes trigger a debounced reload.
func (r *Reloader) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := addRecursive(watcher, r.dir); err != nil {
		return err
	}

	r.logger.Info("watching templates", slog.String("dir", r.dir))

	var timer *time.Timer
	reload := make(chan struct{}, 1)
	schedule := func() {
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(r.debounce, func() {
			select {
			case reload <- struct{}{}:
			default:
			}
		})
	}
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// New subdirectories must be watched too.
			if event.Has(fsnotify.Create) {
				_ = addRecursive(watcher, event.Name)
			}
			if event.Has(fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename) {
				schedule()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Error("template watcher error", slog.Any("error", err))

		case <-reload:
			if err := r.Reload(); err != nil {
				r.logger.Error("template reload failed, keeping previous set",
					slog.Any("error", err))
				continue
			}
			r.logger.Info("templates reloaded", slog.String("dir", r.dir))
		}
	}
}

// addRecursive watches dir and every directory below it.
// Non-directory paths are ignored.
func addRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		return watcher.Add(path)
	})
}
