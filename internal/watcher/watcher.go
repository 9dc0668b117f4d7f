// Package watcher reports when a SQLite database file is written by another
// process, so an open chart can reload its items.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change is emitted once per burst of writes to the watched database.
type Change struct {
	Path string
	At   time.Time
}

// Watcher follows one database file together with its -wal and -shm
// companions. It watches the parent directory because SQLite replaces and
// truncates those files rather than only writing them in place.
type Watcher struct {
	path     string
	debounce time.Duration

	fs      *fsnotify.Watcher
	changes chan Change
	errs    chan error

	closeOnce sync.Once
	done      chan struct{}

	mu     sync.Mutex
	closed bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounceDuration.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// New starts watching path. Events flow until ctx is cancelled or Close is
// called; the Changes channel is then closed.
func New(ctx context.Context, path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watcher: resolving %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watcher: create: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watcher: watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:    abs,
		fs:      fsw,
		changes: make(chan Change, 1),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	go w.loop(ctx)
	return w, nil
}

// Changes delivers debounced change notifications.
func (w *Watcher) Changes() <-chan Change { return w.changes }

// Errors delivers fsnotify errors. Errors are dropped when nobody reads them.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Path is the absolute path of the watched database.
func (w *Watcher) Path() string { return w.path }

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

// Matches reports whether name is the database or one of its journal files.
func (w *Watcher) Matches(name string) bool {
	name = filepath.Clean(name)
	if !filepath.IsAbs(name) {
		if abs, err := filepath.Abs(name); err == nil {
			name = abs
		}
	}
	if name == w.path {
		return true
	}
	suffix, ok := strings.CutPrefix(name, w.path)
	return ok && (suffix == "-wal" || suffix == "-shm" || suffix == "-journal")
}

func (w *Watcher) loop(ctx context.Context) {
	debouncer := NewDebouncer(w.debounce)
	defer debouncer.Cancel()

	defer func() {
		_ = w.Close()
		w.mu.Lock()
		w.closed = true
		close(w.changes)
		w.mu.Unlock()
	}()

	emit := func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.closed {
			return
		}
		select {
		case w.changes <- Change{Path: w.path, At: time.Now()}:
		default:
			// A notification is already pending; the reader reloads once.
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		case evt, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !w.Matches(evt.Name) {
				continue
			}
			debouncer.Trigger(emit)
		}
	}
}
