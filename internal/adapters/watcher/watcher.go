// Package watcher reports changes to the files a kernel build depends on.
package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/ukbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultWindow is the quiet period after the last event before a batch is reported.
const DefaultWindow = 300 * time.Millisecond

var _ ports.FileWatcher = (*Watcher)(nil)

// Watcher implements ports.FileWatcher using fsnotify.
//
// The parent directories are watched instead of the files themselves, so
// editors that save by renaming a temporary file are still noticed.
type Watcher struct {
	logger ports.Logger
	window time.Duration
}

// NewWatcher creates a new Watcher.
func NewWatcher(logger ports.Logger) *Watcher {
	return &Watcher{
		logger: logger,
		window: DefaultWindow,
	}
}

// WithWindow sets the debounce window.
func (w *Watcher) WithWindow(window time.Duration) *Watcher {
	w.window = window
	return w
}

// Watch starts watching files until ctx is done.
func (w *Watcher) Watch(ctx context.Context, files []string) (<-chan []string, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create file watcher")
	}

	wanted := make(map[string]struct{}, len(files))
	dirs := make(map[string]struct{})
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			_ = fsWatcher.Close()
			return nil, zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", f)
		}
		wanted[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := fsWatcher.Add(dir); err != nil {
			_ = fsWatcher.Close()
			return nil, zerr.With(zerr.Wrap(err, "failed to watch directory"), "path", dir)
		}
	}

	b := &batches{out: make(chan []string, 1)}
	debouncer := NewDebouncer(w.window, func(paths []string) {
		b.send(ctx, paths)
	})

	go w.loop(ctx, fsWatcher, wanted, debouncer, b)

	return b.out, nil
}

// batches delivers debounced batches and closes the channel exactly once.
type batches struct {
	mu     sync.Mutex
	out    chan []string
	closed bool
}

func (b *batches) send(ctx context.Context, paths []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	select {
	case b.out <- paths:
	case <-ctx.Done():
	}
}

func (b *batches) close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	close(b.out)
}

func (w *Watcher) loop(
	ctx context.Context,
	fsWatcher *fsnotify.Watcher,
	wanted map[string]struct{},
	debouncer *Debouncer,
	b *batches,
) {
	defer b.close()
	defer debouncer.Stop()
	defer fsWatcher.Close() //nolint:errcheck // shutting down

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			if _, ok := wanted[filepath.Clean(event.Name)]; ok {
				debouncer.Add(event.Name)
			}
		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher: " + err.Error())
		}
	}
}

func relevant(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) ||
		event.Has(fsnotify.Rename)
}
