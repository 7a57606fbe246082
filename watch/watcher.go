// Package watch reports changes to the files of a single directory.
// Changes are collected until the directory has been quiet for the debounce
// period and then published as one Event.
//
//	w, err := watch.New(&cfg)
//	defer w.Stop()
//	w.Events().Observe(func(e watch.Event) { refresh(e.Dir) })
//	w.Watch("/shots/010")
//	w.Start(ctx)
package watch

import (
	"context"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tailored-agentic-units/seqkit/observability"
	"github.com/tailored-agentic-units/seqkit/observable"
)

const minTick = 10 * time.Millisecond

// Event is one batch of changes.
type Event struct {
	Dir   string
	Paths []string // Changed entries, sorted.
	Time  time.Time
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithObserver overrides the default NoOpObserver.
func WithObserver(o observability.Observer) Option {
	return func(w *Watcher) { w.observer = o }
}

// Watcher watches one directory at a time.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	events   *observable.Value[Event]
	observer observability.Observer

	// watchMu serializes Watch. fsnotify calls are made without holding mu
	// so the event loop is never blocked behind them.
	watchMu sync.Mutex

	mu      sync.Mutex
	dir     string
	pending map[string]struct{}
	last    time.Time
	running bool
	closed  bool

	stopCh chan struct{}
	doneCh chan struct{}
}

// New creates a stopped Watcher with no directory.
func New(cfg *Config, opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWatchFailed, err)
	}

	w := &Watcher{
		fsw:      fsw,
		debounce: cfg.debounce(),
		events:   observable.NewValue(Event{}),
		observer: observability.NoOpObserver{},
		pending:  make(map[string]struct{}),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Events publishes every batch, including batches equal to the previous one.
func (w *Watcher) Events() observable.Source[Event] {
	return w.events
}

// Dir returns the watched directory, or "" when none is set.
func (w *Watcher) Dir() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dir
}

// Watch switches to dir, discarding pending changes of the previous
// directory. An empty dir stops watching without stopping the Watcher.
func (w *Watcher) Watch(dir string) error {
	if dir != "" {
		dir = filepath.Clean(dir)
	}

	w.watchMu.Lock()
	defer w.watchMu.Unlock()

	w.mu.Lock()
	closed, old := w.closed, w.dir
	w.mu.Unlock()

	switch {
	case closed:
		return ErrClosed
	case dir == old:
		return nil
	}

	if dir != "" {
		if err := w.fsw.Add(dir); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWatchFailed, dir, err)
		}
	}
	if old != "" {
		// The old directory may already be gone.
		_ = w.fsw.Remove(old)
	}

	w.mu.Lock()
	w.dir = dir
	clear(w.pending)
	w.mu.Unlock()

	observability.Emit(context.Background(), w.observer, EventDir, observability.LevelVerbose, "watch.Watcher", map[string]any{
		"dir": dir,
	})
	return nil
}

// Start runs the event loop in a new goroutine until ctx is done or Stop is
// called. Starting a running Watcher does nothing.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch {
	case w.closed:
		return ErrClosed
	case w.running:
		return nil
	}
	w.running = true

	go w.run(ctx)
	return nil
}

// Stop ends the event loop and releases the watch. It is safe to call more
// than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	running := w.running
	w.mu.Unlock()

	close(w.stopCh)
	if running {
		<-w.doneCh
	}

	if err := w.fsw.Close(); err != nil {
		observability.Emit(context.Background(), w.observer, EventError, observability.LevelWarning, "watch.Watcher", map[string]any{
			"error": err.Error(),
		})
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(max(w.debounce/2, minTick))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ev)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			observability.Emit(ctx, w.observer, EventError, observability.LevelWarning, "watch.Watcher", map[string]any{
				"error": err.Error(),
			})

		case now := <-ticker.C:
			w.flush(ctx, now)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	// Chmod alone does not change a listing.
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.dir == "" || filepath.Dir(ev.Name) != w.dir {
		return
	}
	w.pending[ev.Name] = struct{}{}
	w.last = time.Now()
}

func (w *Watcher) flush(ctx context.Context, now time.Time) {
	w.mu.Lock()
	if len(w.pending) == 0 || now.Sub(w.last) < w.debounce {
		w.mu.Unlock()
		return
	}
	batch := Event{
		Dir:   w.dir,
		Paths: slices.Sorted(maps.Keys(w.pending)),
		Time:  now,
	}
	clear(w.pending)
	w.mu.Unlock()

	w.events.SetAlways(batch)

	observability.Emit(ctx, w.observer, EventChange, observability.LevelVerbose, "watch.Watcher", map[string]any{
		"dir":   batch.Dir,
		"paths": len(batch.Paths),
	})
}
