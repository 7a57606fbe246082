// Package browser models directory navigation: a current directory with
// back/forward history, listing options, and the resulting entries.
package browser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/tailored-agentic-units/seqkit/observability"
	"github.com/tailored-agentic-units/seqkit/observable"
	"github.com/tailored-agentic-units/seqkit/seqpath"
	"github.com/tailored-agentic-units/seqkit/watch"
)

// Option configures a Model.
type Option func(*Model)

// WithObserver overrides the default NoOpObserver.
func WithObserver(o observability.Observer) Option {
	return func(m *Model) { m.observer = o }
}

// Model is the navigation state. It is safe for concurrent use; Bind
// refreshes from the watcher goroutine while callers navigate.
type Model struct {
	path       *observable.Value[seqpath.Path]
	hasBack    *observable.Value[bool]
	hasForward *observable.Value[bool]
	options    *observable.Value[seqpath.DirListOptions]
	extensions *observable.List[string]
	extension  *observable.Value[string]
	entries    *observable.Value[[]seqpath.DirEntry]

	observer observability.Observer

	// mu guards the history. Observers of Path, HasBack, and HasForward
	// run with it held and must not navigate.
	mu      sync.Mutex
	history []seqpath.Path
	current int

	// refreshMu serializes listing and publishing entries.
	refreshMu sync.Mutex
}

// New creates a Model positioned at dir, or at the working directory when
// dir is empty.
func New(dir string, cfg *Config, opts ...Option) (*Model, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("working directory: %w", err)
		}
		dir = wd
	}

	listOpts := cfg.dirList()
	start := seqpath.ParseWithOptions(filepath.Clean(dir), listOpts.PathOptions())

	m := &Model{
		path:       observable.NewValue(start),
		hasBack:    observable.NewValue(false),
		hasForward: observable.NewValue(false),
		options:    observable.NewValue(listOpts),
		extensions: observable.NewList(cfg.Extensions...),
		extension:  observable.NewValue(""),
		entries:    observable.NewValue[[]seqpath.DirEntry](nil),
		observer:   observability.NoOpObserver{},
		history:    []seqpath.Path{start},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func (m *Model) Path() observable.Source[seqpath.Path]              { return m.path }
func (m *Model) HasBack() observable.Source[bool]                   { return m.hasBack }
func (m *Model) HasForward() observable.Source[bool]                { return m.hasForward }
func (m *Model) Options() observable.Source[seqpath.DirListOptions] { return m.options }
func (m *Model) Extensions() observable.ListSource[string]          { return m.extensions }
func (m *Model) Extension() observable.Source[string]               { return m.extension }

// Entries is the latest listing produced by Refresh.
func (m *Model) Entries() observable.Source[[]seqpath.DirEntry] { return m.entries }

// SetDir parses dir with the current options and navigates to it.
func (m *Model) SetDir(dir string) {
	m.SetPath(seqpath.ParseWithOptions(filepath.Clean(dir), m.options.Get().PathOptions()))
}

// SetPath drops the forward history and navigates to p unless p is
// already the newest entry.
func (m *Model) SetPath(p seqpath.Path) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.history = m.history[:m.current+1]
	if p.Equal(m.history[len(m.history)-1]) {
		return
	}
	m.history = append(m.history, p)
	m.current++
	m.publish()

	observability.Emit(context.Background(), m.observer, EventPath, observability.LevelInfo, "browser.Model", map[string]any{
		"path": p.Get(),
	})
}

// Forward moves to the next path in the history, if any.
func (m *Model) Forward() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current < len(m.history)-1 {
		m.current++
		m.publish()
	}
}

// Back moves to the previous path in the history, if any.
func (m *Model) Back() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current > 0 {
		m.current--
		m.publish()
	}
}

// History returns a copy of the navigation history and the current index.
func (m *Model) History() ([]seqpath.Path, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.history), m.current
}

// publish must be called with mu held.
func (m *Model) publish() {
	m.path.SetIfChanged(m.history[m.current])
	m.hasForward.SetIfChanged(m.current < len(m.history)-1)
	m.hasBack.SetIfChanged(m.current > 0)
}

func (m *Model) SetOptions(opts seqpath.DirListOptions) { m.options.SetIfChanged(opts) }
func (m *Model) SetExtensions(exts []string)            { m.extensions.SetIfChanged(exts) }

// SetExtension restricts listings to one extension; "" lists everything.
func (m *Model) SetExtension(ext string) { m.extension.SetIfChanged(ext) }

// Refresh lists the current directory and publishes the entries when they
// differ from the previous listing.
func (m *Model) Refresh(ctx context.Context) error {
	m.refreshMu.Lock()
	defer m.refreshMu.Unlock()

	dir := m.path.Get().Get()
	opts := m.options.Get()
	if ext := m.extension.Get(); ext != "" {
		opts.FilterExt = []string{ext}
	}

	entries, err := seqpath.DirList(ctx, dir, opts)
	if err != nil {
		return err
	}
	changed := m.entries.SetIfChanged(entries)

	observability.Emit(ctx, m.observer, EventRefresh, observability.LevelVerbose, "browser.Model", map[string]any{
		"dir":     dir,
		"entries": len(entries),
		"changed": changed,
	})
	return nil
}

// Bind points w at the current directory, follows navigation, and
// refreshes the entries on navigation, option changes, and filesystem
// changes. The returned func undoes the binding; it does not stop w.
func (m *Model) Bind(ctx context.Context, w *watch.Watcher) func() {
	refresh := func() {
		if err := m.Refresh(ctx); err != nil {
			m.reportError(ctx, err)
		}
	}
	follow := func(p seqpath.Path) {
		if err := w.Watch(p.Get()); err != nil {
			m.reportError(ctx, err)
		}
		refresh()
	}

	follow(m.path.Get())

	handles := []*observable.Observer{
		m.path.Observe(follow),
		m.options.Observe(func(seqpath.DirListOptions) { refresh() }),
		m.extension.Observe(func(string) { refresh() }),
		w.Events().Observe(func(e watch.Event) {
			if e.Dir == filepath.Clean(m.path.Get().Get()) {
				refresh()
			}
		}),
	}

	return func() {
		for _, h := range handles {
			h.Close()
		}
	}
}

func (m *Model) reportError(ctx context.Context, err error) {
	observability.Emit(ctx, m.observer, EventError, observability.LevelWarning, "browser.Model", map[string]any{
		"error": err.Error(),
	})
}
