// Package recent keeps an ordered, bounded list of recently used files.
// The newest file is last.
//
//	m := recent.New(&cfg, recent.WithStore(store))
//	_ = m.Load(ctx)
//	m.Add("shot.0001.exr")
//	_ = m.Save(ctx)
package recent

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"sync"

	"github.com/tailored-agentic-units/seqkit/observability"
	"github.com/tailored-agentic-units/seqkit/observable"
	"github.com/tailored-agentic-units/seqkit/settings"
)

// StoreKey is the settings key the model persists under.
const StoreKey = "recent.json"

// Option configures a Model.
type Option func(*Model)

// WithStore enables Load and Save through s.
func WithStore(s settings.Store) Option {
	return func(m *Model) { m.store = s }
}

// WithObserver overrides the default NoOpObserver.
func WithObserver(o observability.Observer) Option {
	return func(m *Model) { m.observer = o }
}

// Model is the recent-files list. All methods are safe for concurrent use,
// but observer callbacks must not call the mutating methods.
type Model struct {
	max   *observable.Value[int]
	files *observable.List[string]

	store    settings.Store
	observer observability.Observer

	// initial is the limit New started with; Reset restores it.
	initial int

	// mu serializes read-modify-write updates across max and files.
	mu sync.Mutex
}

type document struct {
	Max   *int     `json:"max"`
	Files []string `json:"files"`
}

// New creates an empty Model. A non-positive cfg.Max selects the default.
func New(cfg *Config, opts ...Option) *Model {
	limit := cfg.Max
	if limit <= 0 {
		limit = defaultMax
	}

	m := &Model{
		initial:  limit,
		max:      observable.NewValue(limit),
		files:    observable.NewList[string](),
		observer: observability.NoOpObserver{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Max is the observable file limit.
func (m *Model) Max() observable.Source[int] {
	return m.max
}

// Files is the observable file list, oldest first.
func (m *Model) Files() observable.ListSource[string] {
	return m.files
}

// SetMax changes the limit and drops the oldest files that no longer fit.
// Negative values are treated as zero.
func (m *Model) SetMax(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n = max(n, 0)
	if m.max.SetIfChanged(n) {
		m.files.SetIfChanged(trim(m.files.Get(), n))
	}
}

// SetFiles replaces the list with the absolute form of paths, keeping the
// newest entries that fit.
func (m *Model) SetFiles(paths []string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	files := make([]string, 0, len(paths))
	for _, p := range paths {
		files = append(files, absolute(p))
	}
	m.files.SetIfChanged(trim(files, m.max.Get()))
}

// Add moves path to the end of the list, removing any earlier occurrence.
func (m *Model) Add(path string) {
	m.mu.Lock()
	abs := absolute(path)
	files := slices.DeleteFunc(m.files.Get(), func(f string) bool { return f == abs })
	files = trim(append(files, abs), m.max.Get())
	changed := m.files.SetIfChanged(files)
	m.mu.Unlock()

	observability.Emit(context.Background(), m.observer, EventAdd, observability.LevelVerbose, "recent.Model", map[string]any{
		"path":    abs,
		"changed": changed,
	})
}

// Load replaces the model state with the stored document. A missing
// document or a model without a store leaves the state unchanged.
func (m *Model) Load(ctx context.Context) error {
	if m.store == nil {
		return nil
	}

	var doc document
	if err := settings.LoadJSON(ctx, m.store, StoreKey, &doc); err != nil {
		if errors.Is(err, settings.ErrKeyNotFound) {
			return nil
		}
		return err
	}

	if doc.Max != nil {
		m.SetMax(*doc.Max)
	}
	m.SetFiles(doc.Files)

	observability.Emit(ctx, m.observer, EventLoad, observability.LevelInfo, "recent.Model", map[string]any{
		"max":   m.max.Get(),
		"files": m.files.Size(),
	})
	return nil
}

// Save writes the model state. It does nothing without a store.
func (m *Model) Save(ctx context.Context) error {
	if m.store == nil {
		return nil
	}

	m.mu.Lock()
	limit := m.max.Get()
	doc := document{Max: &limit, Files: m.files.Get()}
	m.mu.Unlock()
	if doc.Files == nil {
		doc.Files = []string{}
	}

	if err := settings.SaveJSON(ctx, m.store, StoreKey, doc); err != nil {
		return err
	}

	observability.Emit(ctx, m.observer, EventSave, observability.LevelInfo, "recent.Model", map[string]any{
		"max":   limit,
		"files": len(doc.Files),
	})
	return nil
}

// Reset empties the list, restores the configured limit, and removes the
// stored document.
func (m *Model) Reset(ctx context.Context) error {
	if m.store != nil {
		if err := m.store.Delete(ctx, StoreKey); err != nil {
			return err
		}
	}

	m.mu.Lock()
	m.files.SetIfChanged(nil)
	m.max.SetIfChanged(m.initial)
	m.mu.Unlock()

	observability.Emit(ctx, m.observer, EventReset, observability.LevelInfo, "recent.Model", map[string]any{
		"max": m.initial,
	})
	return nil
}

func trim(files []string, limit int) []string {
	if len(files) > limit {
		return files[len(files)-limit:]
	}
	return files
}

func absolute(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
