package observable

import (
	"cmp"
	"maps"
	"slices"
	"sync"
)

// MapSource is the read-only side of an observable map.
type MapSource[K cmp.Ordered, V any] interface {
	Source[map[K]V]
	Size() int
	IsEmpty() bool
	HasKey(key K) bool
	Keys() []K
	Item(key K) (V, bool)
}

// Map is an observable map. Observers receive a copy of the whole map after
// every committed mutation.
type Map[K cmp.Ordered, V any] struct {
	items map[K]V
	mu    sync.RWMutex
	subs  subscribers[map[K]V]
}

// NewMap creates a Map holding a copy of items.
func NewMap[K cmp.Ordered, V any](items map[K]V) *Map[K, V] {
	return &Map[K, V]{items: cloneMap(items)}
}

func (m *Map[K, V]) Get() map[K]V {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneMap(m.items)
}

func (m *Map[K, V]) SetAlways(items map[K]V) {
	m.mutate(func(cur map[K]V) (map[K]V, bool) {
		return cloneMap(items), true
	})
}

func (m *Map[K, V]) SetIfChanged(items map[K]V) bool {
	return m.mutate(func(cur map[K]V) (map[K]V, bool) {
		if equal(cur, items) {
			return cur, false
		}
		return cloneMap(items), true
	})
}

func (m *Map[K, V]) Clear() {
	m.mutate(func(cur map[K]V) (map[K]V, bool) {
		return map[K]V{}, true
	})
}

func (m *Map[K, V]) SetItem(key K, value V) {
	m.mutate(func(cur map[K]V) (map[K]V, bool) {
		cur[key] = value
		return cur, true
	})
}

func (m *Map[K, V]) SetItemIfChanged(key K, value V) bool {
	return m.mutate(func(cur map[K]V) (map[K]V, bool) {
		if old, ok := cur[key]; ok && equal(old, value) {
			return cur, false
		}
		cur[key] = value
		return cur, true
	})
}

func (m *Map[K, V]) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

func (m *Map[K, V]) IsEmpty() bool {
	return m.Size() == 0
}

func (m *Map[K, V]) HasKey(key K) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.items[key]
	return ok
}

// Keys returns the keys in ascending order.
func (m *Map[K, V]) Keys() []K {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.items))
}

func (m *Map[K, V]) Item(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok
}

func (m *Map[K, V]) Observe(fn func(map[K]V), opts ...ObserveOption) *Observer {
	obs := m.subs.add(fn)
	if applyObserveOptions(opts).trigger {
		fn(m.Get())
	}
	return obs
}

func (m *Map[K, V]) ObserversCount() int {
	return m.subs.count()
}

func (m *Map[K, V]) mutate(fn func(cur map[K]V) (map[K]V, bool)) bool {
	m.mu.Lock()
	next, changed := fn(cloneMap(m.items))
	if !changed {
		m.mu.Unlock()
		return false
	}
	m.items = next
	snapshot := cloneMap(next)
	m.mu.Unlock()

	m.subs.notify(snapshot)
	return true
}

func cloneMap[K comparable, V any](items map[K]V) map[K]V {
	out := make(map[K]V, len(items))
	maps.Copy(out, items)
	return out
}
