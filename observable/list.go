package observable

import (
	"slices"
	"sync"
)

// ListSource is the read-only side of an observable list.
type ListSource[T any] interface {
	Source[[]T]
	Size() int
	IsEmpty() bool
	Item(index int) (T, bool)
	Contains(item T) bool
	IndexOf(item T) int
}

// List is an observable slice. Observers receive a copy of the whole list
// after every committed mutation. Out-of-range indices are ignored.
type List[T any] struct {
	items []T
	mu    sync.RWMutex
	subs  subscribers[[]T]
}

// NewList creates a List holding a copy of items.
func NewList[T any](items ...T) *List[T] {
	return &List[T]{items: slices.Clone(items)}
}

func (l *List[T]) Get() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.items)
}

func (l *List[T]) SetAlways(items []T) {
	l.mutate(func(cur []T) ([]T, bool) {
		return slices.Clone(items), true
	})
}

func (l *List[T]) SetIfChanged(items []T) bool {
	return l.mutate(func(cur []T) ([]T, bool) {
		if equal(cur, items) {
			return cur, false
		}
		return slices.Clone(items), true
	})
}

func (l *List[T]) Clear() {
	l.mutate(func(cur []T) ([]T, bool) {
		return nil, true
	})
}

func (l *List[T]) SetItem(index int, item T) {
	l.mutate(func(cur []T) ([]T, bool) {
		if index < 0 || index >= len(cur) {
			return cur, false
		}
		cur[index] = item
		return cur, true
	})
}

func (l *List[T]) SetItemIfChanged(index int, item T) bool {
	return l.mutate(func(cur []T) ([]T, bool) {
		if index < 0 || index >= len(cur) || equal(cur[index], item) {
			return cur, false
		}
		cur[index] = item
		return cur, true
	})
}

// PushBack appends items.
func (l *List[T]) PushBack(items ...T) {
	l.mutate(func(cur []T) ([]T, bool) {
		return append(cur, items...), true
	})
}

// Insert inserts items before index; index is clamped to [0, Size()].
func (l *List[T]) Insert(index int, items ...T) {
	l.mutate(func(cur []T) ([]T, bool) {
		index = clamp(index, len(cur))
		return slices.Insert(cur, index, items...), true
	})
}

func (l *List[T]) Remove(index int) {
	l.mutate(func(cur []T) ([]T, bool) {
		if index < 0 || index >= len(cur) {
			return cur, false
		}
		return slices.Delete(cur, index, index+1), true
	})
}

// RemoveRange removes the items in [start, end).
func (l *List[T]) RemoveRange(start, end int) {
	l.mutate(func(cur []T) ([]T, bool) {
		start, end = clamp(start, len(cur)), clamp(end, len(cur))
		if start >= end {
			return cur, false
		}
		return slices.Delete(cur, start, end), true
	})
}

// ReplaceRange replaces the items in [start, end) with items.
func (l *List[T]) ReplaceRange(start, end int, items []T) {
	l.mutate(func(cur []T) ([]T, bool) {
		start, end = clamp(start, len(cur)), clamp(end, len(cur))
		if start > end {
			return cur, false
		}
		return slices.Replace(cur, start, end, items...), true
	})
}

func (l *List[T]) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

func (l *List[T]) IsEmpty() bool {
	return l.Size() == 0
}

func (l *List[T]) Item(index int) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var zero T
	if index < 0 || index >= len(l.items) {
		return zero, false
	}
	return l.items[index], true
}

func (l *List[T]) Contains(item T) bool {
	return l.IndexOf(item) >= 0
}

// IndexOf returns the index of the first item equal to item, or -1.
func (l *List[T]) IndexOf(item T) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.IndexFunc(l.items, func(v T) bool { return equal(v, item) })
}

func (l *List[T]) Observe(fn func([]T), opts ...ObserveOption) *Observer {
	obs := l.subs.add(fn)
	if applyObserveOptions(opts).trigger {
		fn(l.Get())
	}
	return obs
}

func (l *List[T]) ObserversCount() int {
	return l.subs.count()
}

// mutate applies fn to a private copy of the items and notifies observers
// when fn reports a change.
func (l *List[T]) mutate(fn func(cur []T) ([]T, bool)) bool {
	l.mu.Lock()
	next, changed := fn(slices.Clone(l.items))
	if !changed {
		l.mu.Unlock()
		return false
	}
	l.items = next
	snapshot := slices.Clone(next)
	l.mu.Unlock()

	l.subs.notify(snapshot)
	return true
}

func clamp(index, size int) int {
	return max(0, min(index, size))
}
