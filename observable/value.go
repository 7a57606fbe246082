package observable

import (
	"reflect"
	"sync"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// equalOptions compare unexported fields, match errors with errors.Is, and
// treat nil and empty slices and maps as equal.
var equalOptions = []cmp.Option{
	cmpopts.EquateEmpty(),
	cmpopts.EquateErrors(),
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

func equal[T any](a, b T) bool {
	return cmp.Equal(a, b, equalOptions...)
}

// Value holds a single value and notifies observers when it is set.
// All methods are safe for concurrent use; callbacks run on the caller's
// goroutine after the value has been committed.
type Value[T any] struct {
	value T
	equal func(a, b T) bool
	mu    sync.RWMutex
	subs  subscribers[T]
}

// NewValue creates a Value compared with cmp.Equal. Unexported struct fields
// take part in the comparison, errors match when errors.Is reports them equal,
// and nil and empty collections are considered equal.
func NewValue[T any](initial T) *Value[T] {
	return NewValueFunc(initial, equal[T])
}

// NewValueFunc creates a Value that uses equal to detect changes.
func NewValueFunc[T any](initial T, equal func(a, b T) bool) *Value[T] {
	return &Value[T]{value: initial, equal: equal}
}

func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

// SetAlways stores value and notifies every observer.
func (v *Value[T]) SetAlways(value T) {
	v.mu.Lock()
	v.value = value
	v.mu.Unlock()

	v.subs.notify(value)
}

// SetIfChanged stores value and notifies observers only when value differs
// from the current one. Reports whether a change was committed.
func (v *Value[T]) SetIfChanged(value T) bool {
	v.mu.Lock()
	if v.equal(v.value, value) {
		v.mu.Unlock()
		return false
	}
	v.value = value
	v.mu.Unlock()

	v.subs.notify(value)
	return true
}

// Observe registers fn. The returned handle must stay reachable for as long
// as notifications are wanted.
func (v *Value[T]) Observe(fn func(T), opts ...ObserveOption) *Observer {
	obs := v.subs.add(fn)
	if applyObserveOptions(opts).trigger {
		fn(v.Get())
	}
	return obs
}

func (v *Value[T]) ObserversCount() int {
	return v.subs.count()
}
