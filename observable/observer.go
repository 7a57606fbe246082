// Package observable provides values, lists, and maps that notify registered
// observers synchronously when they change.
//
// Each holder owns its observer table. Registration returns an *Observer
// handle; closing the handle removes the callback. There is no global
// registry.
//
//	v := observable.NewValue(0)
//	obs := v.Observe(func(n int) { fmt.Println(n) })
//	defer obs.Close()
//	v.SetIfChanged(1) // prints 1, returns true
//	v.SetIfChanged(1) // returns false
package observable

import (
	"runtime"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Source is the read-only side of an observable value.
type Source[T any] interface {
	Get() T
	Observe(fn func(T), opts ...ObserveOption) *Observer
	ObserversCount() int
}

// ObserveOption configures a registration.
type ObserveOption func(*observeConfig)

type observeConfig struct {
	trigger bool
}

// WithTrigger invokes the callback with the current value immediately after
// registration.
func WithTrigger() ObserveOption {
	return func(c *observeConfig) { c.trigger = true }
}

// Observer is the handle for one registered callback.
type Observer struct {
	id      uuid.UUID
	once    sync.Once
	release func()
	cleanup runtime.Cleanup
}

// ID returns the registration token.
func (o *Observer) ID() string {
	return o.id.String()
}

// Close removes the callback from its observable. Safe to call more than once.
func (o *Observer) Close() {
	if o == nil {
		return
	}
	o.once.Do(func() {
		if o.release == nil {
			return
		}
		o.cleanup.Stop()
		o.release()
	})
}

type subscription[T any] struct {
	id uuid.UUID
	fn func(T)
}

// subscribers is the ordered registration table shared by Value, List, and Map.
type subscribers[T any] struct {
	entries []subscription[T]
	mu      sync.RWMutex
}

func (s *subscribers[T]) add(fn func(T)) *Observer {
	id := uuid.Must(uuid.NewV7())

	s.mu.Lock()
	s.entries = append(s.entries, subscription[T]{id: id, fn: fn})
	s.mu.Unlock()

	obs := &Observer{
		id:      id,
		release: func() { s.remove(id) },
	}
	// Handles dropped without Close expire once collected.
	obs.cleanup = runtime.AddCleanup(obs, func(id uuid.UUID) { s.remove(id) }, id)
	return obs
}

func (s *subscribers[T]) remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = slices.DeleteFunc(s.entries, func(e subscription[T]) bool {
		return e.id == id
	})
}

func (s *subscribers[T]) count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// notify calls every callback registered at the time of the call, in
// registration order, without holding the table lock.
func (s *subscribers[T]) notify(value T) {
	s.mu.RLock()
	snapshot := slices.Clone(s.entries)
	s.mu.RUnlock()

	for _, e := range snapshot {
		e.fn(value)
	}
}

func applyObserveOptions(opts []ObserveOption) observeConfig {
	var cfg observeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
