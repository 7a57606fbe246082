package observability

import (
	"context"
	"time"

	"github.com/tailored-agentic-units/seqkit/observable"
)

// Emit stamps an event with the current time and delivers it to obs.
// A nil obs drops the event.
func Emit(ctx context.Context, obs Observer, typ EventType, level Level, source string, data map[string]any) {
	if obs == nil {
		return
	}
	obs.OnEvent(ctx, Event{
		Type:      typ,
		Level:     level,
		Timestamp: time.Now(),
		Source:    source,
		Data:      data,
	})
}

// Trace forwards every value src publishes to obs as a verbose event of
// type typ, with the value under the "value" key. Close the returned handle
// to stop tracing.
func Trace[T any](ctx context.Context, src observable.Source[T], obs Observer, typ EventType, source string, opts ...observable.ObserveOption) *observable.Observer {
	return src.Observe(func(v T) {
		Emit(ctx, obs, typ, LevelVerbose, source, map[string]any{"value": v})
	}, opts...)
}
