package watch

import "github.com/tailored-agentic-units/seqkit/observability"

// Watcher event types.
const (
	EventChange observability.EventType = "watch.change"
	EventDir    observability.EventType = "watch.dir"
	EventError  observability.EventType = "watch.error"
)
