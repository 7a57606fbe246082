package browser

import "github.com/tailored-agentic-units/seqkit/observability"

// Browser event types.
const (
	EventPath    observability.EventType = "browser.path"
	EventRefresh observability.EventType = "browser.refresh"
	EventError   observability.EventType = "browser.error"
)
