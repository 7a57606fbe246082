package recent

import "github.com/tailored-agentic-units/seqkit/observability"

// Recent-files event types.
const (
	EventAdd   observability.EventType = "recent.add"
	EventLoad  observability.EventType = "recent.load"
	EventSave  observability.EventType = "recent.save"
	EventReset observability.EventType = "recent.reset"
)
