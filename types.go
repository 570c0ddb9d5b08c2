package goTelemetry

// Attributes is a flat string key/value set carried by telemetry events.
type Attributes map[string]string

func cloneAttributes(attrs Attributes) Attributes {
	if len(attrs) == 0 {
		return nil
	}
	out := make(Attributes, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}
	return out
}

// Event is one logged occurrence originating from application code. Category
// is optional, Action is required, Params carries event-specific attributes.
// An Event is created at the call site and never mutated after creation; it
// is owned solely by the dispatch invocation that carries it.
type Event struct {
	Category string     `json:"category,omitempty"`
	Action   string     `json:"action"`
	Params   Attributes `json:"params,omitempty"`
}

// EnrichedEvent is the value delivered to backends: the original event's
// category and action plus the union of enricher attributes and event params,
// with event params winning on key collision. It is computed once per
// dispatch, consumed by every backend in that fan-out, and never persisted.
type EnrichedEvent struct {
	Category   string     `json:"category,omitempty"`
	Action     string     `json:"action"`
	Attributes Attributes `json:"attributes,omitempty"`
}
