package goTelemetry

import "context"

// AttributeEnricher produces the contextual attribute set merged into every
// dispatched event (session id, device stats, timestamps). Implementations
// may read live process state; freshness matters more than caching, so the
// dispatcher invokes Attributes exactly once per dispatch and never memoizes
// the result.
type AttributeEnricher interface {
	Attributes(ctx context.Context) Attributes
}

// EnricherFunc adapts a plain function to the [AttributeEnricher] interface.
type EnricherFunc func(ctx context.Context) Attributes

// Attributes implements [AttributeEnricher].
func (f EnricherFunc) Attributes(ctx context.Context) Attributes {
	return f(ctx)
}
