// Package goTelemetry provides a fire-and-forget telemetry event dispatch
// pipeline: call sites log events synchronously, a single long-lived worker
// fans each event out to every registered delivery backend, and no backend
// failure is ever observable to the caller.
//
// The package is designed for concurrent application workloads: Dispatcher.Log
// is safe to call from any goroutine after initialization through
// [Builder.Build] and never blocks the calling goroutine.
//
// # Architecture boundaries
//
// goTelemetry is the public surface. It exposes [Dispatcher], [Builder],
// [Config], the [Backend] and [AttributeEnricher] contracts, and value types
// (Event, EnrichedEvent, MetricsSnapshot). Concrete transports live in
// subpackages (mqtt, redisstream); payload flattening lives under internal/
// and is never exported.
//
// # What this package must NOT do
//
//   - Expose the backend registry after construction. Dispatcher.Log is the
//     only path to a registered backend; invoking a backend directly would
//     bypass the serialization guarantee.
//   - Perform transport I/O on the caller's goroutine. All backend work runs
//     on the dispatch worker.
//   - Surface delivery outcomes to call sites. Failures are counted and
//     logged, never returned.
//
// # Ordering contract
//
// Within one dispatch, backends run in registration order. Fan-outs of two
// dispatches never interleave, but the order in which two racing Log calls
// enter the queue is unspecified.
package goTelemetry
