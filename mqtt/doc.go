// Package mqtt implements the MQTT delivery backend for goTelemetry.
//
// # Components
//
//   - [Backend]: goTelemetry.Backend that publishes flattened JSON payloads.
//   - [SettingsProvider]: per-send resolution of enabled/topic/QoS.
//   - [Dial]: paho client construction with auto-reconnect and slog lifecycle
//     logging.
//
// # Architecture boundaries
//
// This package owns topic/QoS resolution and payload encoding. It does NOT
// decide when events are sent (only the dispatcher invokes Send), and it
// never buffers or retries; a failed publish is reported once and dropped.
//
// # What this package must NOT do
//
//   - Retain an event beyond the Send call.
//   - Return an error for "tracking disabled" or missing settings; those are
//     silent no-ops.
//   - Publish from any goroutine other than the caller's (the dispatch
//     worker); the bounded WaitTimeout keeps Send synchronous.
package mqtt
