// Package redisstream implements a Redis Stream delivery backend for
// goTelemetry. Each event becomes one XADD with the flattened payload as
// field/value pairs, optionally capped with approximate MAXLEN trimming.
//
// # What this package must NOT do
//
//   - Retry failed appends; delivery is best-effort like every backend.
//   - Read from the stream; consumers are external.
package redisstream
