// Package payload defines the flat wire representation of enriched telemetry
// events shared by the concrete transport backends.
//
// The mqtt and redisstream backends both publish the same flattened key/value
// shape; it lives here so the two can never drift apart.
//
// # What this package must NOT do
//
//   - Import goTelemetry or any backend package.
//   - Perform I/O or serialization beyond building the map.
package payload
