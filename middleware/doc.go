// Package middleware provides HTTP integration for goTelemetry. The Track
// wrapper routes request events through the dispatcher so application
// handlers never bypass the single telemetry choke point.
package middleware
