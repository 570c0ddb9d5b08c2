package goTelemetry

import "context"

type sessionIDContextKey struct{}
type screenContextKey struct{}

// WithSessionID attaches the current session identifier to ctx. The middleware
// package and session-aware enrichers read it when building event attributes.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDContextKey{}, sessionID)
}

// SessionIDFromContext returns the session identifier attached by
// [WithSessionID], if any.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	sessionID, ok := ctx.Value(sessionIDContextKey{}).(string)
	if sessionID == "" {
		return "", false
	}
	return sessionID, ok
}

// WithScreen attaches the originating screen name to ctx.
func WithScreen(ctx context.Context, screen string) context.Context {
	return context.WithValue(ctx, screenContextKey{}, screen)
}

// ScreenFromContext returns the screen name attached by [WithScreen], if any.
func ScreenFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	screen, ok := ctx.Value(screenContextKey{}).(string)
	if screen == "" {
		return "", false
	}
	return screen, ok
}
