package goTelemetry

import "errors"

var (
	// ErrBuilderReused is returned by Build when the builder has already
	// produced a dispatcher.
	ErrBuilderReused = errors.New("builder already used")
	// ErrNilBackend is returned by Build when the backend list contains a
	// nil entry.
	ErrNilBackend = errors.New("nil backend in registry")
)
