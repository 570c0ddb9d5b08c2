package middleware

import (
	"bufio"
	"net"
	"net/http"
	"strconv"
	"time"

	goTelemetry "github.com/MrEthical07/goTelemetry"
)

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// Flush forwards to the underlying writer so streaming handlers keep working
// behind Track.
func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Hijack forwards to the underlying writer so websocket upgrades keep working
// behind Track.
func (w *statusWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if h, ok := w.ResponseWriter.(http.Hijacker); ok {
		return h.Hijack()
	}
	return nil, nil, http.ErrNotSupported
}

// Track emits one telemetry event per handled request through the dispatcher.
// It is the intended integration point for HTTP surfaces: handlers never talk
// to backends directly, so the dispatcher's ordering and isolation guarantees
// hold for request events too.
//
// Session and screen values attached to the request context via
// [goTelemetry.WithSessionID] and [goTelemetry.WithScreen] are carried as
// event params.
func Track(dispatcher *goTelemetry.Dispatcher, category string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(sw, r)

			params := goTelemetry.Attributes{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      strconv.Itoa(sw.status),
				"duration_ms": strconv.FormatInt(time.Since(start).Milliseconds(), 10),
			}
			if sessionID, ok := goTelemetry.SessionIDFromContext(r.Context()); ok {
				params["session"] = sessionID
			}
			if screen, ok := goTelemetry.ScreenFromContext(r.Context()); ok {
				params["screen"] = screen
			}

			dispatcher.Log(r.Context(), category, "http_request", params)
		})
	}
}
