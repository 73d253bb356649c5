package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// RequestLogger logs each API request with method, path, status, and duration.
type RequestLogger struct{}

// NewRequestLogger creates a new RequestLogger.
func NewRequestLogger() *RequestLogger {
	return &RequestLogger{}
}

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Log wraps a handler with structured request logging.
func (m *RequestLogger) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
