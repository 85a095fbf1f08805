package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// withLogging writes one access log entry per request. Client errors are
// logged at warn level, server errors at error level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		log := logger.FromRequest(r)
		event := log.Info()
		switch {
		case lw.status >= http.StatusInternalServerError:
			event = log.Error()
		case lw.status >= http.StatusBadRequest:
			event = log.Warn()
		}

		event.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Str("route", routePattern(r)).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Msg("request served")
	})
}

// routePattern returns the matched chi pattern such as "/notes/{id}", or ""
// outside a chi router.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}
