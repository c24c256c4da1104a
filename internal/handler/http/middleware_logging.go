package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/go-chi/chi/v5/middleware"
)

// withLogging writes one access log line per request. It reads the logger
// from the context, so it must run after withTraceID.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		log := logger.FromRequest(r)
		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		}

		event.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", ww.BytesWritten()).
			Send()
	})
}
