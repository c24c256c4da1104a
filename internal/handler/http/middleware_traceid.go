package http

import (
	"net/http"
)

const (
	traceIDHeader = "X-Trace-ID"

	// longer incoming ids are replaced so they cannot bloat every log line
	maxTraceIDLength = 64
)

// withTraceID attaches a child logger carrying trace_id to the request
// context and echoes the id in the response header. A client supplied
// X-Trace-ID is reused when it is short enough.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDLength {
			traceID = h.traceIDs.Generate()
		}

		l := h.logger.With().Str("trace_id", traceID).Logger()

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
