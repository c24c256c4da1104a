package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runTraceID(t *testing.T, incoming string) (*httptest.ResponseRecorder, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}, traceIDs: utils.NewUUIDGenerator()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)

	return rec, &buf
}

func TestWithTraceID_ReusesClientID(t *testing.T) {
	rec, buf := runTraceID(t, "req-42")

	assert.Equal(t, "req-42", rec.Header().Get(traceIDHeader))
	assert.Contains(t, buf.String(), `"trace_id":"req-42"`)
}

func TestWithTraceID_GeneratesID(t *testing.T) {
	for _, incoming := range []string{"", strings.Repeat("x", maxTraceIDLength+1)} {
		rec, buf := runTraceID(t, incoming)

		traceID := rec.Header().Get(traceIDHeader)
		_, err := uuid.Parse(traceID)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), traceID)
	}
}
