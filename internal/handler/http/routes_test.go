package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/asset-management/internal/config"
	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/internal/metrics"
	"github.com/MKhiriev/asset-management/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routeCase struct {
	method string
	path   string
}

// adminRoutes must answer 401 without a token and 403 for a USER.
var adminRoutes = []routeCase{
	{http.MethodPost, "/api/v1/users"},
	{http.MethodGet, "/api/v1/users"},
	{http.MethodGet, "/api/v1/users/assignment"},
	{http.MethodPost, "/api/v1/users/generate-username"},
	{http.MethodGet, "/api/v1/users/5"},
	{http.MethodPut, "/api/v1/users/5"},
	{http.MethodDelete, "/api/v1/users/5"},
	{http.MethodGet, "/api/v1/users/5/current-assignment"},
	{http.MethodGet, "/api/v1/locations"},
	{http.MethodGet, "/api/v1/categories"},
	{http.MethodPost, "/api/v1/categories"},
	{http.MethodPost, "/api/v1/assets"},
	{http.MethodGet, "/api/v1/assets"},
	{http.MethodGet, "/api/v1/assets/11"},
	{http.MethodGet, "/api/v1/assets/11/history"},
	{http.MethodPut, "/api/v1/assets/11"},
	{http.MethodDelete, "/api/v1/assets/11"},
	{http.MethodPost, "/api/v1/assignments"},
	{http.MethodGet, "/api/v1/assignments"},
	{http.MethodPut, "/api/v1/assignments/21"},
	{http.MethodDelete, "/api/v1/assignments/21"},
	{http.MethodGet, "/api/v1/returning-requests"},
	{http.MethodPut, "/api/v1/returning-requests/31/complete"},
	{http.MethodDelete, "/api/v1/returning-requests/31"},
	{http.MethodGet, "/api/v1/reports"},
}

// userRoutes only require authentication.
var userRoutes = []routeCase{
	{http.MethodPost, "/api/v1/auth/first-change-password"},
	{http.MethodPost, "/api/v1/auth/change-password"},
	{http.MethodGet, "/api/v1/assignments/me"},
	{http.MethodGet, "/api/v1/assignments/21"},
	{http.MethodPut, "/api/v1/assignments/21/respond"},
	{http.MethodPost, "/api/v1/assignments/21/returning-request"},
}

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	for _, rc := range append(adminRoutes, userRoutes...) {
		t.Run(rc.method+" "+rc.path, func(t *testing.T) {
			rec := serve(t, h, rc.method, rc.path, "", nil)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, ErrEmptyAuthorizationHeader.Error(), decodeEnvelope(t, rec).Message)
		})
	}
}

func TestInit_AdminRoutesRejectUsers(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	for _, rc := range adminRoutes {
		t.Run(rc.method+" "+rc.path, func(t *testing.T) {
			rec := serve(t, h, rc.method, rc.path, staffToken, nil)

			assert.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}

func TestInit_InvalidToken(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	rec := serve(t, h, http.MethodGet, "/api/v1/assignments/me", "forged", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, service.ErrTokenIsExpiredOrInvalid.Error(), decodeEnvelope(t, rec).Message)
}

func TestInit_UnknownRoute(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	for _, path := range []string{"/nope", "/api/v1/nope"} {
		rec := serve(t, h, http.MethodGet, path, adminToken, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Equal(t, ErrRouteNotFound.Error(), decodeEnvelope(t, rec).Message)
	}
}

func TestInit_MethodNotAllowed(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	rec := serve(t, h, http.MethodPatch, "/api/v1/locations", "", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET", rec.Header().Get("Allow"))
	assert.Equal(t, ErrMethodNotAllowed.Error(), decodeEnvelope(t, rec).Message)
}

func TestInit_TraceIDHeader(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	rec := serve(t, h, http.MethodGet, "/api/version", "", nil)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_Metrics(t *testing.T) {
	svcs := &service.Services{AppInfoService: &fakeAppInfoService{}}

	t.Run("served with a registry", func(t *testing.T) {
		h := NewHandler(svcs, config.Server{}, metrics.NewRegistry(), logger.Nop())

		serve(t, h, http.MethodGet, "/api/version", "", nil)
		rec := serve(t, h, http.MethodGet, "/metrics", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `asset_management_http_requests_total{method="GET",route="/api/version",status="200"} 1`)
	})

	t.Run("absent without a registry", func(t *testing.T) {
		h := NewHandler(svcs, config.Server{}, nil, logger.Nop())

		rec := serve(t, h, http.MethodGet, "/metrics", "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
