package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/internal/service"
	"github.com/MKhiriev/asset-management/internal/utils"
	"github.com/MKhiriev/asset-management/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "bearer token", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "lower-case scheme", header: "bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "extra spaces", header: "  Bearer   my-jwt-token ", wantToken: "my-jwt-token"},
		{name: "scheme only", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "other scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func runAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(logger.Nop().WithContext(req.Context()))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)
	return rec
}

func TestAuth_StoresCurrentUser(t *testing.T) {
	h := &Handler{logger: logger.Nop(), services: &service.Services{AuthService: tokenAuth()}}

	var got models.CurrentUser
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		got, ok = utils.GetCurrentUserFromContext(r.Context())
		require.True(t, ok)

		id, ok := utils.GetUserIDFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, testAdmin.ID, id)

		w.WriteHeader(http.StatusOK)
	})

	rec := runAuth(h, "Bearer "+adminToken, next)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testAdmin, got)
}

func TestAuth_Rejects(t *testing.T) {
	disabled := &fakeAuthService{
		authenticateFn: func(context.Context, string) (models.CurrentUser, error) {
			return models.CurrentUser{}, service.ErrUserDisabled
		},
	}

	tests := []struct {
		name        string
		auth        service.AuthService
		header      string
		wantMessage string
	}{
		{name: "no header", auth: tokenAuth(), wantMessage: ErrEmptyAuthorizationHeader.Error()},
		{name: "malformed header", auth: tokenAuth(), header: "Token abc", wantMessage: ErrInvalidAuthorizationHeader.Error()},
		{name: "unknown token", auth: tokenAuth(), header: "Bearer abc", wantMessage: service.ErrTokenIsExpiredOrInvalid.Error()},
		{name: "disabled user", auth: disabled, header: "Bearer " + staffToken, wantMessage: service.ErrUserDisabled.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop(), services: &service.Services{AuthService: tt.auth}}
			called := false
			next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

			rec := runAuth(h, tt.header, next)

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeEnvelope(t, rec).Message)
		})
	}
}

func TestRequireRole(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	mw := h.requireRole(models.RoleAdmin)(next)

	tests := []struct {
		name       string
		ctx        func(context.Context) context.Context
		wantStatus int
	}{
		{
			name:       "admin passes",
			ctx:        func(ctx context.Context) context.Context { return utils.WithCurrentUser(ctx, testAdmin) },
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "user is forbidden",
			ctx:        func(ctx context.Context) context.Context { return utils.WithCurrentUser(ctx, testStaff) },
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "no principal",
			ctx:        func(ctx context.Context) context.Context { return ctx },
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req = req.WithContext(tt.ctx(req.Context()))
			rec := httptest.NewRecorder()

			mw.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
