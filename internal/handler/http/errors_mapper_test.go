package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/asset-management/internal/app"
	"github.com/MKhiriev/asset-management/internal/service"
	"github.com/MKhiriev/asset-management/internal/store"
	"github.com/MKhiriev/asset-management/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTarget error
	}{
		{name: "wrong credentials", err: service.ErrWrongCredentials, wantStatus: http.StatusUnauthorized, wantTarget: service.ErrWrongCredentials},
		{name: "forbidden", err: service.ErrForbidden, wantStatus: http.StatusForbidden, wantTarget: service.ErrForbidden},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("%w: %w", service.ErrAssetNotFound, store.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantTarget: service.ErrAssetNotFound,
		},
		{name: "stale data", err: fmt.Errorf("edit: %w", service.ErrDataIsOld), wantStatus: http.StatusConflict, wantTarget: service.ErrDataIsOld},
		{name: "join date", err: service.ErrJoinDateWeekend, wantStatus: http.StatusBadRequest, wantTarget: validators.ErrJoinDateWeekend},
		{name: "duplicate username", err: store.ErrUsernameAlreadyExists, wantStatus: http.StatusConflict, wantTarget: store.ErrUsernameAlreadyExists},
		{name: "name without letters", err: service.ErrNameHasNoLetters, wantStatus: http.StatusBadRequest, wantTarget: service.ErrNameHasNoLetters},
		{name: "bad page", err: service.ErrInvalidPageable, wantStatus: http.StatusBadRequest, wantTarget: service.ErrInvalidPageable},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
		{name: "query failure", err: store.ErrExecutingQuery, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, target := statusFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantTarget, target)
		})
	}
}

func TestWriteError_HidesInternalErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	writeError(rec, req, fmt.Errorf("%w: connection refused", store.ErrExecutingQuery))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgInternalServerError, decodeEnvelope(t, rec).Message)
}

func TestWriteError_SentinelMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	writeError(rec, req, fmt.Errorf("%w: %w", service.ErrUserNotFound, store.ErrNotFound))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, service.ErrUserNotFound.Error(), decodeEnvelope(t, rec).Message)
}

func TestWriteError_FieldErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)

	writeError(rec, req, &validators.FieldErrors{Fields: map[string]string{"name": "is required"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, validators.ErrInvalidRequest.Error(), env.Message)
	assert.JSONEq(t, `{"name":"is required"}`, string(env.Result))
}
