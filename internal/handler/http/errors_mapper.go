package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/asset-management/internal/app"
	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/internal/service"
	"github.com/MKhiriev/asset-management/internal/store"
	"github.com/MKhiriev/asset-management/internal/utils"
	"github.com/MKhiriev/asset-management/internal/validators"
	"github.com/MKhiriev/asset-management/models"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	ErrNoCurrentUser:              http.StatusUnauthorized,
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrInvalidPathParam:           http.StatusBadRequest,
	ErrInvalidQueryParam:          http.StatusBadRequest,
	ErrRouteNotFound:              http.StatusNotFound,
	ErrMethodNotAllowed:           http.StatusMethodNotAllowed,

	validators.ErrInvalidRequest: http.StatusBadRequest,

	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrUserDisabled:            http.StatusUnauthorized,
	service.ErrWrongPassword:           http.StatusBadRequest,
	service.ErrPasswordSame:            http.StatusBadRequest,
	service.ErrPasswordChanged:         http.StatusConflict,
	service.ErrForbidden:               http.StatusForbidden,
	service.ErrInvalidPageable:         http.StatusBadRequest,
	service.ErrDataIsOld:               http.StatusConflict,

	service.ErrUserNotFound:                  http.StatusNotFound,
	service.ErrLocationNotFound:              http.StatusNotFound,
	service.ErrUserStillOwnsValidAssignments: http.StatusConflict,
	service.ErrJoinDateBeforeDOB:             http.StatusBadRequest,
	service.ErrJoinDateWeekend:               http.StatusBadRequest,
	service.ErrAdminNullLocation:             http.StatusBadRequest,
	service.ErrNameHasNoLetters:              http.StatusBadRequest,

	service.ErrCategoryNotFound:   http.StatusNotFound,
	service.ErrCategoryNameExists: http.StatusConflict,
	service.ErrCategoryCodeExists: http.StatusConflict,

	service.ErrAssetNotFound:     http.StatusNotFound,
	service.ErrAssetNotEditable:  http.StatusConflict,
	service.ErrAssetHasHistory:   http.StatusConflict,
	service.ErrAssetNotAvailable: http.StatusConflict,
	service.ErrAssetStateInvalid: http.StatusBadRequest,

	service.ErrAssignmentNotFound:     http.StatusNotFound,
	service.ErrAssignmentStateInvalid: http.StatusConflict,
	service.ErrAssignedDateInPast:     http.StatusBadRequest,

	service.ErrReturningRequestExists:       http.StatusConflict,
	service.ErrReturningRequestNotFound:     http.StatusNotFound,
	service.ErrReturningRequestStateInvalid: http.StatusConflict,

	store.ErrUsernameAlreadyExists:  http.StatusConflict,
	store.ErrReturningRequestExists: http.StatusConflict,
}

// statusFromError returns the HTTP status for err together with the sentinel
// that matched it. Unknown errors map to 500 and a nil sentinel.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError logs err and writes the {"message": ...} envelope. Field
// validation failures also carry the per-field messages in "result".
// Internal errors never leak their text to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var fieldErrs *validators.FieldErrors
	if errors.As(err, &fieldErrs) {
		log.Debug().Err(err).Msg("request validation failed")
		utils.WriteJSON(w, models.APIResponse{
			Message: validators.ErrInvalidRequest.Error(),
			Result:  fieldErrs.Fields,
		}, http.StatusBadRequest)
		return
	}

	status, target := statusFromError(err)
	if target == nil {
		log.Err(err).Msg("unexpected error occurred")
		utils.WriteMessage(w, app.MsgInternalServerError, status)
		return
	}

	log.Debug().Err(err).Int("status", status).Msg("request rejected")
	utils.WriteMessage(w, target.Error(), status)
}
