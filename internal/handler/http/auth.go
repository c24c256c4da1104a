package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/asset-management/internal/app"
	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/internal/utils"
	"github.com/MKhiriev/asset-management/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var request models.LoginRequest
	if err := h.decodeAndValidate(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	response, err := h.services.AuthService.Login(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", response.User.ID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", response.Token))
	utils.WriteResult(w, response, http.StatusOK)
}

func (h *Handler) firstChangePassword(w http.ResponseWriter, r *http.Request) {
	current, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.FirstChangePasswordRequest
	if err = h.decodeAndValidate(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AuthService.FirstChangePassword(r.Context(), current, request); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgPasswordChanged, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	current, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.ChangePasswordRequest
	if err = h.decodeAndValidate(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AuthService.ChangePassword(r.Context(), current, request); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgPasswordChanged, http.StatusOK)
}
