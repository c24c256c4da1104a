package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/asset-management/internal/app"
	"github.com/MKhiriev/asset-management/internal/utils"
	"github.com/MKhiriev/asset-management/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	current, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.UserRequest
	if err = h.decodeAndValidate(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.UserService.CreateUser(r.Context(), current, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteResult(w, created, http.StatusCreated)
}

func (h *Handler) generateUsername(w http.ResponseWriter, r *http.Request) {
	var request models.GenerateUsernameRequest
	if err := h.decodeAndValidate(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	username, err := h.services.UserService.GenerateUsername(r.Context(), request.FirstName, request.LastName)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteResult(w, models.UsernameResponse{Username: username}, http.StatusOK)
}

func userSearchFromRequest(r *http.Request) (models.UserSearch, error) {
	query := r.URL.Query()

	page, err := pageFromQuery(query)
	if err != nil {
		return models.UserSearch{}, err
	}

	return models.UserSearch{
		PageRequest:  page,
		SearchString: strings.TrimSpace(query.Get("searchString")),
		Type:         strings.ToUpper(strings.TrimSpace(query.Get("type"))),
	}, nil
}

func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	current, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	search, err := userSearchFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	users, err := h.services.UserService.GetAllUsers(r.Context(), current, search)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteResult(w, users, http.StatusOK)
}

func (h *Handler) getUsersForAssignment(w http.ResponseWriter, r *http.Request) {
	current, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	search, err := userSearchFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	users, err := h.services.UserService.GetAllUsersForAssignment(r.Context(), current, search)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteResult(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	current, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUserByID(r.Context(), current, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteResult(w, user, http.StatusOK)
}

func (h *Handler) editUser(w http.ResponseWriter, r *http.Request) {
	current, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.UserUpdateRequest
	if err = h.decodeAndValidate(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.EditUser(r.Context(), current, id, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteResult(w, user, http.StatusOK)
}

func (h *Handler) disableUser(w http.ResponseWriter, r *http.Request) {
	current, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.DisableUser(r.Context(), current, id); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgUserDisabled, http.StatusOK)
}

func (h *Handler) existsCurrentAssignment(w http.ResponseWriter, r *http.Request) {
	current, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	exists, err := h.services.UserService.ExistsCurrentAssignment(r.Context(), current, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteResult(w, models.ExistsResponse{Exists: exists}, http.StatusOK)
}
