package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/asset-management/internal/app"
	"github.com/MKhiriev/asset-management/internal/utils"
	"github.com/MKhiriev/asset-management/models"
)

func (h *Handler) getReturningRequests(w http.ResponseWriter, r *http.Request) {
	current, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	query := r.URL.Query()
	page, err := pageFromQuery(query)
	if err != nil {
		writeError(w, r, err)
		return
	}
	returnedDate, err := dateFromQuery(query, "returnedDate")
	if err != nil {
		writeError(w, r, err)
		return
	}

	requests, err := h.services.ReturningRequestService.GetAllReturningRequests(r.Context(), current, models.ReturningRequestSearch{
		PageRequest:  page,
		SearchString: strings.TrimSpace(query.Get("searchString")),
		States:       statesFromQuery[models.ReturningRequestState](query, "states"),
		ReturnedDate: returnedDate,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteResult(w, requests, http.StatusOK)
}

func (h *Handler) completeReturningRequest(w http.ResponseWriter, r *http.Request) {
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

	if err = h.services.ReturningRequestService.CompleteReturningRequest(r.Context(), current, id); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgReturningRequestCompleted, http.StatusOK)
}

func (h *Handler) cancelReturningRequest(w http.ResponseWriter, r *http.Request) {
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

	if err = h.services.ReturningRequestService.CancelReturningRequest(r.Context(), current, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
