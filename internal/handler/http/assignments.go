package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/asset-management/internal/utils"
	"github.com/MKhiriev/asset-management/models"
)

func (h *Handler) createAssignment(w http.ResponseWriter, r *http.Request) {
	current, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.AssignmentRequest
	if err = h.decodeAndValidate(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	assignment, err := h.services.AssignmentService.CreateAssignment(r.Context(), current, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteResult(w, assignment, http.StatusCreated)
}

func (h *Handler) editAssignment(w http.ResponseWriter, r *http.Request) {
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

	var request models.AssignmentUpdateRequest
	if err = h.decodeAndValidate(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	assignment, err := h.services.AssignmentService.EditAssignment(r.Context(), current, id, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteResult(w, assignment, http.StatusOK)
}

func (h *Handler) deleteAssignment(w http.ResponseWriter, r *http.Request) {
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

	if err = h.services.AssignmentService.DeleteAssignment(r.Context(), current, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getAssignments(w http.ResponseWriter, r *http.Request) {
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
	assignedDate, err := dateFromQuery(query, "assignedDate")
	if err != nil {
		writeError(w, r, err)
		return
	}

	assignments, err := h.services.AssignmentService.GetAllAssignments(r.Context(), current, models.AssignmentSearch{
		PageRequest:  page,
		SearchString: strings.TrimSpace(query.Get("searchString")),
		States:       statesFromQuery[models.AssignmentState](query, "states"),
		AssignedDate: assignedDate,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteResult(w, assignments, http.StatusOK)
}

func (h *Handler) getAssignment(w http.ResponseWriter, r *http.Request) {
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

	assignment, err := h.services.AssignmentService.GetAssignment(r.Context(), current, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteResult(w, assignment, http.StatusOK)
}

func (h *Handler) getMyAssignments(w http.ResponseWriter, r *http.Request) {
	current, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := pageFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	assignments, err := h.services.AssignmentService.GetMyAssignments(r.Context(), current, page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteResult(w, assignments, http.StatusOK)
}

func (h *Handler) respondAssignment(w http.ResponseWriter, r *http.Request) {
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

	var reply models.AssignmentReply
	if err = h.decodeAndValidate(w, r, &reply); err != nil {
		writeError(w, r, err)
		return
	}

	assignment, err := h.services.AssignmentService.RespondAssignment(r.Context(), current, id, reply)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteResult(w, assignment, http.StatusOK)
}

func (h *Handler) createReturningRequest(w http.ResponseWriter, r *http.Request) {
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

	request, err := h.services.AssignmentService.CreateReturningRequest(r.Context(), current, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteResult(w, request, http.StatusCreated)
}
