package http

import (
	"net/http"

	"github.com/MKhiriev/asset-management/internal/utils"
	"github.com/MKhiriev/asset-management/models"
)

func (h *Handler) getLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.services.LocationService.GetAllLocations(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteResult(w, locations, http.StatusOK)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.services.CategoryService.GetAllCategories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteResult(w, categories, http.StatusOK)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var request models.CategoryRequest
	if err := h.decodeAndValidate(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	category, err := h.services.CategoryService.CreateCategory(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteResult(w, category, http.StatusCreated)
}

func (h *Handler) getReport(w http.ResponseWriter, r *http.Request) {
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

	report, err := h.services.ReportService.GetReport(r.Context(), current, page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteResult(w, report, http.StatusOK)
}
