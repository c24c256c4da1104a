package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/asset-management/internal/utils"
	"github.com/MKhiriev/asset-management/models"
)

func (h *Handler) createAsset(w http.ResponseWriter, r *http.Request) {
	current, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.AssetRequest
	if err = h.decodeAndValidate(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	asset, err := h.services.AssetService.CreateAsset(r.Context(), current, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteResult(w, asset, http.StatusCreated)
}

func (h *Handler) getAssets(w http.ResponseWriter, r *http.Request) {
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
	categoryIDs, err := idsFromQuery(query, "categoryIds")
	if err != nil {
		writeError(w, r, err)
		return
	}

	assets, err := h.services.AssetService.GetAllAssets(r.Context(), current, models.AssetSearch{
		PageRequest:  page,
		SearchString: strings.TrimSpace(query.Get("searchString")),
		States:       statesFromQuery[models.AssetState](query, "states"),
		CategoryIDs:  categoryIDs,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteResult(w, assets, http.StatusOK)
}

func (h *Handler) getAsset(w http.ResponseWriter, r *http.Request) {
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

	asset, err := h.services.AssetService.GetAsset(r.Context(), current, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteResult(w, asset, http.StatusOK)
}

func (h *Handler) getAssetHistory(w http.ResponseWriter, r *http.Request) {
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

	page, err := pageFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	history, err := h.services.AssetService.GetAssetHistory(r.Context(), current, id, page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteResult(w, history, http.StatusOK)
}

func (h *Handler) editAsset(w http.ResponseWriter, r *http.Request) {
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

	var request models.AssetUpdateRequest
	if err = h.decodeAndValidate(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	asset, err := h.services.AssetService.EditAsset(r.Context(), current, id, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteResult(w, asset, http.StatusOK)
}

func (h *Handler) deleteAsset(w http.ResponseWriter, r *http.Request) {
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

	if err = h.services.AssetService.DeleteAsset(r.Context(), current, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
