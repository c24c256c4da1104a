package http

import (
	"net/http"

	"github.com/MKhiriev/asset-management/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetAppVersion(r.Context()), http.StatusOK)
}
