package http

import (
	"net/http"

	"github.com/MKhiriev/idea-backlog/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) error {
	buildInfo := h.services.AppInfoService.GetBuildInfo(r.Context())

	return h.writeJSON(w, r, models.NewVersionResponse(buildInfo), http.StatusOK)
}
