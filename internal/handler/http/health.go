package http

import (
	"net/http"

	"github.com/MKhiriev/idea-backlog/models"
)

// health answers 200 {"status":"ok"} once a no-op query went through the
// store. Any failure is rendered by the error layer.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) error {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		return err
	}

	return h.writeJSON(w, r, models.HealthResponse{Status: models.HealthStatusOK}, http.StatusOK)
}
