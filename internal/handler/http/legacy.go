// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/idea-backlog/models"
)

// legacyGetItem is kept for old clients. It never finds anything.
func (h *Handler) legacyGetItem(w http.ResponseWriter, r *http.Request) error {
	return NewHTTPError(http.StatusNotFound, nil)
}

// legacyCreateItem echoes a non-empty ?name= back. Nothing is stored.
func (h *Handler) legacyCreateItem(w http.ResponseWriter, r *http.Request) error {
	var req models.LegacyItemRequest
	if values := r.URL.Query(); values.Has("name") {
		name := values.Get("name")
		req.Name = &name
	}

	if err := h.legacyValidator.Validate(r.Context(), req); err != nil {
		return err
	}

	return h.writeJSON(w, r, models.LegacyItemResponse{OK: true, Name: *req.Name}, http.StatusOK)
}
