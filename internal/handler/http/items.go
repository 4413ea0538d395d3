package http

import (
	"net/http"

	"github.com/MKhiriev/idea-backlog/internal/logger"
	"github.com/MKhiriev/idea-backlog/internal/utils"
	"github.com/MKhiriev/idea-backlog/models"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) error {
	items, err := h.services.ItemService.ListItems(r.Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []models.Item{}
	}

	return h.writeJSON(w, r, items, http.StatusOK)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) error {
	id, err := itemIDParam(r)
	if err != nil {
		return err
	}

	item, err := h.services.ItemService.GetItem(r.Context(), id)
	if err != nil {
		return err
	}

	return h.writeJSON(w, r, item, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) error {
	var req models.ItemRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		return err
	}

	item, err := h.services.ItemService.CreateItem(r.Context(), req)
	if err != nil {
		return err
	}

	return h.writeJSON(w, r, item, http.StatusCreated)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) error {
	id, err := itemIDParam(r)
	if err != nil {
		return err
	}

	var req models.ItemRequest
	if err = decodeJSONBody(w, r, &req); err != nil {
		return err
	}

	item, err := h.services.ItemService.UpdateItem(r.Context(), id, req)
	if err != nil {
		return err
	}

	return h.writeJSON(w, r, item, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) error {
	id, err := itemIDParam(r)
	if err != nil {
		return err
	}

	if err = h.services.ItemService.DeleteItem(r.Context(), id); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// writeJSON writes a success body. A failed write is only logged: the
// status line is already out.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) error {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeJSON").Msg("error writing response")
	}
	return nil
}
