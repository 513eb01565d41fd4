package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akarpovs/stockkeeper/internal/common"
	"github.com/akarpovs/stockkeeper/internal/logging"
	"github.com/akarpovs/stockkeeper/internal/server/models"
	"github.com/akarpovs/stockkeeper/internal/server/services"
)

// ItemHandler serves the inventory endpoints.
type ItemHandler struct {
	svc    *services.ItemService
	logger logging.Logger
}

func NewItemHandler(svc *services.ItemService, logger logging.Logger) *ItemHandler {
	return &ItemHandler{svc: svc, logger: logger}
}

// List answers GET /items/id with a plain JSON array of every row,
// soft-deleted ones included.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if list == nil {
		list = []models.Item{}
	}
	writeJSON(w, http.StatusOK, list)
}

// Upsert answers POST /items. The body is a full item; an existing row
// with the same id is replaced whole. A body with blank name and
// description soft-deletes the row.
func (h *ItemHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var item models.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.Upsert(r.Context(), &item); err != nil {
		if errors.Is(err, common.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, item)
}
