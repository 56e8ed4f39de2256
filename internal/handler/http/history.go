// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-tic-tac-toe/internal/utils"
	"github.com/MKhiriev/go-tic-tac-toe/models"
)

// listMoves serves the move journal, newest entries first. The optional
// query parameters are "engine" and "limit".
func (h *Handler) listMoves(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := models.MoveFilter{Engine: models.Engine(query.Get("engine"))}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || limit == 0 {
			writeError(w, r, fmt.Errorf("%w: %q", ErrInvalidLimit, raw))
			return
		}
		filter.Limit = limit
	}

	records, err := h.services.HistoryService.ListMoves(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if records == nil {
		records = []models.MoveRecord{}
	}

	utils.WriteJSON(w, records, http.StatusOK)
}
