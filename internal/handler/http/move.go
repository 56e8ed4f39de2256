// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-tic-tac-toe/internal/logger"
	"github.com/MKhiriev/go-tic-tac-toe/internal/utils"
	"github.com/MKhiriev/go-tic-tac-toe/models"
)

const moveCachedHeader = "X-Move-Cached"

// nextMove returns the handler of the move route served by engine.
func (h *Handler) nextMove(engine models.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		envelope, err := decodeEnvelope(w, r)
		if err != nil {
			log.Err(err).Str("func", "*Handler.nextMove").Msg("failed to decode move request")
			writeError(w, r, err)
			return
		}

		result, err := h.services.MoveService.NextMove(r.Context(), engine, envelope)
		if err != nil {
			writeError(w, r, err)
			return
		}

		w.Header().Set(moveCachedHeader, strconv.FormatBool(result.Cached))
		utils.WriteJSON(w, models.MoveResponse{Move: result.Move}, http.StatusOK)
	}
}
