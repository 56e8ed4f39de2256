// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-tic-tac-toe/internal/logger"
	"github.com/MKhiriev/go-tic-tac-toe/internal/service"
	"github.com/MKhiriev/go-tic-tac-toe/internal/store"
	"github.com/MKhiriev/go-tic-tac-toe/internal/utils"
	"github.com/MKhiriev/go-tic-tac-toe/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidBody:            http.StatusBadRequest,
	ErrUnsupportedContentType: http.StatusUnsupportedMediaType,
	ErrInvalidLimit:           http.StatusBadRequest,

	service.ErrUnknownEngine:     http.StatusNotFound,
	service.ErrBoardFull:         http.StatusUnprocessableEntity,
	service.ErrEngineUnavailable: http.StatusServiceUnavailable,
	service.ErrMoveCanceled:      http.StatusGatewayTimeout,
	service.ErrEngineFailure:     http.StatusInternalServerError,
	service.ErrHistoryDisabled:   http.StatusNotFound,
	service.ErrInvalidFilter:     http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers a failed request. A rejected move request gets its
// error map as the JSON body; every other error gets a plain-text body that
// only names internal failures generically.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		utils.WriteJSON(w, validationErr.ErrorMap(), http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg("request rejected")
	http.Error(w, err.Error(), status)
}
