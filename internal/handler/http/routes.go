// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-tic-tac-toe/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZipRequest)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// move endpoints
	router.Group(func(r chi.Router) {
		if h.authEnabled() {
			r.Use(h.auth)
		}
		if h.hasher != nil {
			r.Use(h.checkHash)
		}
		r.Post("/tic-tac-toe/min-max", h.nextMove(models.EngineMinMax))
		r.Post("/tic-tac-toe/neural-network", h.nextMove(models.EngineNeuralNetwork))
	})

	router.Group(func(r chi.Router) {
		if h.authEnabled() {
			r.Use(h.auth)
		}
		r.Get("/api/moves/", h.listMoves)
	})

	router.Get("/api/version/", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
