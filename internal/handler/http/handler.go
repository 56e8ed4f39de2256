// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-tic-tac-toe/internal/config"
	"github.com/MKhiriev/go-tic-tac-toe/internal/logger"
	"github.com/MKhiriev/go-tic-tac-toe/internal/service"
	"github.com/MKhiriev/go-tic-tac-toe/internal/utils"
)

type Handler struct {
	services *service.Services

	// tokenSignKey enables bearer authentication when non-empty.
	tokenSignKey string
	tokenIssuer  string
	// hasher is nil when body integrity checks are disabled.
	hasher         *utils.Hasher
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	h := &Handler{
		services:       services,
		tokenSignKey:   cfg.App.TokenSignKey,
		tokenIssuer:    cfg.App.TokenIssuer,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
	if cfg.App.HashKey != "" {
		h.hasher = utils.NewHasher(cfg.App.HashKey)
	}

	logger.Info().
		Bool("auth", h.authEnabled()).
		Bool("integrity_check", h.hasher != nil).
		Msg("http handler created")
	return h
}

func (h *Handler) authEnabled() bool {
	return h.tokenSignKey != ""
}
