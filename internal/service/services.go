// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-tic-tac-toe/internal/config"
	"github.com/MKhiriev/go-tic-tac-toe/internal/logger"
	"github.com/MKhiriev/go-tic-tac-toe/internal/store"
	"github.com/MKhiriev/go-tic-tac-toe/internal/validators"
	"github.com/MKhiriev/go-tic-tac-toe/models"
)

type Services struct {
	MoveService    MoveService
	HistoryService HistoryService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, engines map[models.Engine]MoveEngine, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	moveService := NewMoveService(
		validators.NewMoveRequestValidator(),
		engines,
		storages.MoveCache,
		storages.MoveRepository,
		logger,
	)

	return &Services{
		MoveService:    NewMoveLoggingService().Wrap(moveService),
		HistoryService: NewHistoryService(storages.MoveRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
