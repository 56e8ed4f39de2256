// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-tic-tac-toe/internal/logger"
	"github.com/MKhiriev/go-tic-tac-toe/internal/validators"
	"github.com/MKhiriev/go-tic-tac-toe/models"
)

// MoveLoggingService is a [MoveServiceWrapper] that logs the outcome of
// every move request. Rejected requests are logged with their error map at
// warn level, engine failures at error level.
type MoveLoggingService struct {
	inner MoveService
}

func NewMoveLoggingService() MoveServiceWrapper {
	return &MoveLoggingService{}
}

func (s *MoveLoggingService) NextMove(ctx context.Context, engine models.Engine, envelope models.RequestEnvelope) (models.MoveResult, error) {
	log := logger.FromContext(ctx)

	result, err := s.inner.NextMove(ctx, engine, envelope)

	var validationErr *validators.ValidationError
	switch {
	case errors.As(err, &validationErr):
		log.Warn().
			Str("func", "*MoveLoggingService.NextMove").
			Str("engine", engine.String()).
			Interface("errors", validationErr.ErrorMap()).
			Msg("move request rejected")
	case err != nil:
		log.Err(err).
			Str("func", "*MoveLoggingService.NextMove").
			Str("engine", engine.String()).
			Msg("move request failed")
	default:
		log.Info().
			Str("func", "*MoveLoggingService.NextMove").
			Str("engine", engine.String()).
			Int("move", result.Move).
			Bool("cached", result.Cached).
			Dur("duration", result.Duration).
			Msg("move computed")
	}

	return result, err
}

func (s *MoveLoggingService) Wrap(inner MoveService) MoveService {
	s.inner = inner
	return s
}
