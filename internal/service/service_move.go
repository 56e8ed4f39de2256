// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tic-tac-toe/internal/engine"
	"github.com/MKhiriev/go-tic-tac-toe/internal/logger"
	"github.com/MKhiriev/go-tic-tac-toe/internal/model"
	"github.com/MKhiriev/go-tic-tac-toe/internal/store"
	"github.com/MKhiriev/go-tic-tac-toe/internal/utils"
	"github.com/MKhiriev/go-tic-tac-toe/models"
)

// moveService implements [MoveService].
//
// A request goes through validation, the move cache, the engine selected by
// name and finally the journal. Cache and journal failures are logged and
// never fail the request.
type moveService struct {
	validator PositionValidator
	engines   map[models.Engine]MoveEngine
	cache     store.MoveCache
	journal   store.MoveRepository
	ids       IDGenerator
	now       func() time.Time

	logger *logger.Logger
}

// NewMoveService constructs a [MoveService]. engines maps every served
// engine name to its implementation.
func NewMoveService(
	validator PositionValidator,
	engines map[models.Engine]MoveEngine,
	cache store.MoveCache,
	journal store.MoveRepository,
	logger *logger.Logger,
) MoveService {
	return &moveService{
		validator: validator,
		engines:   engines,
		cache:     cache,
		journal:   journal,
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *moveService) NextMove(ctx context.Context, name models.Engine, envelope models.RequestEnvelope) (models.MoveResult, error) {
	log := logger.FromContext(ctx)
	start := s.now()

	moveEngine, ok := s.engines[name]
	if !ok {
		return models.MoveResult{}, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}

	pos, err := s.validator.Position(envelope)
	if err != nil {
		return models.MoveResult{}, err
	}

	key := store.MoveCacheKey(name, pos)
	if move, hit := s.cached(ctx, key, pos); hit {
		s.record(ctx, name, pos, move, true, start)
		return models.MoveResult{Move: move, Cached: true, Duration: s.now().Sub(start)}, nil
	}

	move, err := moveEngine.NextMove(ctx, pos)
	if err != nil {
		log.Err(err).
			Str("func", "*moveService.NextMove").
			Str("engine", name.String()).
			Str("grid", pos.Grid).
			Msg("engine failed")
		return models.MoveResult{}, mapEngineError(err)
	}

	if err = s.cache.Set(ctx, key, move); err != nil {
		log.Warn().Err(err).Str("func", "*moveService.NextMove").Msg("failed to cache move")
	}
	s.record(ctx, name, pos, move, false, start)

	return models.MoveResult{Move: move, Duration: s.now().Sub(start)}, nil
}

// cached looks key up and accepts the stored move only if it still names a
// free cell of pos.
func (s *moveService) cached(ctx context.Context, key string, pos models.Position) (int, bool) {
	move, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*moveService.cached").Msg("failed to read move cache")
		return 0, false
	}
	if !hit {
		return 0, false
	}
	if move < 0 || move >= len(pos.Grid) || pos.Grid[move] != models.NoPlayer.Cell() {
		logger.FromContext(ctx).Warn().Str("func", "*moveService.cached").Int("move", move).Msg("ignoring stale cached move")
		return 0, false
	}
	return move, true
}

func (s *moveService) record(ctx context.Context, name models.Engine, pos models.Position, move int, cached bool, at time.Time) {
	rec := models.MoveRecord{
		ID:           s.ids.Generate(),
		Engine:       name,
		Grid:         pos.Grid,
		GridSize:     pos.GridSize,
		MovingPlayer: pos.MovingPlayer,
		Move:         move,
		Cached:       cached,
		TraceID:      utils.GetTraceIDFromContext(ctx),
		CreatedAt:    at.UTC(),
	}

	if err := s.journal.SaveMove(ctx, rec); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*moveService.record").Str("move_id", rec.ID).Msg("failed to journal move")
	}
}

// mapEngineError translates engine and model failures into service errors.
// The original error stays in the chain.
func mapEngineError(err error) error {
	switch {
	case errors.Is(err, engine.ErrNoFreeCells), errors.Is(err, model.ErrNoFreeCells):
		return fmt.Errorf("%w: %w", ErrBoardFull, err)
	case errors.Is(err, engine.ErrSearchCanceled),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrMoveCanceled, err)
	case errors.Is(err, model.ErrModelNotLoaded), errors.Is(err, model.ErrRemotePredictor):
		return fmt.Errorf("%w: %w", ErrEngineUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", ErrEngineFailure, err)
	}
}
