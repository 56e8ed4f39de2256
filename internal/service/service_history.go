// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tic-tac-toe/internal/logger"
	"github.com/MKhiriev/go-tic-tac-toe/internal/store"
	"github.com/MKhiriev/go-tic-tac-toe/models"
)

type historyService struct {
	journal store.MoveRepository
	now     func() time.Time

	logger *logger.Logger
}

func NewHistoryService(journal store.MoveRepository, logger *logger.Logger) HistoryService {
	return &historyService{
		journal: journal,
		now:     time.Now,
		logger:  logger,
	}
}

func (s *historyService) ListMoves(ctx context.Context, filter models.MoveFilter) ([]models.MoveRecord, error) {
	if filter.Engine != "" && !filter.Engine.IsValid() {
		return nil, fmt.Errorf("%w: unknown engine %q", ErrInvalidFilter, filter.Engine)
	}

	records, err := s.journal.ListMoves(ctx, filter)
	if errors.Is(err, store.ErrJournalDisabled) {
		return nil, ErrHistoryDisabled
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*historyService.ListMoves").Msg("failed to list moves")
		return nil, fmt.Errorf("error listing moves: %w", err)
	}

	return records, nil
}

func (s *historyService) PruneJournal(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, ErrInvalidRetention
	}

	before := s.now().Add(-olderThan)
	deleted, err := s.journal.DeleteOlderThan(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("error pruning journal: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*historyService.PruneJournal").
		Time("before", before).
		Int64("deleted", deleted).
		Msg("journal pruned")

	return deleted, nil
}
