// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tic-tac-toe/models"
)

// nopMoveRepository stands in for the journal when no database is
// configured. Writes are dropped and reads report [ErrJournalDisabled].
type nopMoveRepository struct{}

// NewNopMoveRepository returns a journal that stores nothing.
func NewNopMoveRepository() MoveRepository {
	return nopMoveRepository{}
}

func (nopMoveRepository) SaveMove(context.Context, models.MoveRecord) error {
	return nil
}

func (nopMoveRepository) ListMoves(context.Context, models.MoveFilter) ([]models.MoveRecord, error) {
	return nil, ErrJournalDisabled
}

func (nopMoveRepository) DeleteOlderThan(context.Context, time.Time) (int64, error) {
	return 0, nil
}

// nopMoveCache stands in for the cache when no Redis is configured. Every
// lookup misses.
type nopMoveCache struct{}

// NewNopMoveCache returns a cache that never hits.
func NewNopMoveCache() MoveCache {
	return nopMoveCache{}
}

func (nopMoveCache) Get(context.Context, string) (int, bool, error) {
	return 0, false, nil
}

func (nopMoveCache) Set(context.Context, string, int) error {
	return nil
}

func (nopMoveCache) Close() error {
	return nil
}
