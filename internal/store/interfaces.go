// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tic-tac-toe/models"
)

// MoveRepository persists the move journal.
type MoveRepository interface {
	// SaveMove appends rec to the journal.
	SaveMove(ctx context.Context, rec models.MoveRecord) error
	// ListMoves returns journal entries matching filter, newest first.
	ListMoves(ctx context.Context, filter models.MoveFilter) ([]models.MoveRecord, error)
	// DeleteOlderThan removes entries created before the given instant and
	// reports how many were removed.
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)
}

// MoveCache remembers moves that were already computed for a position.
type MoveCache interface {
	// Get returns the cached move for key. ok is false on a miss.
	Get(ctx context.Context, key string) (move int, ok bool, err error)
	// Set stores move under key.
	Set(ctx context.Context, key string, move int) error
	// Close releases the underlying connection.
	Close() error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
