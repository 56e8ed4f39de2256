// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=MoveServiceWrapper

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tic-tac-toe/models"
)

// MoveService answers move requests: it validates the raw request, picks
// the engine and returns the chosen cell.
type MoveService interface {
	// NextMove validates envelope and returns the move engine computes for
	// it. A rejected request yields a *validators.ValidationError.
	NextMove(ctx context.Context, engine models.Engine, envelope models.RequestEnvelope) (models.MoveResult, error)
}

// HistoryService reads and prunes the move journal.
type HistoryService interface {
	ListMoves(ctx context.Context, filter models.MoveFilter) ([]models.MoveRecord, error)
	// PruneJournal deletes entries older than olderThan and reports how
	// many were removed.
	PruneJournal(ctx context.Context, olderThan time.Duration) (int64, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// MoveEngine computes a move for a validated position.
type MoveEngine interface {
	NextMove(ctx context.Context, pos models.Position) (int, error)
}

// PositionValidator turns a raw request into a validated position.
type PositionValidator interface {
	Position(envelope models.RequestEnvelope) (models.Position, error)
}

// IDGenerator issues journal entry identifiers.
type IDGenerator interface {
	Generate() string
}

// MoveServiceWrapper defines middleware composition for MoveService.
// Implementations wrap an existing MoveService to add behavior such as
// logging.
type MoveServiceWrapper interface {
	Wrap(MoveService) MoveService // returns a decorated MoveService applying additional behavior
}
