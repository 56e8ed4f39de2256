// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-tic-tac-toe/internal/logger"
	"github.com/MKhiriev/go-tic-tac-toe/internal/mock"
	"github.com/MKhiriev/go-tic-tac-toe/internal/store"
	"github.com/MKhiriev/go-tic-tac-toe/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHistorySvc(t *testing.T, ctrl *gomock.Controller) (*historyService, *mock.MockMoveRepository) {
	t.Helper()
	journal := mock.NewMockMoveRepository(ctrl)
	svc := NewHistoryService(journal, logger.Nop()).(*historyService)
	svc.now = func() time.Time { return testNow }
	return svc, journal
}

// ─────────────────────────────────────────────
// ListMoves
// ─────────────────────────────────────────────

func TestHistoryService_ListMoves_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, journal := newTestHistorySvc(t, ctrl)
	ctx := context.Background()
	filter := models.MoveFilter{Engine: models.EngineMinMax, Limit: 10}
	records := []models.MoveRecord{{ID: "b", Move: 4}, {ID: "a", Move: 0}}

	journal.EXPECT().ListMoves(ctx, filter).Return(records, nil)

	got, err := svc.ListMoves(ctx, filter)

	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestHistoryService_ListMoves_EmptyEngineMeansAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, journal := newTestHistorySvc(t, ctrl)
	ctx := context.Background()

	journal.EXPECT().ListMoves(ctx, models.MoveFilter{}).Return(nil, nil)

	got, err := svc.ListMoves(ctx, models.MoveFilter{})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHistoryService_ListMoves_UnknownEngine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestHistorySvc(t, ctrl)

	_, err := svc.ListMoves(context.Background(), models.MoveFilter{Engine: "random"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestHistoryService_ListMoves_JournalDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, journal := newTestHistorySvc(t, ctrl)
	journal.EXPECT().ListMoves(gomock.Any(), gomock.Any()).Return(nil, store.ErrJournalDisabled)

	_, err := svc.ListMoves(context.Background(), models.MoveFilter{})

	assert.ErrorIs(t, err, ErrHistoryDisabled)
}

func TestHistoryService_ListMoves_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, journal := newTestHistorySvc(t, ctrl)
	dbErr := errors.New("connection reset")
	journal.EXPECT().ListMoves(gomock.Any(), gomock.Any()).Return(nil, dbErr)

	_, err := svc.ListMoves(context.Background(), models.MoveFilter{})

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "error listing moves")
}

// ─────────────────────────────────────────────
// PruneJournal
// ─────────────────────────────────────────────

func TestHistoryService_PruneJournal_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, journal := newTestHistorySvc(t, ctrl)
	ctx := context.Background()

	journal.EXPECT().DeleteOlderThan(ctx, testNow.Add(-24*time.Hour)).Return(int64(7), nil)

	deleted, err := svc.PruneJournal(ctx, 24*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, int64(7), deleted)
}

func TestHistoryService_PruneJournal_InvalidRetention(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestHistorySvc(t, ctrl)

	for _, d := range []time.Duration{0, -time.Minute} {
		_, err := svc.PruneJournal(context.Background(), d)
		assert.ErrorIs(t, err, ErrInvalidRetention)
	}
}

func TestHistoryService_PruneJournal_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, journal := newTestHistorySvc(t, ctrl)
	journal.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).Return(int64(0), store.ErrExecutingStatement)

	_, err := svc.PruneJournal(context.Background(), time.Hour)

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrExecutingStatement)
}
