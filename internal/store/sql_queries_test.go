// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-tic-tac-toe/models"
)

func testRecord() models.MoveRecord {
	return models.MoveRecord{
		ID:           "0192a4e0-0000-7000-8000-000000000001",
		Engine:       models.EngineMinMax,
		Grid:         "110220000",
		GridSize:     3,
		MovingPlayer: models.PlayerX,
		Move:         2,
		Cached:       true,
		TraceID:      "trace-1",
		CreatedAt:    time.Date(2026, 10, 1, 12, 0, 0, 0, time.FixedZone("MSK", 3*60*60)),
	}
}

func Test_buildInsertMoveQuery(t *testing.T) {
	tests := []struct {
		name   string
		format sq.PlaceholderFormat
		want   string
	}{
		{
			name:   "postgres",
			format: sq.Dollar,
			want: "INSERT INTO moves (id,engine,grid,grid_size,moving_player,move,cached,trace_id,created_at) " +
				"VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)",
		},
		{
			name:   "sqlite",
			format: sq.Question,
			want: "INSERT INTO moves (id,engine,grid,grid_size,moving_player,move,cached,trace_id,created_at) " +
				"VALUES (?,?,?,?,?,?,?,?,?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testRecord()

			query, args, err := buildInsertMoveQuery(tt.format, rec)
			require.NoError(t, err)

			assert.Equal(t, tt.want, query)
			require.Len(t, args, len(moveColumns))
			assert.Equal(t, []any{
				rec.ID, "min-max", "110220000", 3, 1, 2, true, "trace-1", rec.CreatedAt.UTC(),
			}, args)
			assert.Equal(t, time.UTC, args[8].(time.Time).Location())
		})
	}
}

func Test_buildListMovesQuery(t *testing.T) {
	tests := []struct {
		name     string
		format   sq.PlaceholderFormat
		filter   models.MoveFilter
		want     string
		wantArgs []any
	}{
		{
			name:   "default limit",
			format: sq.Dollar,
			want: "SELECT id, engine, grid, grid_size, moving_player, move, cached, trace_id, created_at " +
				"FROM moves ORDER BY created_at DESC, id DESC LIMIT 100",
		},
		{
			name:   "engine filter postgres",
			format: sq.Dollar,
			filter: models.MoveFilter{Engine: models.EngineNeuralNetwork, Limit: 10},
			want: "SELECT id, engine, grid, grid_size, moving_player, move, cached, trace_id, created_at " +
				"FROM moves WHERE engine = $1 ORDER BY created_at DESC, id DESC LIMIT 10",
			wantArgs: []any{"neural-network"},
		},
		{
			name:   "engine filter sqlite",
			format: sq.Question,
			filter: models.MoveFilter{Engine: models.EngineMinMax},
			want: "SELECT id, engine, grid, grid_size, moving_player, move, cached, trace_id, created_at " +
				"FROM moves WHERE engine = ? ORDER BY created_at DESC, id DESC LIMIT 100",
			wantArgs: []any{"min-max"},
		},
		{
			name:   "limit is capped",
			format: sq.Question,
			filter: models.MoveFilter{Limit: 5000},
			want: "SELECT id, engine, grid, grid_size, moving_player, move, cached, trace_id, created_at " +
				"FROM moves ORDER BY created_at DESC, id DESC LIMIT 1000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListMovesQuery(tt.format, tt.filter)
			require.NoError(t, err)

			assert.Equal(t, tt.want, query)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func Test_buildDeleteMovesBeforeQuery(t *testing.T) {
	before := time.Date(2026, 9, 1, 0, 0, 0, 0, time.FixedZone("EST", -5*60*60))

	query, args, err := buildDeleteMovesBeforeQuery(sq.Dollar, before)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM moves WHERE created_at < $1", query)
	require.Len(t, args, 1)
	assert.Equal(t, before.UTC(), args[0])

	query, _, err = buildDeleteMovesBeforeQuery(sq.Question, before)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM moves WHERE created_at < ?", query)
}
