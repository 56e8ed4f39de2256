// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-tic-tac-toe/models"
)

const (
	movesTable = "moves"

	// DefaultListLimit is used when a listing does not set a limit.
	DefaultListLimit uint64 = 100
	// MaxListLimit caps every listing.
	MaxListLimit uint64 = 1000
)

var moveColumns = []string{
	"id",
	"engine",
	"grid",
	"grid_size",
	"moving_player",
	"move",
	"cached",
	"trace_id",
	"created_at",
}

func buildInsertMoveQuery(format sq.PlaceholderFormat, rec models.MoveRecord) (string, []any, error) {
	query, args, err := sq.Insert(movesTable).
		Columns(moveColumns...).
		Values(
			rec.ID,
			string(rec.Engine),
			rec.Grid,
			rec.GridSize,
			int(rec.MovingPlayer),
			rec.Move,
			rec.Cached,
			rec.TraceID,
			rec.CreatedAt.UTC(),
		).
		PlaceholderFormat(format).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildListMovesQuery(format sq.PlaceholderFormat, filter models.MoveFilter) (string, []any, error) {
	limit := filter.Limit
	switch {
	case limit == 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}

	builder := sq.Select(moveColumns...).
		From(movesTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit)

	if filter.Engine != "" {
		builder = builder.Where(sq.Eq{"engine": string(filter.Engine)})
	}

	query, args, err := builder.PlaceholderFormat(format).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteMovesBeforeQuery(format sq.PlaceholderFormat, before time.Time) (string, []any, error) {
	query, args, err := sq.Delete(movesTable).
		Where(sq.Lt{"created_at": before.UTC()}).
		PlaceholderFormat(format).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
