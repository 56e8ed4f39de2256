// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-tic-tac-toe/internal/logger"
	"github.com/MKhiriev/go-tic-tac-toe/models"
)

const (
	defaultRetryBase     = 50 * time.Millisecond
	defaultRetryAttempts = 3
)

// moveRepository is the SQL implementation of [MoveRepository]. It runs
// against PostgreSQL or SQLite; the placeholder style follows the dialect
// of the embedded [*DB].
//
// Statements that fail with an error the dialect's [ErrorClassificator]
// marks as [Retryable] are retried with exponential backoff.
type moveRepository struct {
	*DB
	logger    *logger.Logger
	retryBase time.Duration
	attempts  uint64
}

// NewMoveRepository constructs a [MoveRepository] backed by db.
func NewMoveRepository(db *DB, logger *logger.Logger) MoveRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating move repository")
	return &moveRepository{
		DB:        db,
		logger:    logger,
		retryBase: defaultRetryBase,
		attempts:  defaultRetryAttempts,
	}
}

// SaveMove inserts rec into the journal.
func (r *moveRepository) SaveMove(ctx context.Context, rec models.MoveRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertMoveQuery(r.placeholder(), rec)
	if err != nil {
		log.Err(err).Str("func", "*moveRepository.SaveMove").Msg("failed to create query")
		return err
	}

	return r.withRetry(ctx, func(ctx context.Context) error {
		res, err := r.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).
				Str("func", "*moveRepository.SaveMove").
				Str("move_id", rec.ID).
				Msg("failed to insert move")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrMoveNotSaved
		}

		return nil
	})
}

// ListMoves returns the journal entries matching filter, newest first.
func (r *moveRepository) ListMoves(ctx context.Context, filter models.MoveFilter) ([]models.MoveRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMovesQuery(r.placeholder(), filter)
	if err != nil {
		log.Err(err).Str("func", "*moveRepository.ListMoves").Msg("failed to create query")
		return nil, err
	}

	var records []models.MoveRecord
	err = r.withRetry(ctx, func(ctx context.Context) error {
		var queryErr error
		records, queryErr = r.queryMoves(ctx, query, args)
		return queryErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*moveRepository.ListMoves").
			Str("engine", string(filter.Engine)).
			Msg("failed to list moves")
		return nil, err
	}

	return records, nil
}

func (r *moveRepository) queryMoves(ctx context.Context, query string, args []any) ([]models.MoveRecord, error) {
	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.MoveRecord, 0, 32)
	for rows.Next() {
		var (
			rec    models.MoveRecord
			engine string
			player int
		)

		if err := rows.Scan(
			&rec.ID,
			&engine,
			&rec.Grid,
			&rec.GridSize,
			&player,
			&rec.Move,
			&rec.Cached,
			&rec.TraceID,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		rec.Engine = models.Engine(engine)
		rec.MovingPlayer = models.Player(player)
		rec.CreatedAt = rec.CreatedAt.UTC()
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// DeleteOlderThan removes every entry created before the given instant.
func (r *moveRepository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteMovesBeforeQuery(r.placeholder(), before)
	if err != nil {
		log.Err(err).Str("func", "*moveRepository.DeleteOlderThan").Msg("failed to create query")
		return 0, err
	}

	var deleted int64
	err = r.withRetry(ctx, func(ctx context.Context) error {
		res, err := r.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		deleted, err = res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*moveRepository.DeleteOlderThan").
			Time("before", before).
			Msg("failed to delete old moves")
		return 0, err
	}

	return deleted, nil
}

// withRetry runs fn until it succeeds, fails with a non-retryable error or
// runs out of attempts.
func (r *moveRepository) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(r.attempts, retry.NewExponential(r.retryBase))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && r.errorClassificator != nil && r.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "*moveRepository.withRetry").Msg("retrying statement")
			return retry.RetryableError(err)
		}
		return err
	})
}
