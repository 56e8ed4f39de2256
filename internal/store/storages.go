// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tic-tac-toe/internal/config"
	"github.com/MKhiriev/go-tic-tac-toe/internal/logger"
)

// Storages bundles the persistence backends of the server. Backends that
// are not configured are replaced by no-op implementations.
type Storages struct {
	MoveRepository MoveRepository
	MoveCache      MoveCache

	db *DB
}

// NewStorages connects every configured backend and applies the journal
// migrations.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	s := &Storages{
		MoveRepository: NewNopMoveRepository(),
		MoveCache:      NewNopMoveCache(),
	}

	if cfg.DB.DSN != "" {
		db, err := NewConnect(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("error connecting journal database: %w", err)
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, err
		}
		s.db = db
		s.MoveRepository = NewMoveRepository(db, log)
	} else {
		log.Info().Str("func", "NewStorages").Msg("move journal is disabled")
	}

	if cfg.Redis.Address != "" {
		cache, err := NewRedisMoveCache(ctx, cfg.Redis, log)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.MoveCache = cache
	} else {
		log.Info().Str("func", "NewStorages").Msg("move cache is disabled")
	}

	return s, nil
}

// Close releases every open backend.
func (s *Storages) Close() error {
	var errs []error
	if s.MoveCache != nil {
		errs = append(errs, s.MoveCache.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	return errors.Join(errs...)
}
