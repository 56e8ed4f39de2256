// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-tic-tac-toe/internal/config"
	"github.com/MKhiriev/go-tic-tac-toe/internal/logger"
)

// redisMoveCache is the Redis implementation of [MoveCache]. Moves are
// stored as plain integers with a fixed TTL.
type redisMoveCache struct {
	client redis.Cmdable
	closer io.Closer
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisMoveCache connects to the Redis server described by cfg and pings
// it.
func NewRedisMoveCache(ctx context.Context, cfg config.Redis, log *logger.Logger) (MoveCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisMoveCache").Str("address", cfg.Address).Msg("error connecting redis (ping)")
		client.Close()
		return nil, fmt.Errorf("%w: %w", ErrCache, err)
	}
	log.Info().Str("func", "NewRedisMoveCache").Str("address", cfg.Address).Msg("connected to redis successfully")

	return newRedisMoveCache(client, client, cfg.TTL, log), nil
}

func newRedisMoveCache(client redis.Cmdable, closer io.Closer, ttl time.Duration, log *logger.Logger) *redisMoveCache {
	return &redisMoveCache{
		client: client,
		closer: closer,
		ttl:    ttl,
		logger: log,
	}
}

// Get returns the move stored under key. A missing key is a miss, not an
// error.
func (c *redisMoveCache) Get(ctx context.Context, key string) (int, bool, error) {
	move, err := c.client.Get(ctx, key).Int()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisMoveCache.Get").Str("key", key).Msg("cache read failed")
		return 0, false, fmt.Errorf("%w: %w", ErrCache, err)
	}

	return move, true, nil
}

// Set stores move under key for the configured TTL.
func (c *redisMoveCache) Set(ctx context.Context, key string, move int) error {
	if err := c.client.Set(ctx, key, move, c.ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisMoveCache.Set").Str("key", key).Msg("cache write failed")
		return fmt.Errorf("%w: %w", ErrCache, err)
	}

	return nil
}

func (c *redisMoveCache) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}
