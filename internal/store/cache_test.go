// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-tic-tac-toe/internal/config"
	"github.com/MKhiriev/go-tic-tac-toe/internal/logger"
	"github.com/MKhiriev/go-tic-tac-toe/models"
)

// fakeRedis implements the two commands the cache uses. Any other call
// panics on the nil embedded interface.
type fakeRedis struct {
	redis.Cmdable
	data map[string]string
	ttl  map[string]time.Duration
	err  error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.data[key] = fmt.Sprint(value)
	f.ttl[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

// ─────────────────────────────────────────────
// MoveCacheKey
// ─────────────────────────────────────────────

func TestMoveCacheKey(t *testing.T) {
	pos := models.Position{Grid: "110220000", GridSize: 3, MovingPlayer: models.PlayerX}

	key := MoveCacheKey(models.EngineMinMax, pos)
	assert.True(t, strings.HasPrefix(key, "ttt:move:min-max:"))
	assert.Len(t, strings.TrimPrefix(key, "ttt:move:min-max:"), 64)
	assert.Equal(t, key, MoveCacheKey(models.EngineMinMax, pos))

	other := []string{
		MoveCacheKey(models.EngineNeuralNetwork, pos),
		MoveCacheKey(models.EngineMinMax, models.Position{Grid: pos.Grid, GridSize: 3, MovingPlayer: models.PlayerO}),
		MoveCacheKey(models.EngineMinMax, models.Position{Grid: "110220001", GridSize: 3, MovingPlayer: models.PlayerX}),
	}
	for _, k := range other {
		assert.NotEqual(t, key, k)
	}
}

// ─────────────────────────────────────────────
// redisMoveCache
// ─────────────────────────────────────────────

func TestRedisMoveCache_MissThenHit(t *testing.T) {
	fake := newFakeRedis()
	cache := newRedisMoveCache(fake, nil, time.Minute, logger.Nop())
	ctx := testContext()

	move, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, move)

	require.NoError(t, cache.Set(ctx, "k", 7))
	assert.Equal(t, "7", fake.data["k"])
	assert.Equal(t, time.Minute, fake.ttl["k"])

	move, ok, err = cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 7, move)

	assert.NoError(t, cache.Close())
}

func TestRedisMoveCache_Errors(t *testing.T) {
	fake := newFakeRedis()
	fake.err = errors.New("connection reset")
	cache := newRedisMoveCache(fake, nil, time.Minute, logger.Nop())
	ctx := testContext()

	_, ok, err := cache.Get(ctx, "k")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrCache)

	assert.ErrorIs(t, cache.Set(ctx, "k", 1), ErrCache)
}

func TestRedisMoveCache_CorruptValue(t *testing.T) {
	fake := newFakeRedis()
	fake.data["k"] = "not-a-move"
	cache := newRedisMoveCache(fake, nil, time.Minute, logger.Nop())

	_, ok, err := cache.Get(testContext(), "k")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrCache)
}

func TestNewRedisMoveCache_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cache, err := NewRedisMoveCache(ctx, config.Redis{Address: "127.0.0.1:1"}, logger.Nop())
	assert.Nil(t, cache)
	assert.ErrorIs(t, err, ErrCache)
}

// ─────────────────────────────────────────────
// no-op backends
// ─────────────────────────────────────────────

func TestNopBackends(t *testing.T) {
	ctx := testContext()

	cache := NewNopMoveCache()
	require.NoError(t, cache.Set(ctx, "k", 1))
	_, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, cache.Close())

	repo := NewNopMoveRepository()
	assert.NoError(t, repo.SaveMove(ctx, testRecord()))
	_, err = repo.ListMoves(ctx, models.MoveFilter{})
	assert.ErrorIs(t, err, ErrJournalDisabled)
	deleted, err := repo.DeleteOlderThan(ctx, time.Now())
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

// ─────────────────────────────────────────────
// Storages
// ─────────────────────────────────────────────

func TestNewStorages_NothingConfigured(t *testing.T) {
	s, err := NewStorages(context.Background(), config.Storage{}, logger.Nop())
	require.NoError(t, err)

	assert.IsType(t, nopMoveRepository{}, s.MoveRepository)
	assert.IsType(t, nopMoveCache{}, s.MoveCache)
	assert.NoError(t, s.Close())
}

func TestNewStorages_BadDSN(t *testing.T) {
	s, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: "mysql://x"}}, logger.Nop())
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestNewStorages_UnreachableRedis(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	s, err := NewStorages(ctx, config.Storage{Redis: config.Redis{Address: "127.0.0.1:1"}}, logger.Nop())
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrCache)
}
