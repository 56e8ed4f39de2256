// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/hex"
	"strconv"

	"golang.org/x/crypto/blake2b"

	"github.com/MKhiriev/go-tic-tac-toe/models"
)

const moveCacheKeyPrefix = "ttt:move:"

// MoveCacheKey returns the cache key of the move engine computes for pos.
// The position is hashed so keys have a fixed length for every board size.
func MoveCacheKey(engine models.Engine, pos models.Position) string {
	payload := make([]byte, 0, len(pos.Grid)+8)
	payload = strconv.AppendInt(payload, int64(pos.GridSize), 10)
	payload = append(payload, '|')
	payload = strconv.AppendInt(payload, int64(pos.MovingPlayer), 10)
	payload = append(payload, '|')
	payload = append(payload, pos.Grid...)

	sum := blake2b.Sum256(payload)
	return moveCacheKeyPrefix + string(engine) + ":" + hex.EncodeToString(sum[:])
}
