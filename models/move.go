// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RequestEnvelope is the raw, untyped view of a move request as it arrived
// over the wire. Keys are field names; a key that is missing from the map is
// an absent field, a key mapped to nil is an explicit null.
//
// Form bodies produce string values. JSON bodies may also carry float64,
// bool, nested maps and slices, all of which the validators must handle.
type RequestEnvelope map[string]any

// Position is a validated move request: the board, its edge length and the
// side that moves next.
type Position struct {
	// Grid holds GridSize² characters in row-major order, each one of
	// '0' (empty), '1' (X) or '2' (O).
	Grid string `json:"grid"`
	// GridSize is the edge length of the board, one of 3, 4 or 5.
	GridSize int `json:"grid_size"`
	// MovingPlayer is the side that has to move.
	MovingPlayer Player `json:"moving_player"`
}

// MoveResponse is the body returned to the caller on success.
type MoveResponse struct {
	// Move is the zero-based, row-major index of the chosen cell.
	Move int `json:"move"`
}

// MoveResult is what the move service hands back to the transport layer.
type MoveResult struct {
	Move     int
	Cached   bool
	Duration time.Duration
}
