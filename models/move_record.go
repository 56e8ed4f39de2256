// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MoveRecord is one entry of the move journal.
type MoveRecord struct {
	// ID is a time-ordered UUID (v7) assigned by the service.
	ID string `json:"id"`
	// Engine is the move generator that produced Move.
	Engine Engine `json:"engine"`

	Grid         string `json:"grid"`
	GridSize     int    `json:"grid_size"`
	MovingPlayer Player `json:"moving_player"`
	Move         int    `json:"move"`

	// Cached reports whether Move was served from the move cache.
	Cached bool `json:"cached"`
	// TraceID links the entry to the request logs.
	TraceID string `json:"trace_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// MoveFilter narrows a journal listing.
type MoveFilter struct {
	// Engine restricts the listing to one engine. Empty means all engines.
	Engine Engine
	// Limit caps the number of returned entries, newest first. Zero means
	// the repository default.
	Limit uint64
}
