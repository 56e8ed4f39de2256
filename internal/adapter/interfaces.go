// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the move server protocol.
//
// The primary abstraction is [MoveAdapter], which decouples the terminal game
// from the transport. The package ships an HTTP/REST implementation
// ([NewHTTPMoveAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrBoardFull] for
// 422, [ErrEngineUnavailable] for 503). A rejected request surfaces as a
// [*RequestRejectedError] carrying the per-field messages of the server.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-tic-tac-toe/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// MoveAdapter defines transport-agnostic communication with the move server.
type MoveAdapter interface {
	// NextMove asks engine for the move of pos.MovingPlayer and returns the
	// zero-based index of the chosen cell.
	NextMove(ctx context.Context, engine models.Engine, pos models.Position) (int, error)

	// ServerVersion returns the version string reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
