// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrUnknownEngine     = errors.New("unknown engine")
	ErrEngineUnavailable = errors.New("engine is unavailable")
	ErrBoardFull         = errors.New("board has no free cells")
	ErrMoveCanceled      = errors.New("move computation canceled")
	ErrEngineFailure     = errors.New("engine failed to compute a move")

	ErrHistoryDisabled  = errors.New("move history is disabled")
	ErrInvalidFilter    = errors.New("invalid move history filter")
	ErrInvalidRetention = errors.New("retention period must be positive")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
