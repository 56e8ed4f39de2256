// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package engine

import "errors"

var (
	ErrGameOver         = errors.New("game is already decided")
	ErrNoFreeCells      = errors.New("no free cells left on the board")
	ErrInvalidPlayer    = errors.New("moving player must be X or O")
	ErrInvalidDepth     = errors.New("depth limit must not be negative")
	ErrSearchCanceled   = errors.New("move search canceled")
	ErrUnsupportedBoard = errors.New("unsupported board size")
)
