// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package board

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedSize = errors.New("unsupported board size")
	ErrLengthMismatch  = errors.New("grid length does not match board size")
	ErrInvalidCell     = errors.New("invalid cell value")
	ErrCellOutOfRange  = errors.New("cell index out of range")
	ErrCellOccupied    = errors.New("cell is already occupied")
)

// CellError reports the first offending character of a grid string.
type CellError struct {
	Index int
	Value rune
}

func (e *CellError) Error() string {
	return fmt.Sprintf("invalid cell value %q at index %d", e.Value, e.Index)
}

func (e *CellError) Unwrap() error {
	return ErrInvalidCell
}
