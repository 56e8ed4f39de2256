// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package model

import "errors"

var (
	ErrModelNotLoaded  = errors.New("no model loaded for this board size")
	ErrInvalidModel    = errors.New("invalid model file")
	ErrShapeMismatch   = errors.New("input does not match the network shape")
	ErrNoFreeCells     = errors.New("no free cells left on the board")
	ErrInvalidPlayer   = errors.New("moving player must be X or O")
	ErrRemotePredictor = errors.New("remote predictor failed")
)
