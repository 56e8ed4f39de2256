// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package model

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tic-tac-toe/internal/board"
	"github.com/MKhiriev/go-tic-tac-toe/models"
)

// Predictor evaluates boards in batch. Every input holds one value per cell
// and every output the three outcome values.
type Predictor interface {
	Predict(ctx context.Context, inputs [][]float64) ([][]float64, error)
}

// Scorer picks moves by asking a [Predictor] how the game ends after each
// candidate move.
type Scorer struct {
	predictor Predictor
}

// NewScorer returns a scorer backed by p.
func NewScorer(p Predictor) *Scorer {
	return &Scorer{predictor: p}
}

// BestMove plays every free cell for mover and keeps the one whose
// predicted value, the larger of the draw and the mover-wins outputs, is
// highest. Ties keep the lower cell; the first free cell is returned when
// no prediction is positive.
func (s *Scorer) BestMove(ctx context.Context, g board.Grid, mover models.Player) (int, error) {
	if mover != models.PlayerX && mover != models.PlayerO {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPlayer, mover)
	}

	free := g.Free()
	if len(free) == 0 {
		return 0, ErrNoFreeCells
	}

	inputs := make([][]float64, len(free))
	for i, cell := range free {
		inputs[i] = encode(g, cell, mover)
	}

	outputs, err := s.predictor.Predict(ctx, inputs)
	if err != nil {
		return 0, fmt.Errorf("predict: %w", err)
	}
	if len(outputs) != len(inputs) {
		return 0, fmt.Errorf("%w: got %d predictions for %d boards", ErrShapeMismatch, len(outputs), len(inputs))
	}

	bestMove, bestValue := free[0], 0.0
	for i, out := range outputs {
		if len(out) != outputSize {
			return 0, fmt.Errorf("%w: prediction has %d values, want %d", ErrShapeMismatch, len(out), outputSize)
		}

		value := max(out[OutputDraw], out[int(mover)])
		if value > bestValue {
			bestMove, bestValue = free[i], value
		}
	}

	return bestMove, nil
}

// encode returns the input vector of g after mover marks cell.
func encode(g board.Grid, cell int, mover models.Player) []float64 {
	in := make([]float64, g.Len())
	for i := range in {
		in[i] = float64(g.At(i))
	}
	in[cell] = float64(mover)
	return in
}
