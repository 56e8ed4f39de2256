// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-tic-tac-toe/models"
)

const (
	FieldGridSize     = "grid_size"
	FieldMovingPlayer = "moving_player"
	FieldGrid         = "grid"
)

var moveRequestSchema = MustSchema(
	[]Field{
		MustIntegerField(FieldGridSize, true, false, WithMinValue(3), WithMaxValue(5)),
		MustIntegerField(FieldMovingPlayer, true, false, WithMinValue(1), WithMaxValue(2)),
		MustStringField(FieldGrid, true, false, AllowEmpty(false), WithMinLength(9), WithMaxLength(25)),
	},
	checkMoveBoard,
)

func checkMoveBoard(v ValidatedRequest) *FieldError {
	size, _ := v.Int(FieldGridSize)
	mover, _ := v.Int(FieldMovingPlayer)
	grid, _ := v.String(FieldGrid)

	return CheckBoard(grid, size, mover)
}

// MoveRequestValidator validates move requests: grid_size, moving_player
// and grid, followed by the board legality rules.
type MoveRequestValidator struct {
	schema *Schema
}

// NewMoveRequestValidator returns a validator backed by the shared move
// request schema.
func NewMoveRequestValidator() *MoveRequestValidator {
	return &MoveRequestValidator{schema: moveRequestSchema}
}

// Validate implements [Validator]. obj may be a [models.RequestEnvelope],
// a plain map or a [models.Position]. fields restricts the pass to the
// named fields; the board rules run only when no restriction is given.
func (v *MoveRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var envelope models.RequestEnvelope

	switch value := obj.(type) {
	case models.RequestEnvelope:
		envelope = value
	case map[string]any:
		envelope = value
	case models.Position:
		envelope = positionEnvelope(value)
	case *models.Position:
		if value == nil {
			return ErrUnsupportedType
		}
		envelope = positionEnvelope(*value)
	default:
		return ErrUnsupportedType
	}

	schema, err := v.schema.Subset(fields...)
	if err != nil {
		return err
	}

	return schema.Validate(envelope).Err()
}

// ValidateEnvelope runs the full schema on envelope.
func (v *MoveRequestValidator) ValidateEnvelope(envelope models.RequestEnvelope) *Result {
	return v.schema.Validate(envelope)
}

// Position validates envelope and projects it onto a [models.Position].
// It returns a [*ValidationError] when the request is rejected.
func (v *MoveRequestValidator) Position(envelope models.RequestEnvelope) (models.Position, error) {
	res := v.schema.Validate(envelope)
	if err := res.Err(); err != nil {
		return models.Position{}, err
	}

	validated := res.Validated()
	size, _ := validated.Int(FieldGridSize)
	mover, _ := validated.Int(FieldMovingPlayer)
	grid, _ := validated.String(FieldGrid)

	return models.Position{
		Grid:         grid,
		GridSize:     size,
		MovingPlayer: models.Player(mover),
	}, nil
}

func positionEnvelope(p models.Position) models.RequestEnvelope {
	return models.RequestEnvelope{
		FieldGridSize:     p.GridSize,
		FieldMovingPlayer: int(p.MovingPlayer),
		FieldGrid:         p.Grid,
	}
}
