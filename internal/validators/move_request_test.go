// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-tic-tac-toe/models"
)

// ─────────────────────────────────────────────
// ValidateEnvelope
// ─────────────────────────────────────────────

func TestMoveRequestValidator_EmptyBoards(t *testing.T) {
	v := NewMoveRequestValidator()

	for _, size := range []int{3, 4, 5} {
		for _, mover := range []int{1, 2} {
			res := v.ValidateEnvelope(models.RequestEnvelope{
				FieldGridSize:     size,
				FieldMovingPlayer: mover,
				FieldGrid:         strings.Repeat("0", size*size),
			})
			assert.Truef(t, res.IsValid(), "size %d mover %d: %v", size, mover, res.Errors())
		}
	}
}

func TestMoveRequestValidator_FormValuesCoerced(t *testing.T) {
	res := NewMoveRequestValidator().ValidateEnvelope(models.RequestEnvelope{
		FieldGridSize:     "3",
		FieldMovingPlayer: "2",
		FieldGrid:         "010201102",
	})

	require.True(t, res.IsValid(), res.Errors())
	assert.Equal(t, ValidatedRequest{
		FieldGridSize:     3,
		FieldMovingPlayer: 2,
		FieldGrid:         "010201102",
	}, res.Validated())
}

func TestMoveRequestValidator_JSONNumbersCoerced(t *testing.T) {
	res := NewMoveRequestValidator().ValidateEnvelope(models.RequestEnvelope{
		FieldGridSize:     json.Number("3.0"),
		FieldMovingPlayer: json.Number("2"),
		FieldGrid:         "010201102",
	})

	require.True(t, res.IsValid(), res.Errors())
	assert.Equal(t, 3, res.Validated()[FieldGridSize])
	assert.Equal(t, 2, res.Validated()[FieldMovingPlayer])
}

func TestMoveRequestValidator_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		envelope models.RequestEnvelope
		want     map[string]Kind
	}{
		{
			name:     "nothing sent",
			envelope: models.RequestEnvelope{},
			want: map[string]Kind{
				FieldGridSize:     KindMissingField,
				FieldMovingPlayer: KindMissingField,
				FieldGrid:         KindMissingField,
			},
		},
		{
			name: "every field broken",
			envelope: models.RequestEnvelope{
				FieldGridSize:     "big",
				FieldMovingPlayer: nil,
				FieldGrid:         "",
			},
			want: map[string]Kind{
				FieldGridSize:     KindTypeMismatch,
				FieldMovingPlayer: KindNullNotAllowed,
				FieldGrid:         KindEmptyNotAllowed,
			},
		},
		{
			name: "board rules skipped while a field fails",
			envelope: models.RequestEnvelope{
				FieldGridSize:     7,
				FieldMovingPlayer: 1,
				FieldGrid:         "111000222",
			},
			want: map[string]Kind{FieldGridSize: KindAboveMaximum},
		},
		{
			name: "grid length mismatch",
			envelope: models.RequestEnvelope{
				FieldGridSize:     4,
				FieldMovingPlayer: 1,
				FieldGrid:         strings.Repeat("0", 12),
			},
			want: map[string]Kind{FieldGrid: KindGridLengthMismatch},
		},
		{
			name: "impossible move count",
			envelope: models.RequestEnvelope{
				FieldGridSize:     3,
				FieldMovingPlayer: 2,
				FieldGrid:         "110100000",
			},
			want: map[string]Kind{FieldGrid: KindImpossibleMoveCount},
		},
		{
			name: "game already decided",
			envelope: models.RequestEnvelope{
				FieldGridSize:     3,
				FieldMovingPlayer: 1,
				FieldGrid:         "111000222",
			},
			want: map[string]Kind{FieldGrid: KindGameAlreadyDecided},
		},
		{
			name: "wrong turn",
			envelope: models.RequestEnvelope{
				FieldGridSize:     3,
				FieldMovingPlayer: 1,
				FieldGrid:         "100000000",
			},
			want: map[string]Kind{FieldMovingPlayer: KindInvalidMoverTurn},
		},
	}

	v := NewMoveRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.ValidateEnvelope(tt.envelope)

			require.False(t, res.IsValid())
			got := map[string]Kind{}
			for _, fe := range res.FieldErrors() {
				got[fe.Field] = fe.Kind
			}
			assert.Equal(t, tt.want, got)
			assert.Len(t, res.Errors(), len(tt.want))
		})
	}
}

// ─────────────────────────────────────────────
// Position
// ─────────────────────────────────────────────

func TestMoveRequestValidator_Position(t *testing.T) {
	v := NewMoveRequestValidator()

	pos, err := v.Position(models.RequestEnvelope{
		FieldGridSize:     "3",
		FieldMovingPlayer: "2",
		FieldGrid:         "010201102",
	})
	require.NoError(t, err)
	assert.Equal(t, models.Position{Grid: "010201102", GridSize: 3, MovingPlayer: models.PlayerO}, pos)

	_, err = v.Position(models.RequestEnvelope{
		FieldGridSize:     3,
		FieldMovingPlayer: 1,
		FieldGrid:         "111000222",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.ErrorIs(t, err, ErrGameAlreadyDecided)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.ErrorMap(), FieldGrid)
}

// ─────────────────────────────────────────────
// Validator interface
// ─────────────────────────────────────────────

func TestMoveRequestValidator_Validate(t *testing.T) {
	var v Validator = NewMoveRequestValidator()
	ctx := context.Background()

	valid := models.Position{Grid: "000000000", GridSize: 3, MovingPlayer: models.PlayerX}

	assert.NoError(t, v.Validate(ctx, valid))
	assert.NoError(t, v.Validate(ctx, &valid))
	assert.NoError(t, v.Validate(ctx, map[string]any{"grid_size": 3, "moving_player": 2, "grid": "000000000"}))

	decided := models.Position{Grid: "111000222", GridSize: 3, MovingPlayer: models.PlayerX}
	assert.ErrorIs(t, v.Validate(ctx, decided), ErrGameAlreadyDecided)

	// a field subset skips the board rules
	assert.NoError(t, v.Validate(ctx, decided, FieldGrid, FieldGridSize))

	assert.ErrorIs(t, v.Validate(ctx, valid, "nope"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, (*models.Position)(nil)), ErrUnsupportedType)
}
