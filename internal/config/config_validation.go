// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tic-tac-toe/internal/validators"
	"github.com/MKhiriev/go-tic-tac-toe/models"
)

// gameRules checks the board size and player of the client game with the
// same field rules the server applies to move requests.
var gameRules validators.Validator = validators.NewMoveRequestValidator()

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup. Unset optional backends
// are valid.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if cfg.Storage.Redis.DB < 0 || cfg.Storage.Redis.TTL < 0 {
		return fmt.Errorf("%w: redis db and ttl must not be negative", ErrInvalidStorageConfigs)
	}

	e := cfg.Engine
	if e.DepthLimit3x3 < 0 || e.DepthLimit4x4 < 0 || e.DepthLimit5x5 < 0 {
		return fmt.Errorf("%w: depth limits must not be negative", ErrInvalidEngineConfigs)
	}

	if cfg.Model.RemoteTimeout < 0 {
		return fmt.Errorf("%w: negative remote timeout", ErrInvalidModelConfigs)
	}

	w := cfg.Workers
	if w.RetentionPeriod < 0 || (w.RetentionPeriod > 0 && w.PruneInterval <= 0) {
		return fmt.Errorf("%w: retention needs a positive prune interval", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	g := cfg.Game
	if g.Engine != "min-max" && g.Engine != "neural-network" {
		return fmt.Errorf("%w: unknown engine %q", ErrInvalidGameConfigs, g.Engine)
	}
	settings := models.RequestEnvelope{
		validators.FieldGridSize:     g.GridSize,
		validators.FieldMovingPlayer: g.HumanPlayer,
	}
	if err := gameRules.Validate(context.Background(), settings, validators.FieldGridSize, validators.FieldMovingPlayer); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidGameConfigs, err)
	}

	return nil
}
