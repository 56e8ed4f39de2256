// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-tic-tac-toe/internal/config"
	"github.com/MKhiriev/go-tic-tac-toe/internal/engine"
	"github.com/MKhiriev/go-tic-tac-toe/internal/logger"
	"github.com/MKhiriev/go-tic-tac-toe/internal/model"
	"github.com/MKhiriev/go-tic-tac-toe/models"
)

// NewEngines builds every engine the server routes to: the min-max search
// with the configured depth limits and the regression scorer, served either
// by a remote model server or by the model files of cfg.Model.Dir.
func NewEngines(cfg *config.StructuredConfig, log *logger.Logger) (map[models.Engine]MoveEngine, error) {
	minMax, err := engine.NewMinMax(engine.DepthLimits{
		Size3: cfg.Engine.DepthLimit3x3,
		Size4: cfg.Engine.DepthLimit4x4,
		Size5: cfg.Engine.DepthLimit5x5,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating min-max engine: %w", err)
	}

	var registry *model.Registry
	if cfg.Model.RemoteAddress != "" {
		log.Info().Str("func", "NewEngines").Str("address", cfg.Model.RemoteAddress).Msg("using remote model server")
		registry = model.NewRemoteRegistry(model.NewRemotePredictor(cfg.Model.RemoteAddress, cfg.Model.RemoteTimeout))
	} else {
		registry, err = model.LoadDir(cfg.Model.Dir, log)
		if err != nil {
			return nil, fmt.Errorf("error loading models: %w", err)
		}
		log.Info().Str("func", "NewEngines").Ints("sizes", registry.Sizes()).Msg("models loaded")
	}

	return map[models.Engine]MoveEngine{
		models.EngineMinMax:        minMax,
		models.EngineNeuralNetwork: registry,
	}, nil
}
