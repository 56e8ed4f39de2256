// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tic-tac-toe/internal/adapter"
	"github.com/MKhiriev/go-tic-tac-toe/internal/logger"
	"github.com/MKhiriev/go-tic-tac-toe/internal/tui"
)

type App struct {
	adapter adapter.MoveAdapter
	game    Game

	logger *logger.Logger
}

func NewApp(moves adapter.MoveAdapter, game Game, logger *logger.Logger) (*App, error) {
	if moves == nil || game == nil {
		return nil, errors.New("client app needs an adapter and a game")
	}
	return &App{adapter: moves, game: game, logger: logger}, nil
}

// Run probes the server and plays until the user quits. An unreachable
// server is only logged; the game reports failed moves itself.
func (a *App) Run(ctx context.Context) error {
	if version, err := a.adapter.ServerVersion(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("move server did not answer the version probe")
	} else {
		a.logger.Info().Str("server_version", version).Msg("connected to move server")
	}

	err := a.game.Play(ctx)
	if errors.Is(err, tui.ErrUserQuit) || errors.Is(err, context.Canceled) {
		a.logger.Info().Msg("game finished")
		return nil
	}
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}
	return nil
}
