// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-tic-tac-toe/internal/adapter"
	"github.com/MKhiriev/go-tic-tac-toe/internal/config"
	"github.com/MKhiriev/go-tic-tac-toe/internal/logger"
	"github.com/MKhiriev/go-tic-tac-toe/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	adapter   adapter.MoveAdapter
	game      config.ClientGame
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(moves adapter.MoveAdapter, game config.ClientGame, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{adapter: moves, game: game, buildInfo: buildInfo, logger: logger}
}

// Play runs the game until the user quits. Quitting returns [ErrUserQuit].
func (t *TUI) Play(ctx context.Context) error {
	model, err := NewGameModel(ctx, t.adapter, models.Engine(t.game.Engine), t.game.GridSize, models.Player(t.game.HumanPlayer), t.buildInfo)
	if err != nil {
		return err
	}

	t.logger.Info().
		Str("engine", t.game.Engine).
		Int("grid_size", t.game.GridSize).
		Int("human_player", t.game.HumanPlayer).
		Msg("starting game")

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(*GameModel)
	if !ok {
		return errUnexpectedResult
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
