// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-tic-tac-toe/internal/adapter"
	"github.com/MKhiriev/go-tic-tac-toe/internal/board"
	"github.com/MKhiriev/go-tic-tac-toe/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTimeout = 2 * time.Second

// GameModel is a single game against a server engine.
//
// X always opens. When the human plays O the engine moves first. Every
// restart starts a new round; engine replies of an earlier round are dropped.
type GameModel struct {
	ctx     context.Context
	adapter adapter.MoveAdapter
	engine  models.Engine
	human   models.Player

	grid     board.Grid
	cursor   int
	round    int
	thinking bool

	status string
	errMsg string

	buildInfo     models.AppBuildInfo
	serverVersion string
	showBuildInfo bool
	quitByUser    bool

	copyToClipboard func(string) error
}

// NewGameModel returns a model for a size×size game. human must be PlayerX
// or PlayerO.
func NewGameModel(ctx context.Context, moves adapter.MoveAdapter, engine models.Engine, size int, human models.Player, buildInfo models.AppBuildInfo) (*GameModel, error) {
	if !engine.IsValid() {
		return nil, fmt.Errorf("%w: unknown engine %q", ErrInvalidGame, engine)
	}
	if human != models.PlayerX && human != models.PlayerO {
		return nil, fmt.Errorf("%w: human player must be X or O", ErrInvalidGame)
	}
	grid, err := board.New(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGame, err)
	}

	return &GameModel{
		ctx:             ctx,
		adapter:         moves,
		engine:          engine,
		human:           human,
		grid:            grid,
		buildInfo:       buildInfo,
		copyToClipboard: clipboard.WriteAll,
	}, nil
}

func (m *GameModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.cmdServerVersion()}
	if m.human == models.PlayerO {
		m.thinking = true
		cmds = append(cmds, m.cmdEngineMove())
	}
	return tea.Batch(cmds...)
}

func (m *GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case engineMoveMsg:
		return m.applyEngineMove(msg)
	case serverVersionMsg:
		if msg.err == nil {
			m.serverVersion = msg.version
		}
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m *GameModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.version) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	size := m.grid.Size()
	switch {
	case key.Matches(msg, keys.up):
		if m.cursor >= size {
			m.cursor -= size
		}
	case key.Matches(msg, keys.down):
		if m.cursor < m.grid.Len()-size {
			m.cursor += size
		}
	case key.Matches(msg, keys.left):
		if m.cursor%size > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.right):
		if m.cursor%size < size-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.enter):
		return m.placeHumanMark()
	case key.Matches(msg, keys.restart):
		return m.restart()
	case key.Matches(msg, keys.copy):
		if err := m.copyToClipboard(m.grid.String()); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.status = "Grid copied: " + m.grid.String()
		return m, clearStatusAfter(statusTimeout)
	case key.Matches(msg, keys.version):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m *GameModel) placeHumanMark() (tea.Model, tea.Cmd) {
	if m.thinking || m.grid.Over() {
		return m, nil
	}

	next, err := m.grid.Place(m.cursor, m.human)
	if err != nil {
		m.errMsg = "Cell is already taken"
		return m, nil
	}

	m.grid = next
	m.errMsg = ""
	if m.grid.Over() {
		return m, nil
	}

	m.thinking = true
	return m, m.cmdEngineMove()
}

func (m *GameModel) applyEngineMove(msg engineMoveMsg) (tea.Model, tea.Cmd) {
	if msg.round != m.round {
		return m, nil
	}
	m.thinking = false

	if msg.err != nil {
		m.errMsg = humanizeError(msg.err)
		return m, nil
	}

	next, err := m.grid.Place(msg.move, m.human.Opponent())
	if err != nil {
		m.errMsg = fmt.Sprintf("Engine returned an illegal move %d: %v", msg.move, err)
		return m, nil
	}

	m.grid = next
	m.errMsg = ""
	return m, nil
}

func (m *GameModel) restart() (tea.Model, tea.Cmd) {
	grid, err := board.New(m.grid.Size())
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.grid = grid
	m.cursor = 0
	m.round++
	m.thinking = false
	m.errMsg = ""
	m.status = "New game"

	if m.human == models.PlayerO {
		m.thinking = true
		return m, tea.Batch(m.cmdEngineMove(), clearStatusAfter(statusTimeout))
	}
	return m, clearStatusAfter(statusTimeout)
}

// outcome describes the finished game, or returns "" while it goes on.
func (m *GameModel) outcome() string {
	switch m.grid.Winner() {
	case m.human:
		return "You win!"
	case m.human.Opponent():
		return "The " + m.engine.String() + " engine wins"
	}
	if m.grid.Full() {
		return "Draw"
	}
	return ""
}

func (m *GameModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo, m.serverVersion)
	}

	var b strings.Builder
	cursor := m.cursor
	if m.grid.Over() {
		cursor = -1
	}
	b.WriteString(renderBoard(m.grid, cursor))
	b.WriteString("\n\n")

	switch result := m.outcome(); {
	case result != "":
		b.WriteString(titleStyle.Render(result))
		b.WriteString("\n")
		b.WriteString("Press r to play again")
	case m.thinking:
		b.WriteString("Engine is thinking...")
	default:
		b.WriteString(fmt.Sprintf("You play %s. Your move.", m.human))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	title := fmt.Sprintf("TIC-TAC-TOE %d×%d │ %s", m.grid.Size(), m.grid.Size(), m.engine)
	return renderPage(title, b.String(), renderHotKeys(gameHelp()))
}

func (m *GameModel) cmdEngineMove() tea.Cmd {
	ctx := m.ctx
	moves := m.adapter
	engine := m.engine
	round := m.round
	pos := models.Position{
		Grid:         m.grid.String(),
		GridSize:     m.grid.Size(),
		MovingPlayer: m.human.Opponent(),
	}

	return func() tea.Msg {
		move, err := moves.NextMove(ctx, engine, pos)
		return engineMoveMsg{round: round, move: move, err: err}
	}
}

func (m *GameModel) cmdServerVersion() tea.Cmd {
	ctx := m.ctx
	moves := m.adapter

	return func() tea.Msg {
		version, err := moves.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
