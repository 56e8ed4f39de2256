// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package engine

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-tic-tac-toe/internal/board"
	"github.com/MKhiriev/go-tic-tac-toe/models"
)

// cancelCheckInterval is the number of visited nodes between two checks of
// the search context.
const cancelCheckInterval = 1 << 12

// MinMax is a min-max move engine. The zero value is not usable; create
// one with [NewMinMax]. A MinMax is safe for concurrent use.
type MinMax struct {
	limits DepthLimits
}

// NewMinMax returns an engine using limits for positions it is asked to
// solve through [MinMax.NextMove].
func NewMinMax(limits DepthLimits) (*MinMax, error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}
	return &MinMax{limits: limits}, nil
}

// Limits returns the configured depth limits.
func (m *MinMax) Limits() DepthLimits {
	return m.limits
}

// NextMove returns the cell index the moving player of pos should mark,
// searching with the depth limit configured for the board size.
func (m *MinMax) NextMove(ctx context.Context, pos models.Position) (int, error) {
	limit, err := m.limits.For(pos.GridSize)
	if err != nil {
		return 0, err
	}
	return m.ComputeMove(ctx, pos.Grid, pos.GridSize, pos.MovingPlayer, limit)
}

// ComputeMove parses grid and searches the best move for mover with the
// given depth limit.
func (m *MinMax) ComputeMove(ctx context.Context, grid string, size int, mover models.Player, depthLimit int) (int, error) {
	g, err := board.Parse(grid, size)
	if err != nil {
		return 0, fmt.Errorf("parse grid: %w", err)
	}
	return BestMove(ctx, g, mover, depthLimit)
}

// BestMove searches g for the best move of mover. Root children are
// searched concurrently; the result does not depend on scheduling.
func BestMove(ctx context.Context, g board.Grid, mover models.Player, depthLimit int) (int, error) {
	if mover != models.PlayerX && mover != models.PlayerO {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPlayer, mover)
	}
	if depthLimit < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDepth, depthLimit)
	}
	if g.Winner() != models.NoPlayer {
		return 0, ErrGameOver
	}

	free := g.Free()
	if len(free) == 0 {
		return 0, ErrNoFreeCells
	}

	scores := make([]score, len(free))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))

	for i, cell := range free {
		group.Go(func() error {
			s := newSearch(groupCtx, g, mover, depthLimit)
			scores[i] = s.play(cell, mover, 1)
			return s.err
		})
	}

	if err := group.Wait(); err != nil {
		return 0, err
	}

	best := scores[0]
	for _, s := range scores[1:] {
		if s.betterForMax(best) {
			best = s
		}
	}
	for i, s := range scores {
		if s == best {
			return free[i], nil
		}
	}

	// unreachable: best is one of scores
	return free[0], nil
}

// score is the value of a node: the expected result for the root player
// and the expected game length in plies.
type score struct {
	result int
	length int
}

func (s score) betterForMax(than score) bool {
	return s.result > than.result || (s.result == than.result && s.length < than.length)
}

func (s score) betterForMin(than score) bool {
	return s.result < than.result || (s.result == than.result && s.length < than.length)
}

type search struct {
	ctx   context.Context
	grid  board.Grid
	size  int
	root  models.Player
	limit int
	nodes int
	err   error
}

func newSearch(ctx context.Context, g board.Grid, root models.Player, limit int) *search {
	return &search{
		ctx:   ctx,
		grid:  g.Clone(),
		size:  g.Size(),
		root:  root,
		limit: limit,
	}
}

// play marks cell for p, scores the resulting node at depth and takes the
// mark back.
func (s *search) play(cell int, p models.Player, depth int) score {
	s.grid.Set(cell, p)
	defer s.grid.Set(cell, models.NoPlayer)

	if s.completesLine(cell, p) {
		if p == s.root {
			return score{result: 1, length: depth}
		}
		return score{result: -1, length: depth}
	}
	return s.node(p.Opponent(), depth)
}

// node scores the current position with toMove to play.
func (s *search) node(toMove models.Player, depth int) score {
	s.nodes++
	if s.nodes%cancelCheckInterval == 0 {
		if err := s.ctx.Err(); err != nil {
			s.err = fmt.Errorf("%w: %w", ErrSearchCanceled, err)
		}
	}
	if s.err != nil {
		return score{}
	}

	if s.grid.Full() {
		return score{result: 0, length: depth}
	}
	if depth > s.limit {
		return estimate(s.grid, s.root, toMove, depth)
	}

	maximize := toMove == s.root
	var best score
	first := true

	for cell := 0; cell < s.grid.Len(); cell++ {
		if s.grid.At(cell) != models.NoPlayer {
			continue
		}

		child := s.play(cell, toMove, depth+1)
		if s.err != nil {
			return score{}
		}

		switch {
		case first:
			best, first = child, false
		case maximize && child.betterForMax(best):
			best = child
		case !maximize && child.betterForMin(best):
			best = child
		}
	}

	return best
}

// completesLine reports whether p owns every cell of a line through cell.
func (s *search) completesLine(cell int, p models.Player) bool {
	for _, line := range linesThrough(s.size, cell) {
		complete := true
		for _, c := range line {
			if s.grid.At(c) != p {
				complete = false
				break
			}
		}
		if complete {
			return true
		}
	}
	return false
}
