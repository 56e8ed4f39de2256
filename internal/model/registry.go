// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package model

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-tic-tac-toe/internal/board"
	"github.com/MKhiriev/go-tic-tac-toe/internal/logger"
	"github.com/MKhiriev/go-tic-tac-toe/models"
)

// FileName returns the name of the model file for boards of the given size
// inside a model directory, e.g. "network_3x3.json".
func FileName(size int) string {
	return fmt.Sprintf("network_%dx%d.json", size, size)
}

// Registry holds one scorer per board size.
type Registry struct {
	mu      sync.RWMutex
	scorers map[int]*Scorer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{scorers: make(map[int]*Scorer)}
}

// NewRemoteRegistry returns a registry that sends every board size to the
// same remote predictor.
func NewRemoteRegistry(p Predictor) *Registry {
	r := NewRegistry()
	for _, size := range board.SupportedSizes {
		r.Register(size, p)
	}
	return r
}

// LoadDir loads the model file of every supported size found in dir. A
// missing file leaves its size unserved; a broken file is an error.
func LoadDir(dir string, log *logger.Logger) (*Registry, error) {
	r := NewRegistry()

	for _, size := range board.SupportedSizes {
		path := filepath.Join(dir, FileName(size))

		n, err := Load(path)
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn().Str("func", "model.LoadDir").Str("path", path).Msg("model file not found, size disabled")
			continue
		}
		if err != nil {
			return nil, err
		}
		if n.GridSize() != size {
			return nil, fmt.Errorf("%w: %s holds a %dx%d network", ErrInvalidModel, path, n.GridSize(), n.GridSize())
		}

		r.Register(size, n)
		log.Info().Str("func", "model.LoadDir").Str("path", path).Int("grid_size", size).Msg("model loaded")
	}

	return r, nil
}

// Register serves boards of the given size with p.
func (r *Registry) Register(size int, p Predictor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scorers[size] = NewScorer(p)
}

// Sizes reports which board sizes have a model.
func (r *Registry) Sizes() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sizes := make([]int, 0, len(r.scorers))
	for _, size := range board.SupportedSizes {
		if _, ok := r.scorers[size]; ok {
			sizes = append(sizes, size)
		}
	}
	return sizes
}

// NextMove scores pos with the model registered for its board size.
func (r *Registry) NextMove(ctx context.Context, pos models.Position) (int, error) {
	r.mu.RLock()
	scorer, ok := r.scorers[pos.GridSize]
	r.mu.RUnlock()
	if !ok {
		return 0, fmt.Errorf("%w: %dx%d", ErrModelNotLoaded, pos.GridSize, pos.GridSize)
	}

	g, err := board.Parse(pos.Grid, pos.GridSize)
	if err != nil {
		return 0, fmt.Errorf("parse grid: %w", err)
	}
	return scorer.BestMove(ctx, g, pos.MovingPlayer)
}
