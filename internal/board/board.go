// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package board holds the N×N tic-tac-toe board model shared by the
// validators, the move engines and the terminal client.
//
// A board travels as a string of N² characters in row-major order where
// '0' is an empty cell, '1' is X and '2' is O. [Parse] turns that string
// into a [Grid]; [Grid.String] turns it back.
package board

import (
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-tic-tac-toe/models"
)

// SupportedSizes lists the board edge lengths the server plays on.
var SupportedSizes = []int{3, 4, 5}

// IsSupportedSize reports whether size is one of [SupportedSizes].
func IsSupportedSize(size int) bool {
	for _, s := range SupportedSizes {
		if s == size {
			return true
		}
	}
	return false
}

// Grid is a parsed board. The zero value is not usable; build one with
// [New] or [Parse].
//
// Grid values share their cells: use [Grid.Clone] before mutating a grid
// that someone else holds.
type Grid struct {
	size  int
	cells []models.Player
}

// New returns an empty board of the given size.
func New(size int) (Grid, error) {
	if !IsSupportedSize(size) {
		return Grid{}, ErrUnsupportedSize
	}
	return Grid{size: size, cells: make([]models.Player, size*size)}, nil
}

// Parse decodes a grid string for a board of the given size.
func Parse(s string, size int) (Grid, error) {
	if !IsSupportedSize(size) {
		return Grid{}, ErrUnsupportedSize
	}
	if utf8.RuneCountInString(s) != size*size {
		return Grid{}, ErrLengthMismatch
	}

	g := Grid{size: size, cells: make([]models.Player, 0, size*size)}
	i := 0
	for _, r := range s {
		switch r {
		case '0':
			g.cells = append(g.cells, models.NoPlayer)
		case '1':
			g.cells = append(g.cells, models.PlayerX)
		case '2':
			g.cells = append(g.cells, models.PlayerO)
		default:
			return Grid{}, &CellError{Index: i, Value: r}
		}
		i++
	}

	return g, nil
}

// Size returns the edge length of the board.
func (g Grid) Size() int {
	return g.size
}

// Len returns the number of cells.
func (g Grid) Len() int {
	return len(g.cells)
}

// At returns the owner of cell i.
func (g Grid) At(i int) models.Player {
	return g.cells[i]
}

// Set overwrites cell i in place.
func (g Grid) Set(i int, p models.Player) {
	g.cells[i] = p
}

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	cells := make([]models.Player, len(g.cells))
	copy(cells, g.cells)
	return Grid{size: g.size, cells: cells}
}

// Place returns a copy of g with p placed on cell i. The receiver is left
// untouched.
func (g Grid) Place(i int, p models.Player) (Grid, error) {
	if i < 0 || i >= len(g.cells) {
		return Grid{}, ErrCellOutOfRange
	}
	if g.cells[i] != models.NoPlayer {
		return Grid{}, ErrCellOccupied
	}

	next := g.Clone()
	next.cells[i] = p
	return next, nil
}

// Free returns the indices of the empty cells in ascending order.
func (g Grid) Free() []int {
	free := make([]int, 0, len(g.cells))
	for i, c := range g.cells {
		if c == models.NoPlayer {
			free = append(free, i)
		}
	}
	return free
}

// Full reports whether no empty cell is left.
func (g Grid) Full() bool {
	for _, c := range g.cells {
		if c == models.NoPlayer {
			return false
		}
	}
	return true
}

// Counts returns the number of X and O marks on the board.
func (g Grid) Counts() (x, o int) {
	for _, c := range g.cells {
		switch c {
		case models.PlayerX:
			x++
		case models.PlayerO:
			o++
		}
	}
	return x, o
}

// Winner returns the side that owns a complete line, or NoPlayer.
func (g Grid) Winner() models.Player {
	return g.Sums().Winner(g.size)
}

// Over reports whether the game on g is finished: someone won or the board
// is full.
func (g Grid) Over() bool {
	return g.Winner() != models.NoPlayer || g.Full()
}

func (g Grid) String() string {
	var b strings.Builder
	b.Grow(len(g.cells))
	for _, c := range g.cells {
		b.WriteByte(c.Cell())
	}
	return b.String()
}
