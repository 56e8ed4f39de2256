// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package board

import "github.com/MKhiriev/go-tic-tac-toe/models"

// LineSums holds the signed sums of every line of a board: X contributes
// +1 and O contributes -1 to each line its cell lies on.
type LineSums struct {
	Rows []int
	Cols []int
	// Diagonals[0] is the main diagonal (row == col), Diagonals[1] the
	// anti-diagonal (row == size-col-1).
	Diagonals [2]int
}

// Sums computes the line sums of g.
func (g Grid) Sums() LineSums {
	s := LineSums{
		Rows: make([]int, g.size),
		Cols: make([]int, g.size),
	}

	for i, c := range g.cells {
		v := c.Sign()
		if v == 0 {
			continue
		}

		row, col := i/g.size, i%g.size
		s.Rows[row] += v
		s.Cols[col] += v
		if row == col {
			s.Diagonals[0] += v
		}
		if row == g.size-col-1 {
			s.Diagonals[1] += v
		}
	}

	return s
}

// Winner returns the side whose line sums to ±size, or NoPlayer.
func (s LineSums) Winner(size int) models.Player {
	check := func(v int) models.Player {
		switch v {
		case size:
			return models.PlayerX
		case -size:
			return models.PlayerO
		}
		return models.NoPlayer
	}

	for _, v := range s.Rows {
		if p := check(v); p != models.NoPlayer {
			return p
		}
	}
	for _, v := range s.Cols {
		if p := check(v); p != models.NoPlayer {
			return p
		}
	}
	for _, v := range s.Diagonals {
		if p := check(v); p != models.NoPlayer {
			return p
		}
	}

	return models.NoPlayer
}

// Decided reports whether any line is complete.
func (s LineSums) Decided(size int) bool {
	return s.Winner(size) != models.NoPlayer
}

var lineCache = map[int][][]int{}

func init() {
	for _, size := range SupportedSizes {
		lineCache[size] = buildLines(size)
	}
}

// Lines returns the cell indices of every row, column and both diagonals of
// a board with the given edge length, in that order. The returned slices
// are shared and must not be modified.
func Lines(size int) [][]int {
	if lines, ok := lineCache[size]; ok {
		return lines
	}
	return buildLines(size)
}

func buildLines(size int) [][]int {
	lines := make([][]int, 0, 2*size+2)

	for r := 0; r < size; r++ {
		row := make([]int, size)
		for c := 0; c < size; c++ {
			row[c] = r*size + c
		}
		lines = append(lines, row)
	}
	for c := 0; c < size; c++ {
		col := make([]int, size)
		for r := 0; r < size; r++ {
			col[r] = r*size + c
		}
		lines = append(lines, col)
	}

	diag := make([]int, size)
	anti := make([]int, size)
	for r := 0; r < size; r++ {
		diag[r] = r*size + r
		anti[r] = r*size + (size - r - 1)
	}

	return append(lines, diag, anti)
}
