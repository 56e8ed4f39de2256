// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package engine

import (
	"github.com/MKhiriev/go-tic-tac-toe/internal/board"
	"github.com/MKhiriev/go-tic-tac-toe/models"
)

// estimate scores a node below the depth limit from its open lines. A line
// holding marks of toMove only is a future win for toMove; every other line
// is a future draw. A line's game length is depth plus its free cells.
// toMove picks the line that suits it best, as it would pick a child.
func estimate(g board.Grid, root, toMove models.Player, depth int) score {
	maximize := toMove == root

	var best score
	for i, line := range board.Lines(g.Size()) {
		s := lineScore(g, line, root, toMove, depth)

		switch {
		case i == 0:
			best = s
		case maximize && s.betterForMax(best):
			best = s
		case !maximize && s.betterForMin(best):
			best = s
		}
	}
	return best
}

func lineScore(g board.Grid, line []int, root, toMove models.Player, depth int) score {
	var free, own, other int
	for _, c := range line {
		switch g.At(c) {
		case models.NoPlayer:
			free++
		case toMove:
			own++
		default:
			other++
		}
	}

	s := score{length: depth + free}
	if own > 0 && other == 0 {
		if toMove == root {
			s.result = 1
		} else {
			s.result = -1
		}
	}
	return s
}

// cellLines maps a board size to the lines through every cell.
var cellLines = map[int][][][]int{}

func init() {
	for _, size := range board.SupportedSizes {
		cellLines[size] = buildCellLines(size)
	}
}

func linesThrough(size, cell int) [][]int {
	if byCell, ok := cellLines[size]; ok {
		return byCell[cell]
	}
	return buildCellLines(size)[cell]
}

func buildCellLines(size int) [][][]int {
	byCell := make([][][]int, size*size)
	for _, line := range board.Lines(size) {
		for _, c := range line {
			byCell[c] = append(byCell[c], line)
		}
	}
	return byCell
}
