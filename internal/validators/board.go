// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"unicode/utf8"

	"github.com/MKhiriev/go-tic-tac-toe/internal/board"
	"github.com/MKhiriev/go-tic-tac-toe/models"
)

// gridEdges maps the cell counts of the 3×3, 4×4 and 5×5 boards to their
// edge length.
var gridEdges = map[int]int{9: 3, 16: 4, 25: 5}

// CheckBoard runs the board legality rules in order and returns the first
// failure, or nil when a move can still be made on the board.
//
// Order: length congruence, supported size, cell characters, move count
// balance, mover turn, terminal state.
func CheckBoard(grid string, size, mover int) *FieldError {
	if fe := CheckGridLength(grid, size); fe != nil {
		return fe
	}
	if fe := CheckSupportedSize(grid); fe != nil {
		return fe
	}
	if fe := CheckCells(grid); fe != nil {
		return fe
	}
	if fe := CheckMoveCount(grid); fe != nil {
		return fe
	}
	if fe := CheckMoverTurn(grid, mover); fe != nil {
		return fe
	}
	return CheckNotDecided(grid)
}

// CheckGridLength fails unless the grid holds exactly size² cells.
func CheckGridLength(grid string, size int) *FieldError {
	length := utf8.RuneCountInString(grid)
	if length != size*size {
		return newFieldError(FieldGrid, KindGridLengthMismatch,
			"Received grid length does not match declared grid size: received %d characters, expected %d.",
			length, size*size)
	}
	return nil
}

// CheckSupportedSize fails unless the grid is a 3×3, 4×4 or 5×5 board.
func CheckSupportedSize(grid string) *FieldError {
	length := utf8.RuneCountInString(grid)
	if _, ok := gridEdges[length]; !ok {
		return newFieldError(FieldGrid, KindUnsupportedSize,
			"Received grid state is invalid: its length should be 9, 16 or 25, received %d.", length)
	}
	return nil
}

// CheckCells fails on the first character that is not '0', '1' or '2'.
func CheckCells(grid string) *FieldError {
	i := 0
	for _, r := range grid {
		if r != '0' && r != '1' && r != '2' {
			return newFieldError(FieldGrid, KindInvalidCellValue,
				"Invalid grid state identifier at index %d.", i)
		}
		i++
	}
	return nil
}

// CheckMoveCount fails when one side has made two or more moves more than
// the other, which alternating play cannot produce.
func CheckMoveCount(grid string) *FieldError {
	x, o := countMarks(grid)
	if x-o > 1 || o-x > 1 {
		return newFieldError(FieldGrid, KindImpossibleMoveCount,
			"Received grid is invalid: no tic-tac-toe game can reach this state.")
	}
	return nil
}

// CheckMoverTurn fails when the side about to move already has more moves
// than its opponent. The error is reported on the moving_player field.
func CheckMoverTurn(grid string, mover int) *FieldError {
	x, o := countMarks(grid)
	if (models.Player(mover) == models.PlayerX && x > o) || (models.Player(mover) == models.PlayerO && o > x) {
		return newFieldError(FieldMovingPlayer, KindInvalidMoverTurn,
			"Requested player made more moves than opponent: cannot process this request.")
	}
	return nil
}

// CheckNotDecided fails when any row, column or diagonal is complete. The
// board edge is taken from the grid length, so a declared size that only
// squares to the right length cannot hide a finished game. Grids that are
// not a supported board or hold foreign characters are left to
// CheckSupportedSize and CheckCells.
func CheckNotDecided(grid string) *FieldError {
	edge, ok := gridEdges[utf8.RuneCountInString(grid)]
	if !ok {
		return nil
	}
	g, err := board.Parse(grid, edge)
	if err != nil {
		return nil
	}

	switch g.Sums().Winner(edge) {
	case models.PlayerX:
		return newFieldError(FieldGrid, KindGameAlreadyDecided,
			"Received grid is invalid: the game is ended and player 'X' won.")
	case models.PlayerO:
		return newFieldError(FieldGrid, KindGameAlreadyDecided,
			"Received grid is invalid: the game is ended and player 'O' won.")
	}
	return nil
}

func countMarks(grid string) (x, o int) {
	for _, r := range grid {
		switch r {
		case '1':
			x++
		case '2':
			o++
		}
	}
	return x, o
}
