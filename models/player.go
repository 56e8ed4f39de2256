// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// Player identifies a side of the game. The numeric values are the ones
// used on the wire and inside the grid string: 1 plays X, 2 plays O and 0
// marks an empty cell.
type Player int

const (
	// NoPlayer marks an empty cell and a board without a winner.
	NoPlayer Player = iota
	// PlayerX always opens the game.
	PlayerX
	// PlayerO answers PlayerX.
	PlayerO
)

// Opponent returns the other side. NoPlayer has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return NoPlayer
	}
}

// Sign returns +1 for X and -1 for O. Line sums on the board are built
// from these values, so a full line of one player sums to ±size.
func (p Player) Sign() int {
	switch p {
	case PlayerX:
		return 1
	case PlayerO:
		return -1
	default:
		return 0
	}
}

// Cell returns the grid character of the player.
func (p Player) Cell() byte {
	return byte('0' + p)
}

func (p Player) String() string {
	switch p {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	case NoPlayer:
		return "-"
	default:
		return "Player(" + strconv.Itoa(int(p)) + ")"
	}
}
