// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// engineMoveMsg carries the engine reply for the given round. Replies of an
// earlier round are dropped after a restart.
type engineMoveMsg struct {
	round int
	move  int
	err   error
}

type serverVersionMsg struct {
	version string
	err     error
}

type clearStatusMsg struct{}
