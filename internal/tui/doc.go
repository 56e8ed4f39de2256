// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal game played against the move server.
//
// The board is drawn with lipgloss and driven by a bubbletea program. The
// human places marks with the cursor keys; the reply of the selected engine
// is fetched through an [adapter.MoveAdapter]. Wins and draws are detected
// locally with the board package.
package tui
