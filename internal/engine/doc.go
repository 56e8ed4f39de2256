// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package engine picks tic-tac-toe moves with a depth-limited min-max
// search.
//
// The search walks free cells in index order. A node is terminal when the
// last move completed a line or when the board is full. Depth counts plies
// from the searched position; children are expanded while the depth does
// not exceed the limit. Below the limit the outcome of a node is estimated
// from its open lines.
//
// Every node is scored with a result from the root player's point of view
// (+1 win, 0 draw, -1 loss) and the number of plies the game is expected to
// last. The root player maximises the result and the opponent minimises it;
// both prefer the shorter game on equal results. The chosen move is the
// first root child whose score equals the root's, so the engine is fully
// deterministic.
package engine
