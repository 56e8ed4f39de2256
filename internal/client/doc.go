// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It checks that the move server answers, then hands the terminal over to
// the game UI until the user quits.
package client
