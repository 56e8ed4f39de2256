// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// Game is the interactive part of the client.
type Game interface {
	// Play blocks until the user quits or ctx is done.
	Play(ctx context.Context) error
}
