// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// Run serves requests until ctx is done, then shuts down gracefully. It
	// returns the first error that stopped a server early.
	Run(ctx context.Context) error

	// RunServer runs until SIGTERM, SIGINT or SIGQUIT arrives.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
