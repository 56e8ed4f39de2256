// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the move server.
//
// It defines the Worker interface and a Workers aggregate that runs every
// configured worker until the shared context ends.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is done. Implementations handle their own errors; a
// failed iteration must not stop the worker.
type Worker interface {
	Run(ctx context.Context)
}
