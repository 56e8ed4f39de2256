// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the transport servers of the move server.
//
// It starts the HTTP and gRPC servers that are configured, reports health
// over gRPC, and shuts every started server down gracefully once the run
// context ends or a termination signal arrives.
package server
