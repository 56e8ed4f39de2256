// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the move server.
//
// Move requests arrive as form or JSON bodies, are decoded into a raw
// [models.RequestEnvelope] and handed to the move service unchanged, so that
// validation sees exactly what the caller sent. Tracing, logging,
// compression, timeouts, bearer authentication and body integrity checks
// are middleware concerns of this package.
package http
