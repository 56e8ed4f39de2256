// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors of the authentication middleware. Callers can match against them
// with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of
	// the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrTokenExpired is returned for a well-formed token past its expiry.
	ErrTokenExpired = errors.New("token is expired")

	// ErrInvalidToken is returned for any other token the server did not issue.
	ErrInvalidToken = errors.New("token is invalid")
)

// Errors of the body integrity middleware.
var (
	ErrMissingHash    = errors.New("missing `HashSHA256` header")
	ErrHashMismatch   = errors.New("integrity check failed")
	ErrUnreadableBody = errors.New("failed to read request body")
)

// Request decoding errors.
var (
	ErrInvalidBody            = errors.New("invalid request body")
	ErrUnsupportedContentType = errors.New("unsupported content type")
	ErrInvalidLimit           = errors.New("limit must be a positive integer")
)
