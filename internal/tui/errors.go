// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-tic-tac-toe/internal/adapter"
)

var (
	ErrUserQuit         = errors.New("user quit the game")
	ErrInvalidGame      = errors.New("invalid game settings")
	errUnexpectedResult = errors.New("unexpected program result")
)

// humanizeError turns adapter errors into a single status line.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var rejected *adapter.RequestRejectedError
	switch {
	case errors.As(err, &rejected):
		return rejected.Error()
	case errors.Is(err, adapter.ErrEngineUnavailable):
		return "Engine is unavailable on the server"
	case errors.Is(err, adapter.ErrTimeout):
		return "Server took too long to answer"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Server rejected the credentials"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unavailable"
	}

	return err.Error()
}
