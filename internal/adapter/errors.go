// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrBoardFull           = errors.New("board has no free cells")
	ErrEngineUnavailable   = errors.New("engine is unavailable")
	ErrTimeout             = errors.New("server timed out computing the move")
	ErrInternalServerError = errors.New("internal server error")
	ErrInvalidResponse     = errors.New("invalid server response")
)

// RequestRejectedError is returned when the server rejects a move request
// field by field. It matches [ErrBadRequest].
type RequestRejectedError struct {
	Errors map[string]string
}

func (e *RequestRejectedError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("request rejected")
	for i, field := range fields {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", field, e.Errors[field])
	}
	return b.String()
}

func (e *RequestRejectedError) Unwrap() error {
	return ErrBadRequest
}
