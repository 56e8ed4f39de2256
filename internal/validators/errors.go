// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupportedType    = errors.New("unsupported type for validation")
	ErrUnknownField       = errors.New("unknown field for validation")
	ErrInvalidFieldConfig = errors.New("invalid field configuration")
	ErrValidationFailed   = errors.New("validation failed")
)

// Per-kind sentinels. Every [FieldError] unwraps to the sentinel of its kind.
var (
	ErrMissingField        = errors.New("missing field")
	ErrNullNotAllowed      = errors.New("null not allowed")
	ErrTypeMismatch        = errors.New("type mismatch")
	ErrBelowMinimum        = errors.New("below minimum")
	ErrAboveMaximum        = errors.New("above maximum")
	ErrEmptyNotAllowed     = errors.New("empty not allowed")
	ErrTooShort            = errors.New("too short")
	ErrTooLong             = errors.New("too long")
	ErrGridLengthMismatch  = errors.New("grid length mismatch")
	ErrUnsupportedSize     = errors.New("unsupported size")
	ErrInvalidCellValue    = errors.New("invalid cell value")
	ErrImpossibleMoveCount = errors.New("impossible move count")
	ErrInvalidMoverTurn    = errors.New("invalid mover turn")
	ErrGameAlreadyDecided  = errors.New("game already decided")
)

// Kind enumerates the reasons a field or a board can be rejected.
type Kind int

const (
	KindMissingField Kind = iota + 1
	KindNullNotAllowed
	KindTypeMismatch
	KindBelowMinimum
	KindAboveMaximum
	KindEmptyNotAllowed
	KindTooShort
	KindTooLong
	KindGridLengthMismatch
	KindUnsupportedSize
	KindInvalidCellValue
	KindImpossibleMoveCount
	KindInvalidMoverTurn
	KindGameAlreadyDecided
)

var kindSentinels = map[Kind]error{
	KindMissingField:        ErrMissingField,
	KindNullNotAllowed:      ErrNullNotAllowed,
	KindTypeMismatch:        ErrTypeMismatch,
	KindBelowMinimum:        ErrBelowMinimum,
	KindAboveMaximum:        ErrAboveMaximum,
	KindEmptyNotAllowed:     ErrEmptyNotAllowed,
	KindTooShort:            ErrTooShort,
	KindTooLong:             ErrTooLong,
	KindGridLengthMismatch:  ErrGridLengthMismatch,
	KindUnsupportedSize:     ErrUnsupportedSize,
	KindInvalidCellValue:    ErrInvalidCellValue,
	KindImpossibleMoveCount: ErrImpossibleMoveCount,
	KindInvalidMoverTurn:    ErrInvalidMoverTurn,
	KindGameAlreadyDecided:  ErrGameAlreadyDecided,
}

// Err returns the sentinel error of the kind.
func (k Kind) Err() error {
	if err, ok := kindSentinels[k]; ok {
		return err
	}
	return ErrValidationFailed
}

// String returns the snake_case name of the kind, e.g. "missing_field".
func (k Kind) String() string {
	if err, ok := kindSentinels[k]; ok {
		return strings.ReplaceAll(err.Error(), " ", "_")
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// FieldError is a single validation failure attributed to one field.
type FieldError struct {
	Field   string
	Kind    Kind
	Message string
}

func newFieldError(field string, kind Kind, format string, args ...any) *FieldError {
	return &FieldError{
		Field:   field,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return e.Kind.Err()
}

// MarshalJSON exports FieldError as an object with field, kind and message.
func (e *FieldError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Field   string `json:"field"`
		Kind    string `json:"kind"`
		Message string `json:"message"`
	}{
		Field:   e.Field,
		Kind:    e.Kind.String(),
		Message: e.Message,
	})
}

// ErrorMap records at most one message per field name.
type ErrorMap map[string]string

// Add records message for field unless the field already has one.
func (m ErrorMap) Add(field, message string) {
	if _, exists := m[field]; exists {
		return
	}
	m[field] = message
}

// Has reports whether field has an error.
func (m ErrorMap) Has(field string) bool {
	_, ok := m[field]
	return ok
}

// Clone returns a copy safe for the caller to modify.
func (m ErrorMap) Clone() ErrorMap {
	if m == nil {
		return nil
	}
	out := make(ErrorMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ValidationError is returned when a request fails validation. It carries
// every field error in schema order.
type ValidationError struct {
	Fields []*FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		parts = append(parts, fe.Error())
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(parts, "; "))
}

// Unwrap exposes [ErrValidationFailed] and every field error, so
// errors.Is(err, ErrGameAlreadyDecided) works on the aggregate.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Fields)+1)
	errs = append(errs, ErrValidationFailed)
	for _, fe := range e.Fields {
		errs = append(errs, fe)
	}
	return errs
}

// ErrorMap returns the field → message view of the error.
func (e *ValidationError) ErrorMap() ErrorMap {
	m := make(ErrorMap, len(e.Fields))
	for _, fe := range e.Fields {
		m.Add(fe.Field, fe.Message)
	}
	return m
}

// ConfigError reports an inconsistent field declaration. It is a programmer
// error: templates that fail to build must stop the program.
type ConfigError struct {
	Field   string
	Message string
}

func newConfigError(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidFieldConfig, e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidFieldConfig
}
