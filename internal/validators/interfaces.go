// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators implements request validation for the move server.
//
// Core concepts:
//   - Field: an immutable rule set for one named value ([IntegerField],
//     [StringField]). Templates are declared once and shared by every request.
//   - FieldInstance: the per-request binding of a Field to a received value
//     and its outcome. Instances are never shared between requests.
//   - Schema: an ordered list of fields plus cross-field checks. Validate
//     runs every field, collects one error per field into an [ErrorMap] and
//     runs the cross-field checks only when every field passed.
//   - Board checks: the legality rules of a submitted board ([CheckBoard]).
//
// Usage patterns:
//  1. Declare templates with NewIntegerField / NewStringField (or the Must
//     variants for package-level declarations).
//  2. Group them with NewSchema together with cross-field checks.
//  3. Call Schema.Validate with the raw request and read the [Result].
//
// [MoveRequestValidator] is the schema of a move request and also satisfies
// the generic [Validator] interface used by the service layer.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// Field is an immutable validation rule for one named request field.
//
// Check never mutates the receiver: it validates value and returns its
// canonical form. present is false when the field was absent from the
// request, which is distinct from an explicit nil.
type Field interface {
	Name() string
	Check(value any, present bool) (any, *FieldError)
}

// CrossCheck is a semantic rule over already validated fields. It runs only
// after every field of the schema passed.
type CrossCheck func(ValidatedRequest) *FieldError
