// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"

	"github.com/MKhiriev/go-tic-tac-toe/models"
)

// ValidatedRequest maps field names to their canonical values. Absent
// optional fields are not included.
type ValidatedRequest map[string]any

// Int returns the integer value of field name.
func (v ValidatedRequest) Int(name string) (int, bool) {
	n, ok := v[name].(int)
	return n, ok
}

// String returns the string value of field name.
func (v ValidatedRequest) String(name string) (string, bool) {
	s, ok := v[name].(string)
	return s, ok
}

// Schema is an immutable, ordered set of fields plus cross-field checks.
// A Schema is safe for concurrent use: every Validate call works on its own
// field instances.
type Schema struct {
	fields []Field
	checks []CrossCheck
}

// NewSchema registers fields in the given order. Duplicate or empty field
// names and an empty field list are configuration errors.
func NewSchema(fields []Field, checks ...CrossCheck) (*Schema, error) {
	if len(fields) == 0 {
		return nil, newConfigError("", "schema has no fields")
	}

	seen := make(map[string]struct{}, len(fields))
	for i, f := range fields {
		if f == nil {
			return nil, newConfigError("", "field #%d is nil", i)
		}
		if _, dup := seen[f.Name()]; dup {
			return nil, newConfigError(f.Name(), "field is registered twice")
		}
		seen[f.Name()] = struct{}{}
	}

	s := &Schema{
		fields: append([]Field(nil), fields...),
		checks: append([]CrossCheck(nil), checks...),
	}
	return s, nil
}

// MustSchema is like [NewSchema] but panics on a configuration error.
func MustSchema(fields []Field, checks ...CrossCheck) *Schema {
	s, err := NewSchema(fields, checks...)
	if err != nil {
		panic(err)
	}
	return s
}

// Fields returns the registered field names in order.
func (s *Schema) Fields() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name()
	}
	return names
}

// Subset returns a schema restricted to the named fields, in registry
// order. Cross-field checks are dropped unless every field is selected.
func (s *Schema) Subset(names ...string) (*Schema, error) {
	if len(names) == 0 {
		return s, nil
	}

	registered := make(map[string]struct{}, len(s.fields))
	for _, f := range s.fields {
		registered[f.Name()] = struct{}{}
	}

	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := registered[n]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, n)
		}
		wanted[n] = struct{}{}
	}

	fields := make([]Field, 0, len(wanted))
	for _, f := range s.fields {
		if _, ok := wanted[f.Name()]; ok {
			fields = append(fields, f)
		}
	}

	if len(fields) == len(s.fields) {
		return s, nil
	}
	return &Schema{fields: fields}, nil
}

// Validate binds every field to its value in envelope and validates all of
// them without stopping at the first failure. Cross-field checks run only
// if every field passed, in registration order, and the first failing
// check ends the pass.
func (s *Schema) Validate(envelope models.RequestEnvelope) *Result {
	res := &Result{errors: ErrorMap{}}
	validated := make(ValidatedRequest, len(s.fields))

	for _, f := range s.fields {
		inst := NewFieldInstance(f)
		if v, ok := envelope[f.Name()]; ok {
			inst.SetValue(v)
		}

		if !inst.IsValid() {
			res.add(inst.Err())
			continue
		}
		if inst.Present() {
			validated[f.Name()] = inst.Value()
		}
	}

	if !res.IsValid() {
		return res
	}

	for _, check := range s.checks {
		if fe := check(validated); fe != nil {
			res.add(fe)
			return res
		}
	}

	res.validated = validated
	return res
}

// Result is the outcome of one validation pass.
type Result struct {
	errors    ErrorMap
	fields    []*FieldError
	validated ValidatedRequest
}

func (r *Result) add(fe *FieldError) {
	if r.errors.Has(fe.Field) {
		return
	}
	r.errors.Add(fe.Field, fe.Message)
	r.fields = append(r.fields, fe)
}

// IsValid reports whether the request passed every rule.
func (r *Result) IsValid() bool {
	return len(r.fields) == 0
}

// Errors returns a copy of the error map. It is empty on success.
func (r *Result) Errors() ErrorMap {
	return r.errors.Clone()
}

// FieldErrors returns the individual failures in the order they were found.
func (r *Result) FieldErrors() []*FieldError {
	return append([]*FieldError(nil), r.fields...)
}

// Validated returns the coerced values. It is nil unless IsValid is true.
func (r *Result) Validated() ValidatedRequest {
	return r.validated
}

// Err returns nil on success and a [*ValidationError] otherwise.
func (r *Result) Err() error {
	if r.IsValid() {
		return nil
	}
	return &ValidationError{Fields: r.FieldErrors()}
}
