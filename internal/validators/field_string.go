// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "unicode/utf8"

// StringField accepts textual values only and optionally bounds their
// length, counted in characters.
type StringField struct {
	baseField

	minLength, maxLength int
	hasMin, hasMax       bool

	allowEmpty bool
	emptySet   bool
}

// StringOption configures a [StringField] at construction.
type StringOption func(*StringField)

// WithMinLength sets the inclusive minimal length.
func WithMinLength(n int) StringOption {
	return func(f *StringField) {
		f.minLength, f.hasMin = n, true
	}
}

// WithMaxLength sets the inclusive maximal length.
func WithMaxLength(n int) StringOption {
	return func(f *StringField) {
		f.maxLength, f.hasMax = n, true
	}
}

// AllowEmpty declares whether a zero-length value is accepted. Without this
// option emptiness is not checked on its own.
func AllowEmpty(allow bool) StringOption {
	return func(f *StringField) {
		f.allowEmpty, f.emptySet = allow, true
	}
}

// NewStringField builds a string field template. It fails with a
// [*ConfigError] on an empty name, a negative length, a minimal length
// above the maximal one, or a zero length bound combined with AllowEmpty(false).
func NewStringField(name string, required, nullable bool, opts ...StringOption) (*StringField, error) {
	base, err := newBaseField(name, required, nullable)
	if err != nil {
		return nil, err
	}

	f := &StringField{baseField: base}
	for _, opt := range opts {
		opt(f)
	}

	if f.hasMin && f.minLength < 0 {
		return nil, newConfigError(name, "min length must be non-negative, got %d", f.minLength)
	}
	if f.hasMax && f.maxLength < 0 {
		return nil, newConfigError(name, "max length must be non-negative, got %d", f.maxLength)
	}
	if f.hasMin && f.hasMax && f.minLength > f.maxLength {
		return nil, newConfigError(name, "min length %d is greater than max length %d", f.minLength, f.maxLength)
	}

	zeroBound := (f.hasMin && f.minLength == 0) || (f.hasMax && f.maxLength == 0)
	if zeroBound && f.emptySet && !f.allowEmpty {
		return nil, newConfigError(name, "a zero length bound contradicts a field that cannot be empty")
	}

	return f, nil
}

// MustStringField is like [NewStringField] but panics on a configuration
// error.
func MustStringField(name string, required, nullable bool, opts ...StringOption) *StringField {
	f, err := NewStringField(name, required, nullable, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Check implements [Field].
func (f *StringField) Check(value any, present bool) (any, *FieldError) {
	if done, fe := f.checkPresence(value, present); done {
		return value, fe
	}

	s, ok := value.(string)
	if !ok {
		return value, newFieldError(f.name, KindTypeMismatch,
			"Type of provided value for field '%s' is not a string.", f.name)
	}

	length := utf8.RuneCountInString(s)

	if f.emptySet && !f.allowEmpty && length == 0 {
		return s, newFieldError(f.name, KindEmptyNotAllowed, "Field '%s' cannot be empty.", f.name)
	}
	if f.hasMin && length < f.minLength {
		return s, newFieldError(f.name, KindTooShort,
			"Provided value for field '%s' is too short: its length is %d but it should contain at least %d characters.",
			f.name, length, f.minLength)
	}
	if f.hasMax && length > f.maxLength {
		return s, newFieldError(f.name, KindTooLong,
			"Provided value for field '%s' is too long: its length is %d but it should contain at most %d characters.",
			f.name, length, f.maxLength)
	}

	return s, nil
}
