// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// IntegerField accepts values that can be interpreted as an integer and
// optionally bounds them. Its canonical form is int.
type IntegerField struct {
	baseField

	min, max       int
	hasMin, hasMax bool
}

// IntegerOption configures an [IntegerField] at construction.
type IntegerOption func(*IntegerField)

// WithMinValue sets the inclusive lower bound.
func WithMinValue(v int) IntegerOption {
	return func(f *IntegerField) {
		f.min, f.hasMin = v, true
	}
}

// WithMaxValue sets the inclusive upper bound.
func WithMaxValue(v int) IntegerOption {
	return func(f *IntegerField) {
		f.max, f.hasMax = v, true
	}
}

// NewIntegerField builds an integer field template. It fails with a
// [*ConfigError] when the name is empty or min is greater than max.
func NewIntegerField(name string, required, nullable bool, opts ...IntegerOption) (*IntegerField, error) {
	base, err := newBaseField(name, required, nullable)
	if err != nil {
		return nil, err
	}

	f := &IntegerField{baseField: base}
	for _, opt := range opts {
		opt(f)
	}

	if f.hasMin && f.hasMax && f.min > f.max {
		return nil, newConfigError(name, "min value %d is greater than max value %d", f.min, f.max)
	}

	return f, nil
}

// MustIntegerField is like [NewIntegerField] but panics on a configuration
// error. It is meant for package-level declarations.
func MustIntegerField(name string, required, nullable bool, opts ...IntegerOption) *IntegerField {
	f, err := NewIntegerField(name, required, nullable, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Bounds returns the declared bounds and whether each one is set.
func (f *IntegerField) Bounds() (lo int, hasLo bool, hi int, hasHi bool) {
	return f.min, f.hasMin, f.max, f.hasMax
}

// Check implements [Field].
func (f *IntegerField) Check(value any, present bool) (any, *FieldError) {
	if done, fe := f.checkPresence(value, present); done {
		return value, fe
	}

	n, ok := coerceInt(value)
	if !ok {
		return value, newFieldError(f.name, KindTypeMismatch,
			"Provided value for field '%s' is not an integer.", f.name)
	}

	if f.hasMin && n < f.min {
		return n, newFieldError(f.name, KindBelowMinimum,
			"Provided integer value is lesser than minimal acceptable value %d.", f.min)
	}
	if f.hasMax && n > f.max {
		return n, newFieldError(f.name, KindAboveMaximum,
			"Provided integer value is greater than maximal acceptable value %d.", f.max)
	}

	return n, nil
}

// coerceInt interprets v as an integer. Strings are parsed in base 10 after
// trimming surrounding spaces; floats are accepted only when integral.
// Booleans and compound values are rejected.
func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint:
		if uint64(n) > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int(f), true
}
