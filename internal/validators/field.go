// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

// baseField holds the metadata every field carries: its name and whether it
// must be present and may be null.
type baseField struct {
	name     string
	required bool
	nullable bool
}

func newBaseField(name string, required, nullable bool) (baseField, error) {
	if name == "" {
		return baseField{}, newConfigError(name, "missing field name")
	}

	return baseField{name: name, required: required, nullable: nullable}, nil
}

func (b baseField) Name() string {
	return b.name
}

// checkPresence runs the required/nullable rules. done is true when there
// is nothing left to check: the field is absent but optional, or null but
// nullable.
func (b baseField) checkPresence(value any, present bool) (done bool, fe *FieldError) {
	if !present {
		if b.required {
			return true, newFieldError(b.name, KindMissingField, "Required parameter '%s' is missing.", b.name)
		}
		return true, nil
	}

	if value == nil {
		if !b.nullable {
			return true, newFieldError(b.name, KindNullNotAllowed, "Field '%s' cannot be null.", b.name)
		}
		return true, nil
	}

	return false, nil
}

// FieldInstance binds a field template to the value received in one
// request. It is not safe for concurrent use and must not outlive the
// request it was created for.
type FieldInstance struct {
	field   Field
	value   any
	present bool
	err     *FieldError
}

// NewFieldInstance returns an instance of f with no value set, which
// validates as an absent field.
func NewFieldInstance(f Field) *FieldInstance {
	return &FieldInstance{field: f}
}

// Name returns the name of the underlying field.
func (i *FieldInstance) Name() string {
	return i.field.Name()
}

// SetValue binds the received value. nil is an explicit null.
func (i *FieldInstance) SetValue(v any) {
	i.value = v
	i.present = true
}

// Value returns the bound value. After a successful IsValid it is the
// canonical form, e.g. an int for integer fields.
func (i *FieldInstance) Value() any {
	return i.value
}

// Present reports whether a value was bound.
func (i *FieldInstance) Present() bool {
	return i.present
}

// IsValid runs the field rules on the bound value. Once coercion succeeds
// the value is replaced by its canonical form, even if a later rule fails.
// On failure exactly one error is recorded.
// Calling it again without changing the value gives the same outcome.
func (i *FieldInstance) IsValid() bool {
	v, fe := i.field.Check(i.value, i.present)
	if i.present {
		i.value = v
	}

	i.err = fe
	return fe == nil
}

// Err returns the error recorded by the last IsValid call.
func (i *FieldInstance) Err() *FieldError {
	return i.err
}

// Errors returns the recorded error keyed by field name. It is empty when
// the last IsValid call succeeded.
func (i *FieldInstance) Errors() ErrorMap {
	m := ErrorMap{}
	if i.err != nil {
		m.Add(i.err.Field, i.err.Message)
	}
	return m
}
