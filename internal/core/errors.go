package core

import (
	"fmt"
	"strings"
)

// MissingFieldError reports record fields that were absent or blank in the
// raw input. Fields are listed in canonical column order.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field(s): %s", strings.Join(e.Fields, ", "))
}

// FieldTypeError reports a raw value that could not be coerced to the
// semantic type of its field.
type FieldTypeError struct {
	Field string
	Value string
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("field %s: cannot parse %q", e.Field, e.Value)
}

// DomainError reports a well-typed value that falls outside the field's
// allowed domain (negative amount, unknown gender, non-positive id).
type DomainError struct {
	Field  string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("field %s: %s", e.Field, e.Reason)
}
