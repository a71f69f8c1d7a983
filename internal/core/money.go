// Package core provides the retail transaction domain types.
//
// This file contains monetary amount handling. Amounts are stored as integer
// cents to keep every aggregation exact; floating point appears only at the
// display boundary.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// Money is a non-negative monetary amount in integer cents.
type Money struct {
	Cents int64 `json:"cents"`
}

// ParseDecimalToCents converts a decimal string to cents with half-up
// rounding on the third decimal place. Both dot (12.34) and comma (12,34)
// separators are accepted. Zero is a valid amount; signs are not.
//
// Examples:
//
//	ParseDecimalToCents("12.34")  -> 1234, nil
//	ParseDecimalToCents("12.345") -> 1235, nil (rounds up)
//	ParseDecimalToCents("0")      -> 0, nil
func ParseDecimalToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &FieldTypeError{Field: "amount", Value: s}
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, &FieldTypeError{Field: "amount", Value: s}
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, &FieldTypeError{Field: "amount", Value: s}
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, &FieldTypeError{Field: "amount", Value: s}
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, &FieldTypeError{Field: "amount", Value: s}
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, &FieldTypeError{Field: "amount", Value: s}
	}
	// Prevent overflow when multiplying by 100
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, &FieldTypeError{Field: "amount", Value: s}
	}
	// Take first two fractional digits; half-up rounding on the third
	var fracCents int64
	if len(fracPart) > 0 {
		d1 := int64(fracPart[0] - '0')
		fracCents = d1 * 10
		if len(fracPart) > 1 {
			d2 := int64(fracPart[1] - '0')
			fracCents += d2
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}
	return iv*100 + fracCents, nil
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{Cents: m.Cents + other.Cents}
}

// DivideRounded divides the amount by n, rounding half-up to the nearest
// cent. n must be positive.
func (m Money) DivideRounded(n int64) Money {
	// (2a + n) / 2n floors to round-half-up for non-negative a
	return Money{Cents: (2*m.Cents + n) / (2 * n)}
}

// Dollars returns the amount as a float64 for display purposes.
// Use cents for calculations to avoid floating-point precision issues.
func (m Money) Dollars() float64 {
	return float64(m.Cents) / 100.0
}
