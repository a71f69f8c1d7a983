package core

import (
	"fmt"
	"strings"
	"time"
)

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

type (
	// Gender is the closed customer gender enumeration.
	Gender string

	// Date is a calendar date with no time-of-day and no zone.
	Date struct {
		time.Time
	}

	// TimeOfDay is a wall-clock time paired with a Date but never combined
	// with it into a single timestamp.
	TimeOfDay struct {
		Hour   int
		Minute int
		Second int
	}

	// TransactionRecord is one retail sale event. Records are immutable
	// once admitted to a store.
	TransactionRecord struct {
		TransactionID int64
		SaleDate      Date
		SaleTime      TimeOfDay
		CustomerID    int64
		Gender        Gender
		Age           int
		Category      string
		Quantity      int64
		PricePerUnit  Money
		COGS          Money
		TotalSale     Money
	}
)

// NewDate creates a Date from year, month, day at UTC midnight.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a date in 2006-01-02 form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return &DomainError{Field: "sale_date", Reason: "date cannot be zero"}
	}
	return nil
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

// Weekday returns the weekday of the date.
func (d Date) Weekday() time.Weekday {
	return d.Time.Weekday()
}

// MonthName returns the English month name ("December").
func (d Date) MonthName() string {
	return d.Time.Month().String()
}

// MonthNumber returns the calendar month number, 1-12.
func (d Date) MonthNumber() int {
	return int(d.Time.Month())
}

func (d Date) String() string {
	return d.Format("2006-01-02")
}

// MarshalJSON renders the date in 2006-01-02 form, not RFC 3339.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts a 2006-01-02 quoted string.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseTimeOfDay parses a wall-clock time in 15:04:05 form.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return TimeOfDay{}, err
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// ParseGender validates a raw gender value against the closed enumeration.
func ParseGender(s string) (Gender, error) {
	switch Gender(s) {
	case Male, Female:
		return Gender(s), nil
	default:
		return "", &DomainError{Field: "gender", Reason: fmt.Sprintf("must be Male or Female, got %q", s)}
	}
}

// Validate checks the domain invariants of a fully-typed record. Field
// presence and type coercion are the validator's concern; this only rejects
// values outside their allowed domain.
func (r TransactionRecord) Validate() error {
	if r.TransactionID <= 0 {
		return &DomainError{Field: "transaction_id", Reason: "must be positive"}
	}
	if err := r.SaleDate.Validate(); err != nil {
		return err
	}
	if r.CustomerID <= 0 {
		return &DomainError{Field: "customer_id", Reason: "must be positive"}
	}
	if _, err := ParseGender(string(r.Gender)); err != nil {
		return err
	}
	if r.Age <= 0 {
		return &DomainError{Field: "age", Reason: "must be positive"}
	}
	if r.Quantity < 0 {
		return &DomainError{Field: "quantity", Reason: "must not be negative"}
	}
	if r.PricePerUnit.Cents < 0 {
		return &DomainError{Field: "price_per_unit", Reason: "must not be negative"}
	}
	if r.COGS.Cents < 0 {
		return &DomainError{Field: "cogs", Reason: "must not be negative"}
	}
	if r.TotalSale.Cents < 0 {
		return &DomainError{Field: "total_sale", Reason: "must not be negative"}
	}
	return nil
}
