// Package validate admits raw loader output into the typed domain.
//
// A RawRecord is what a loading collaborator hands over: column name to raw
// string value. Validation is a pure function; it either produces a
// fully-typed core.TransactionRecord or reports exactly what was wrong with
// the candidate.
package validate

import (
	"strconv"
	"strings"

	"salescope/internal/core"
)

// RawRecord maps canonical column names to raw string values. An absent key
// and a blank value are both treated as missing.
type RawRecord map[string]string

// Canonical column names, in schema order.
const (
	FieldTransactionID = "transaction_id"
	FieldSaleDate      = "sale_date"
	FieldSaleTime      = "sale_time"
	FieldCustomerID    = "customer_id"
	FieldGender        = "gender"
	FieldAge           = "age"
	FieldCategory      = "category"
	FieldQuantity      = "quantity"
	FieldPricePerUnit  = "price_per_unit"
	FieldCOGS          = "cogs"
	FieldTotalSale     = "total_sale"
)

// Columns lists the canonical column names in schema order.
var Columns = []string{
	FieldTransactionID,
	FieldSaleDate,
	FieldSaleTime,
	FieldCustomerID,
	FieldGender,
	FieldAge,
	FieldCategory,
	FieldQuantity,
	FieldPricePerUnit,
	FieldCOGS,
	FieldTotalSale,
}

// Validate admits a raw record into the typed domain. It fails with
// *core.MissingFieldError naming every absent field, *core.FieldTypeError
// for a value that cannot be coerced, or *core.DomainError for a value
// outside its allowed domain. No side effects.
func Validate(raw RawRecord) (core.TransactionRecord, error) {
	var missing []string
	for _, col := range Columns {
		if strings.TrimSpace(raw[col]) == "" {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return core.TransactionRecord{}, &core.MissingFieldError{Fields: missing}
	}

	transactionID, err := parseInt(FieldTransactionID, raw[FieldTransactionID])
	if err != nil {
		return core.TransactionRecord{}, err
	}
	saleDate, err := core.ParseDate(strings.TrimSpace(raw[FieldSaleDate]))
	if err != nil {
		return core.TransactionRecord{}, &core.FieldTypeError{Field: FieldSaleDate, Value: raw[FieldSaleDate]}
	}
	saleTime, err := core.ParseTimeOfDay(strings.TrimSpace(raw[FieldSaleTime]))
	if err != nil {
		return core.TransactionRecord{}, &core.FieldTypeError{Field: FieldSaleTime, Value: raw[FieldSaleTime]}
	}
	customerID, err := parseInt(FieldCustomerID, raw[FieldCustomerID])
	if err != nil {
		return core.TransactionRecord{}, err
	}
	age, err := parseInt(FieldAge, raw[FieldAge])
	if err != nil {
		return core.TransactionRecord{}, err
	}
	quantity, err := parseInt(FieldQuantity, raw[FieldQuantity])
	if err != nil {
		return core.TransactionRecord{}, err
	}
	price, err := parseCents(FieldPricePerUnit, raw[FieldPricePerUnit])
	if err != nil {
		return core.TransactionRecord{}, err
	}
	cogs, err := parseCents(FieldCOGS, raw[FieldCOGS])
	if err != nil {
		return core.TransactionRecord{}, err
	}
	total, err := parseCents(FieldTotalSale, raw[FieldTotalSale])
	if err != nil {
		return core.TransactionRecord{}, err
	}

	record := core.TransactionRecord{
		TransactionID: transactionID,
		SaleDate:      saleDate,
		SaleTime:      saleTime,
		CustomerID:    customerID,
		Gender:        core.Gender(strings.TrimSpace(raw[FieldGender])),
		Age:           int(age),
		Category:      strings.TrimSpace(raw[FieldCategory]),
		Quantity:      quantity,
		PricePerUnit:  core.Money{Cents: price},
		COGS:          core.Money{Cents: cogs},
		TotalSale:     core.Money{Cents: total},
	}
	if err := record.Validate(); err != nil {
		return core.TransactionRecord{}, err
	}
	return record, nil
}

func parseInt(field, value string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, &core.FieldTypeError{Field: field, Value: value}
	}
	return n, nil
}

func parseCents(field, value string) (int64, error) {
	// A well-formed negative is a domain violation, not a type one.
	if strings.HasPrefix(strings.TrimSpace(value), "-") {
		return 0, &core.DomainError{Field: field, Reason: "must not be negative"}
	}
	cents, err := core.ParseDecimalToCents(value)
	if err != nil {
		return 0, &core.FieldTypeError{Field: field, Value: value}
	}
	return cents, nil
}
