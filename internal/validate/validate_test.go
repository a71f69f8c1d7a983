package validate

import (
	"errors"
	"testing"

	"salescope/internal/core"
)

func validRaw() RawRecord {
	return RawRecord{
		FieldTransactionID: "1",
		FieldSaleDate:      "2022-10-10",
		FieldSaleTime:      "14:30:00",
		FieldCustomerID:    "42",
		FieldGender:        "Female",
		FieldAge:           "34",
		FieldCategory:      "Beauty",
		FieldQuantity:      "3",
		FieldPricePerUnit:  "50.00",
		FieldCOGS:          "25.50",
		FieldTotalSale:     "150.00",
	}
}

func TestValidateOK(t *testing.T) {
	record, err := Validate(validRaw())
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if record.TransactionID != 1 {
		t.Errorf("transaction id: got %d", record.TransactionID)
	}
	if record.SaleDate.String() != "2022-10-10" {
		t.Errorf("sale date: got %s", record.SaleDate)
	}
	if record.SaleTime.String() != "14:30:00" {
		t.Errorf("sale time: got %s", record.SaleTime)
	}
	if record.Gender != core.Female {
		t.Errorf("gender: got %s", record.Gender)
	}
	if record.PricePerUnit.Cents != 5000 {
		t.Errorf("price: got %d", record.PricePerUnit.Cents)
	}
	if record.COGS.Cents != 2550 {
		t.Errorf("cogs: got %d", record.COGS.Cents)
	}
	if record.TotalSale.Cents != 15000 {
		t.Errorf("total: got %d", record.TotalSale.Cents)
	}
}

func TestValidateMissingAge(t *testing.T) {
	raw := validRaw()
	delete(raw, FieldAge)

	_, err := Validate(raw)
	var mfe *core.MissingFieldError
	if !errors.As(err, &mfe) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if len(mfe.Fields) != 1 || mfe.Fields[0] != FieldAge {
		t.Fatalf("expected [age], got %v", mfe.Fields)
	}
}

func TestValidateMissingSeveralNamesAll(t *testing.T) {
	raw := validRaw()
	delete(raw, FieldSaleDate)
	raw[FieldGender] = "  " // blank counts as missing
	delete(raw, FieldTotalSale)

	_, err := Validate(raw)
	var mfe *core.MissingFieldError
	if !errors.As(err, &mfe) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	want := []string{FieldSaleDate, FieldGender, FieldTotalSale}
	if len(mfe.Fields) != len(want) {
		t.Fatalf("expected %v, got %v", want, mfe.Fields)
	}
	for i, f := range want {
		if mfe.Fields[i] != f {
			t.Fatalf("expected %v in column order, got %v", want, mfe.Fields)
		}
	}
}

func TestValidateTypeErrors(t *testing.T) {
	cases := []struct {
		field string
		value string
	}{
		{FieldTransactionID, "abc"},
		{FieldSaleDate, "10/10/2022"},
		{FieldSaleTime, "2pm"},
		{FieldCustomerID, "12.5"},
		{FieldAge, "thirty"},
		{FieldQuantity, "three"},
		{FieldPricePerUnit, "1.2.3"},
		{FieldCOGS, "$25"},
		{FieldTotalSale, "n/a"},
	}
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			raw := validRaw()
			raw[tc.field] = tc.value

			_, err := Validate(raw)
			var fte *core.FieldTypeError
			if !errors.As(err, &fte) {
				t.Fatalf("expected FieldTypeError, got %v", err)
			}
			if fte.Field != tc.field {
				t.Fatalf("expected field %s, got %s", tc.field, fte.Field)
			}
		})
	}
}

func TestValidateDomainErrors(t *testing.T) {
	cases := []struct {
		field string
		value string
	}{
		{FieldTransactionID, "0"},
		{FieldCustomerID, "-7"},
		{FieldGender, "Unknown"},
		{FieldAge, "0"},
		{FieldQuantity, "-1"},
		{FieldPricePerUnit, "-5.00"},
		{FieldCOGS, "-0.01"},
		{FieldTotalSale, "-100"},
	}
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			raw := validRaw()
			raw[tc.field] = tc.value

			_, err := Validate(raw)
			var de *core.DomainError
			if !errors.As(err, &de) {
				t.Fatalf("expected DomainError, got %v", err)
			}
			if de.Field != tc.field {
				t.Fatalf("expected field %s, got %s", tc.field, de.Field)
			}
		})
	}
}

func TestValidateZeroAmountsAdmitted(t *testing.T) {
	raw := validRaw()
	raw[FieldQuantity] = "0"
	raw[FieldPricePerUnit] = "0"
	raw[FieldCOGS] = "0.00"
	raw[FieldTotalSale] = "0"

	record, err := Validate(raw)
	if err != nil {
		t.Fatalf("zero amounts should be admitted, got %v", err)
	}
	if record.Quantity != 0 || record.TotalSale.Cents != 0 {
		t.Fatalf("unexpected record %+v", record)
	}
}

func TestValidateOpenCategory(t *testing.T) {
	raw := validRaw()
	raw[FieldCategory] = "Groceries" // outside the observed set, still admitted

	if _, err := Validate(raw); err != nil {
		t.Fatalf("category is open text, got %v", err)
	}
}
