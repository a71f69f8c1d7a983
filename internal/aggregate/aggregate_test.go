package aggregate

import (
	"errors"
	"reflect"
	"testing"

	"salescope/internal/core"
	"salescope/internal/store"
)

var nextID int64

func sale(date core.Date, customer int64, category string, qty int64, priceCents, totalCents int64) core.TransactionRecord {
	nextID++
	return core.TransactionRecord{
		TransactionID: nextID,
		SaleDate:      date,
		SaleTime:      core.TimeOfDay{Hour: 12},
		CustomerID:    customer,
		Gender:        core.Female,
		Age:           30,
		Category:      category,
		Quantity:      qty,
		PricePerUnit:  core.Money{Cents: priceCents},
		COGS:          core.Money{Cents: priceCents / 2},
		TotalSale:     core.Money{Cents: totalCents},
	}
}

// fixtureStore covers three months, five dates, three categories and a
// deliberate tie between the two peak days.
//
//	2022-10-10 (Mon): 2500 + 7500        = 10000
//	2022-10-11 (Tue): 10000              = 10000  <- tied peak with 10-10
//	2022-11-06 (Sun): 4000               =  4000
//	2022-12-24 (Sat): 6000               =  6000
//	2022-12-26 (Mon): 3000               =  3000
//
// Monthly: October 20000 (peak), November 4000, December 9000.
func fixtureStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Build([]core.TransactionRecord{
		sale(core.NewDate(2022, 10, 10), 1, "Beauty", 1, 2500, 2500),
		sale(core.NewDate(2022, 10, 10), 2, "Clothing", 3, 2500, 7500),
		sale(core.NewDate(2022, 10, 11), 1, "Electronics", 2, 5000, 10000),
		sale(core.NewDate(2022, 11, 6), 3, "Beauty", 4, 1000, 4000),
		sale(core.NewDate(2022, 12, 24), 2, "Clothing", 2, 3000, 6000),
		sale(core.NewDate(2022, 12, 26), 4, "Electronics", 1, 3000, 3000),
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func emptyStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Build(nil)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestCounts(t *testing.T) {
	s := fixtureStore(t)
	if got := TransactionCount(s); got != 6 {
		t.Errorf("TransactionCount: got %d, want 6", got)
	}
	if got := UniqueCustomerCount(s); got != 4 {
		t.Errorf("UniqueCustomerCount: got %d, want 4", got)
	}
	if got := TotalQuantity(s); got != 13 {
		t.Errorf("TotalQuantity: got %d, want 13", got)
	}
}

func TestTotalRevenue(t *testing.T) {
	s := fixtureStore(t)
	want := int64(33000)
	if got := TotalRevenue(s); got.Cents != want {
		t.Fatalf("TotalRevenue: got %d, want %d", got.Cents, want)
	}
}

func TestAverageTransactionValue(t *testing.T) {
	s := fixtureStore(t)
	avg, err := AverageTransactionValue(s)
	if err != nil {
		t.Fatal(err)
	}
	// 33000 / 6 = 5500 exactly
	if avg.Cents != 5500 {
		t.Fatalf("got %d, want 5500", avg.Cents)
	}

	// rounding tolerance law: avg * count within one cent per record of total
	n := int64(TransactionCount(s))
	diff := avg.Cents*n - TotalRevenue(s).Cents
	if diff < -n/2-1 || diff > n/2+1 {
		t.Fatalf("avg*count drifts from total by %d cents", diff)
	}
}

func TestAveragePricePerUnit(t *testing.T) {
	s := fixtureStore(t)
	avg, err := AveragePricePerUnit(s)
	if err != nil {
		t.Fatal(err)
	}
	// (2500+2500+5000+1000+3000+3000)/6 = 17000/6 = 2833.33.. -> 2833
	if avg.Cents != 2833 {
		t.Fatalf("got %d, want 2833", avg.Cents)
	}
}

func TestMinMaxSale(t *testing.T) {
	s := fixtureStore(t)
	min, max, err := MinMaxSale(s)
	if err != nil {
		t.Fatal(err)
	}
	if min.Cents != 2500 || max.Cents != 10000 {
		t.Fatalf("got (%d, %d), want (2500, 10000)", min.Cents, max.Cents)
	}
	// bounds law
	for _, r := range s.All() {
		if r.TotalSale.Cents < min.Cents || r.TotalSale.Cents > max.Cents {
			t.Fatalf("record %d total %d outside [%d, %d]", r.TransactionID, r.TotalSale.Cents, min.Cents, max.Cents)
		}
	}
}

func TestDistinctCategories(t *testing.T) {
	s := fixtureStore(t)
	got := DistinctCategories(s)
	want := []string{"Beauty", "Clothing", "Electronics"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSalesByDate(t *testing.T) {
	s := fixtureStore(t)
	got := SalesByDate(s)
	wantDates := []string{"2022-12-26", "2022-12-24", "2022-11-06", "2022-10-11", "2022-10-10"}
	wantTotals := []int64{3000, 6000, 4000, 10000, 10000}
	if len(got) != len(wantDates) {
		t.Fatalf("got %d groups, want %d", len(got), len(wantDates))
	}
	var sum int64
	for i, dt := range got {
		if dt.Date.String() != wantDates[i] || dt.Total.Cents != wantTotals[i] {
			t.Fatalf("position %d: got (%s, %d), want (%s, %d)", i, dt.Date, dt.Total.Cents, wantDates[i], wantTotals[i])
		}
		sum += dt.Total.Cents
	}
	// partition law
	if sum != TotalRevenue(s).Cents {
		t.Fatalf("date totals sum to %d, revenue is %d", sum, TotalRevenue(s).Cents)
	}
}

func TestSalesByWeekday(t *testing.T) {
	s := fixtureStore(t)
	got := SalesByWeekday(s)
	// Mondays: 10-10 (10000) + 12-26 (3000); Tuesday 10-11; Saturday 12-24; Sunday 11-06.
	want := []WeekdayTotal{
		{Weekday: "Monday", Total: core.Money{Cents: 13000}},
		{Weekday: "Tuesday", Total: core.Money{Cents: 10000}},
		{Weekday: "Saturday", Total: core.Money{Cents: 6000}},
		{Weekday: "Sunday", Total: core.Money{Cents: 4000}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	var sum int64
	for _, wt := range got {
		sum += wt.Total.Cents
	}
	if sum != TotalRevenue(s).Cents {
		t.Fatalf("weekday totals sum to %d, revenue is %d", sum, TotalRevenue(s).Cents)
	}
}

func TestSalesByMonth(t *testing.T) {
	s := fixtureStore(t)
	got := SalesByMonth(s)
	want := []MonthTotal{
		{Month: "October", Total: core.Money{Cents: 20000}},
		{Month: "November", Total: core.Money{Cents: 4000}},
		{Month: "December", Total: core.Money{Cents: 9000}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	var sum int64
	for _, mt := range got {
		sum += mt.Total.Cents
	}
	if sum != TotalRevenue(s).Cents {
		t.Fatalf("month totals sum to %d, revenue is %d", sum, TotalRevenue(s).Cents)
	}
}

func TestPeakSalesDaysTieInclusive(t *testing.T) {
	s := fixtureStore(t)
	peaks, err := PeakSalesDays(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(peaks) != 2 {
		t.Fatalf("expected both tied days, got %d: %v", len(peaks), peaks)
	}
	if peaks[0].Date.String() != "2022-10-10" || peaks[1].Date.String() != "2022-10-11" {
		t.Fatalf("got %v", peaks)
	}
	for _, p := range peaks {
		if p.Total.Cents != 10000 {
			t.Fatalf("peak total: got %d, want 10000", p.Total.Cents)
		}
	}
}

func TestPeakSalesMonths(t *testing.T) {
	s := fixtureStore(t)
	peaks, err := PeakSalesMonths(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(peaks) != 1 || peaks[0].Month != "October" || peaks[0].Total.Cents != 20000 {
		t.Fatalf("got %v", peaks)
	}
}

func TestPeakSalesMonthsTie(t *testing.T) {
	nextID = 1000
	s, err := store.Build([]core.TransactionRecord{
		sale(core.NewDate(2022, 3, 1), 1, "Beauty", 1, 100, 5000),
		sale(core.NewDate(2022, 7, 1), 1, "Beauty", 1, 100, 5000),
		sale(core.NewDate(2022, 5, 1), 1, "Beauty", 1, 100, 1000),
	})
	if err != nil {
		t.Fatal(err)
	}
	peaks, err := PeakSalesMonths(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(peaks) != 2 {
		t.Fatalf("expected both tied months, got %v", peaks)
	}
	// calendar order, not alphabetical (July < March alphabetically)
	if peaks[0].Month != "March" || peaks[1].Month != "July" {
		t.Fatalf("got %v", peaks)
	}
}

func TestIdempotence(t *testing.T) {
	s := fixtureStore(t)

	if TotalRevenue(s) != TotalRevenue(s) {
		t.Fatal("TotalRevenue not idempotent")
	}
	a, _ := PeakSalesDays(s)
	b, _ := PeakSalesDays(s)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("PeakSalesDays not idempotent")
	}
	if !reflect.DeepEqual(SalesByMonth(s), SalesByMonth(s)) {
		t.Fatal("SalesByMonth not idempotent")
	}
	if !reflect.DeepEqual(SalesByDate(s), SalesByDate(s)) {
		t.Fatal("SalesByDate not idempotent")
	}
	if !reflect.DeepEqual(DistinctCategories(s), DistinctCategories(s)) {
		t.Fatal("DistinctCategories not idempotent")
	}
}

func TestEmptyStore(t *testing.T) {
	s := emptyStore(t)

	if got := TransactionCount(s); got != 0 {
		t.Errorf("TransactionCount: got %d", got)
	}
	if got := UniqueCustomerCount(s); got != 0 {
		t.Errorf("UniqueCustomerCount: got %d", got)
	}
	if got := TotalRevenue(s); got.Cents != 0 {
		t.Errorf("TotalRevenue: got %d", got.Cents)
	}
	if got := TotalQuantity(s); got != 0 {
		t.Errorf("TotalQuantity: got %d", got)
	}
	if got := DistinctCategories(s); len(got) != 0 {
		t.Errorf("DistinctCategories: got %v", got)
	}
	if got := SalesByDate(s); len(got) != 0 {
		t.Errorf("SalesByDate: got %v", got)
	}
	if got := SalesByWeekday(s); len(got) != 0 {
		t.Errorf("SalesByWeekday: got %v", got)
	}
	if got := SalesByMonth(s); len(got) != 0 {
		t.Errorf("SalesByMonth: got %v", got)
	}

	if _, _, err := MinMaxSale(s); !errors.Is(err, ErrEmptyStore) {
		t.Errorf("MinMaxSale: expected ErrEmptyStore, got %v", err)
	}
	if _, err := AverageTransactionValue(s); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("AverageTransactionValue: expected ErrDivisionByZero, got %v", err)
	}
	if _, err := AveragePricePerUnit(s); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("AveragePricePerUnit: expected ErrDivisionByZero, got %v", err)
	}
	if _, err := PeakSalesDays(s); !errors.Is(err, ErrEmptyStore) {
		t.Errorf("PeakSalesDays: expected ErrEmptyStore, got %v", err)
	}
	if _, err := PeakSalesMonths(s); !errors.Is(err, ErrEmptyStore) {
		t.Errorf("PeakSalesMonths: expected ErrEmptyStore, got %v", err)
	}
}
