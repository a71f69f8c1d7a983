// Package aggregate computes the fixed catalog of summary statistics over a
// record store.
//
// Every function is a pure, deterministic read: for a given store, running a
// function twice yields identical results, tie sets included. Group-bys are
// single reduce-by-key passes; the whole table is memory-resident, so no
// incremental machinery is involved.
package aggregate

import (
	"errors"
	"sort"
	"time"

	"salescope/internal/core"
	"salescope/internal/store"
)

// ErrEmptyStore is returned by extrema and peak lookups, which are undefined
// on an empty store. Zero is a valid sale amount, so these never coerce an
// empty store into a misleading default.
var ErrEmptyStore = errors.New("empty store")

// ErrDivisionByZero is returned by averages over an empty store.
var ErrDivisionByZero = errors.New("division by zero: empty store")

type (
	// DateTotal is the revenue of one sale date.
	DateTotal struct {
		Date  core.Date  `json:"date"`
		Total core.Money `json:"total"`
	}

	// WeekdayTotal is the revenue of one weekday across all dates.
	WeekdayTotal struct {
		Weekday string     `json:"weekday"`
		Total   core.Money `json:"total"`
	}

	// MonthTotal is the revenue of one calendar month name across all dates.
	MonthTotal struct {
		Month string     `json:"month"`
		Total core.Money `json:"total"`
	}
)

// TransactionCount returns the number of records in the store.
func TransactionCount(s *store.Store) int {
	return s.Count()
}

// UniqueCustomerCount returns the number of distinct customer ids.
func UniqueCustomerCount(s *store.Store) int {
	seen := make(map[int64]struct{})
	s.Each(func(r core.TransactionRecord) {
		seen[r.CustomerID] = struct{}{}
	})
	return len(seen)
}

// TotalRevenue returns the sum of total_sale over all records.
func TotalRevenue(s *store.Store) core.Money {
	var total core.Money
	s.Each(func(r core.TransactionRecord) {
		total = total.Add(r.TotalSale)
	})
	return total
}

// AverageTransactionValue returns total revenue divided by the transaction
// count, rounded half-up to the nearest cent. Fails with ErrDivisionByZero
// on an empty store.
func AverageTransactionValue(s *store.Store) (core.Money, error) {
	n := int64(s.Count())
	if n == 0 {
		return core.Money{}, ErrDivisionByZero
	}
	return TotalRevenue(s).DivideRounded(n), nil
}

// MinMaxSale returns the smallest and largest total_sale in the store.
// Fails with ErrEmptyStore on an empty store.
func MinMaxSale(s *store.Store) (min, max core.Money, err error) {
	if s.Count() == 0 {
		return core.Money{}, core.Money{}, ErrEmptyStore
	}
	first := true
	s.Each(func(r core.TransactionRecord) {
		if first {
			min, max = r.TotalSale, r.TotalSale
			first = false
			return
		}
		if r.TotalSale.Cents < min.Cents {
			min = r.TotalSale
		}
		if r.TotalSale.Cents > max.Cents {
			max = r.TotalSale
		}
	})
	return min, max, nil
}

// DistinctCategories returns the distinct category values, sorted.
func DistinctCategories(s *store.Store) []string {
	seen := make(map[string]struct{})
	s.Each(func(r core.TransactionRecord) {
		seen[r.Category] = struct{}{}
	})
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// AveragePricePerUnit returns the mean price_per_unit, rounded half-up to
// the nearest cent. Fails with ErrDivisionByZero on an empty store.
func AveragePricePerUnit(s *store.Store) (core.Money, error) {
	n := int64(s.Count())
	if n == 0 {
		return core.Money{}, ErrDivisionByZero
	}
	var total core.Money
	s.Each(func(r core.TransactionRecord) {
		total = total.Add(r.PricePerUnit)
	})
	return total.DivideRounded(n), nil
}

// TotalQuantity returns the sum of quantity over all records.
func TotalQuantity(s *store.Store) int64 {
	var total int64
	s.Each(func(r core.TransactionRecord) {
		total += r.Quantity
	})
	return total
}

// SalesByDate returns per-date revenue, ordered by date descending.
func SalesByDate(s *store.Store) []DateTotal {
	byDate := dailyTotals(s)
	out := make([]DateTotal, 0, len(byDate))
	for _, t := range byDate {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[j].Date.Before(out[i].Date)
	})
	return out
}

// SalesByWeekday returns per-weekday revenue in canonical week order,
// Monday through Sunday. Weekdays with no data are omitted, not zero-filled.
func SalesByWeekday(s *store.Store) []WeekdayTotal {
	totals := make(map[time.Weekday]core.Money)
	s.Each(func(r core.TransactionRecord) {
		wd := r.SaleDate.Weekday()
		totals[wd] = totals[wd].Add(r.TotalSale)
	})

	week := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	out := make([]WeekdayTotal, 0, len(totals))
	for _, wd := range week {
		if total, ok := totals[wd]; ok {
			out = append(out, WeekdayTotal{Weekday: wd.String(), Total: total})
		}
	}
	return out
}

// SalesByMonth returns per-month-name revenue, ordered by the calendar
// month number of each month's earliest occurring date in the data.
func SalesByMonth(s *store.Store) []MonthTotal {
	byMonth := monthlyTotals(s)
	out := make([]MonthTotal, 0, len(byMonth))
	for _, t := range byMonth {
		out = append(out, MonthTotal{Month: t.name, Total: t.total})
	}
	sort.Slice(out, func(i, j int) bool {
		return monthNumber(out[i].Month) < monthNumber(out[j].Month)
	})
	return out
}

// PeakSalesDays returns every date whose daily revenue equals the maximum
// daily revenue, ascending. Ties are all included, never collapsed to an
// arbitrary winner. Fails with ErrEmptyStore on an empty store.
func PeakSalesDays(s *store.Store) ([]DateTotal, error) {
	byDate := dailyTotals(s)
	if len(byDate) == 0 {
		return nil, ErrEmptyStore
	}
	var max int64
	first := true
	for _, t := range byDate {
		if first || t.Total.Cents > max {
			max = t.Total.Cents
			first = false
		}
	}
	var peaks []DateTotal
	for _, t := range byDate {
		if t.Total.Cents == max {
			peaks = append(peaks, t)
		}
	}
	sort.Slice(peaks, func(i, j int) bool {
		return peaks[i].Date.Before(peaks[j].Date)
	})
	return peaks, nil
}

// PeakSalesMonths returns every month name whose monthly revenue equals the
// maximum monthly revenue, in calendar order. Fails with ErrEmptyStore on an
// empty store.
func PeakSalesMonths(s *store.Store) ([]MonthTotal, error) {
	byMonth := monthlyTotals(s)
	if len(byMonth) == 0 {
		return nil, ErrEmptyStore
	}
	var max int64
	first := true
	for _, t := range byMonth {
		if first || t.total.Cents > max {
			max = t.total.Cents
			first = false
		}
	}
	var peaks []MonthTotal
	for _, t := range byMonth {
		if t.total.Cents == max {
			peaks = append(peaks, MonthTotal{Month: t.name, Total: t.total})
		}
	}
	sort.Slice(peaks, func(i, j int) bool {
		return monthNumber(peaks[i].Month) < monthNumber(peaks[j].Month)
	})
	return peaks, nil
}

func dailyTotals(s *store.Store) map[string]DateTotal {
	byDate := make(map[string]DateTotal)
	s.Each(func(r core.TransactionRecord) {
		key := r.SaleDate.String()
		t, ok := byDate[key]
		if !ok {
			t = DateTotal{Date: r.SaleDate}
		}
		t.Total = t.Total.Add(r.TotalSale)
		byDate[key] = t
	})
	return byDate
}

type monthTotal struct {
	name  string
	total core.Money
}

func monthlyTotals(s *store.Store) map[string]monthTotal {
	byMonth := make(map[string]monthTotal)
	s.Each(func(r core.TransactionRecord) {
		name := r.SaleDate.MonthName()
		t, ok := byMonth[name]
		if !ok {
			t = monthTotal{name: name}
		}
		t.total = t.total.Add(r.TotalSale)
		byMonth[name] = t
	})
	return byMonth
}

func monthNumber(name string) int {
	for m := time.January; m <= time.December; m++ {
		if m.String() == name {
			return int(m)
		}
	}
	return 0
}
