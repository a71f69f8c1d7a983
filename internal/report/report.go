// Package report assembles the aggregation catalog into one stable result
// structure for presentation layers.
package report

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"salescope/internal/aggregate"
	"salescope/internal/core"
	"salescope/internal/store"
)

// Report holds every aggregator output under a stable field name. It is
// computed eagerly with no partial results: a precondition failure in any
// aggregate (an empty store) fails the whole build.
type Report struct {
	TransactionCount        int                      `json:"transaction_count"`
	UniqueCustomerCount     int                      `json:"unique_customer_count"`
	TotalRevenue            core.Money               `json:"total_revenue"`
	AverageTransactionValue core.Money               `json:"average_transaction_value"`
	MinSale                 core.Money               `json:"min_sale"`
	MaxSale                 core.Money               `json:"max_sale"`
	DistinctCategories      []string                 `json:"distinct_categories"`
	CategoryCount           int                      `json:"category_count"`
	AveragePricePerUnit     core.Money               `json:"average_price_per_unit"`
	TotalQuantity           int64                    `json:"total_quantity"`
	SalesByDate             []aggregate.DateTotal    `json:"sales_by_date"`
	SalesByWeekday          []aggregate.WeekdayTotal `json:"sales_by_weekday"`
	SalesByMonth            []aggregate.MonthTotal   `json:"sales_by_month"`
	PeakSalesDays           []aggregate.DateTotal    `json:"peak_sales_days"`
	PeakSalesMonths         []aggregate.MonthTotal   `json:"peak_sales_months"`
	GeneratedAt             time.Time                `json:"generated_at"`
}

// Build computes every aggregate sequentially.
func Build(s *store.Store) (*Report, error) {
	r := &Report{}

	r.TransactionCount = aggregate.TransactionCount(s)
	r.UniqueCustomerCount = aggregate.UniqueCustomerCount(s)
	r.TotalRevenue = aggregate.TotalRevenue(s)
	r.TotalQuantity = aggregate.TotalQuantity(s)
	r.DistinctCategories = aggregate.DistinctCategories(s)
	r.CategoryCount = len(r.DistinctCategories)
	r.SalesByDate = aggregate.SalesByDate(s)
	r.SalesByWeekday = aggregate.SalesByWeekday(s)
	r.SalesByMonth = aggregate.SalesByMonth(s)

	var err error
	if r.AverageTransactionValue, err = aggregate.AverageTransactionValue(s); err != nil {
		return nil, fmt.Errorf("average transaction value: %w", err)
	}
	if r.MinSale, r.MaxSale, err = aggregate.MinMaxSale(s); err != nil {
		return nil, fmt.Errorf("min/max sale: %w", err)
	}
	if r.AveragePricePerUnit, err = aggregate.AveragePricePerUnit(s); err != nil {
		return nil, fmt.Errorf("average price per unit: %w", err)
	}
	if r.PeakSalesDays, err = aggregate.PeakSalesDays(s); err != nil {
		return nil, fmt.Errorf("peak sales days: %w", err)
	}
	if r.PeakSalesMonths, err = aggregate.PeakSalesMonths(s); err != nil {
		return nil, fmt.Errorf("peak sales months: %w", err)
	}

	r.GeneratedAt = time.Now().UTC()
	return r, nil
}

// BuildParallel computes the independent aggregates concurrently against the
// immutable store. The result is identical to Build; each goroutine is a
// pure read writing a distinct report field, with no shared accumulator.
func BuildParallel(ctx context.Context, s *store.Store) (*Report, error) {
	r := &Report{}
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.TransactionCount = aggregate.TransactionCount(s)
		r.UniqueCustomerCount = aggregate.UniqueCustomerCount(s)
		r.TotalQuantity = aggregate.TotalQuantity(s)
		return nil
	})
	g.Go(func() error {
		r.TotalRevenue = aggregate.TotalRevenue(s)
		return nil
	})
	g.Go(func() error {
		r.DistinctCategories = aggregate.DistinctCategories(s)
		r.CategoryCount = len(r.DistinctCategories)
		return nil
	})
	g.Go(func() error {
		avg, err := aggregate.AverageTransactionValue(s)
		if err != nil {
			return fmt.Errorf("average transaction value: %w", err)
		}
		r.AverageTransactionValue = avg
		return nil
	})
	g.Go(func() error {
		min, max, err := aggregate.MinMaxSale(s)
		if err != nil {
			return fmt.Errorf("min/max sale: %w", err)
		}
		r.MinSale, r.MaxSale = min, max
		return nil
	})
	g.Go(func() error {
		avg, err := aggregate.AveragePricePerUnit(s)
		if err != nil {
			return fmt.Errorf("average price per unit: %w", err)
		}
		r.AveragePricePerUnit = avg
		return nil
	})
	g.Go(func() error {
		r.SalesByDate = aggregate.SalesByDate(s)
		return nil
	})
	g.Go(func() error {
		r.SalesByWeekday = aggregate.SalesByWeekday(s)
		return nil
	})
	g.Go(func() error {
		r.SalesByMonth = aggregate.SalesByMonth(s)
		return nil
	})
	g.Go(func() error {
		peaks, err := aggregate.PeakSalesDays(s)
		if err != nil {
			return fmt.Errorf("peak sales days: %w", err)
		}
		r.PeakSalesDays = peaks
		return nil
	})
	g.Go(func() error {
		peaks, err := aggregate.PeakSalesMonths(s)
		if err != nil {
			return fmt.Errorf("peak sales months: %w", err)
		}
		r.PeakSalesMonths = peaks
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	r.GeneratedAt = time.Now().UTC()
	return r, nil
}
