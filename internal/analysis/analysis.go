// Package analysis orchestrates one analysis run: pull raw records from a
// loading collaborator, validate them, build the store, build the report.
package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"salescope/internal/core"
	"salescope/internal/report"
	"salescope/internal/source"
	"salescope/internal/store"
	"salescope/internal/validate"
)

// Validation propagation modes. Lenient skips invalid records and collects
// their errors into the result; strict fails the run on the first one.
const (
	ModeLenient = "lenient"
	ModeStrict  = "strict"
)

// ReportPublisher notifies downstream consumers that a report is ready.
type ReportPublisher interface {
	PublishReportReady(ctx context.Context, runID string, recordCount int, totalRevenueCents int64) error
}

// RejectedRecord pairs a raw record's position in the source with the
// validation error that kept it out of the store.
type RejectedRecord struct {
	Index int
	Err   error
}

// Result is the outcome of one analysis run.
type Result struct {
	RunID         string
	Report        *report.Report
	RecordCount   int
	RejectedCount int
	Rejected      []RejectedRecord
}

// Service runs analyses against a record source. The zero mode is lenient;
// the publisher is optional.
type Service struct {
	source    source.RecordSource
	publisher ReportPublisher
	mode      string
	parallel  bool
}

func NewService(src source.RecordSource, publisher ReportPublisher, mode string, parallel bool) *Service {
	if mode == "" {
		mode = ModeLenient
	}
	return &Service{
		source:    src,
		publisher: publisher,
		mode:      mode,
		parallel:  parallel,
	}
}

// Run executes one full analysis. Validation errors follow the configured
// mode; store-build and aggregation errors always fail the run.
func (s *Service) Run(ctx context.Context, runID string) (*Result, error) {
	raws, err := s.source.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}

	result := &Result{RunID: runID}
	records := make([]core.TransactionRecord, 0, len(raws))
	for i, raw := range raws {
		record, err := validate.Validate(raw)
		if err != nil {
			if s.mode == ModeStrict {
				return nil, fmt.Errorf("record %d: %w", i, err)
			}
			slog.WarnContext(ctx, "Record rejected",
				"run_id", runID, "index", i, "error", err)
			result.Rejected = append(result.Rejected, RejectedRecord{Index: i, Err: err})
			continue
		}
		records = append(records, record)
	}
	result.RejectedCount = len(result.Rejected)

	st, err := store.Build(records)
	if err != nil {
		return nil, fmt.Errorf("build store: %w", err)
	}
	result.RecordCount = st.Count()

	if s.parallel {
		result.Report, err = report.BuildParallel(ctx, st)
	} else {
		result.Report, err = report.Build(st)
	}
	if err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}

	slog.InfoContext(ctx, "Analysis run complete",
		"run_id", runID,
		"record_count", result.RecordCount,
		"rejected_count", result.RejectedCount,
		"total_revenue_cents", result.Report.TotalRevenue.Cents)

	if err := s.publishReady(ctx, result); err != nil {
		// The report is already built; notification failure is not fatal.
		slog.ErrorContext(ctx, "Failed to publish report-ready message",
			"run_id", runID, "error", err)
	}

	return result, nil
}

func (s *Service) publishReady(ctx context.Context, result *Result) error {
	if s.publisher == nil {
		return nil
	}
	return s.publisher.PublishReportReady(ctx, result.RunID, result.RecordCount, result.Report.TotalRevenue.Cents)
}
