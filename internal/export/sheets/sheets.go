// Package sheets exports a finished report snapshot to a Google Sheets tab.
// It is a worker-side presentation collaborator; the analytics core never
// touches it.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"salescope/internal/report"
)

type Exporter struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
}

// NewFromEnv creates an Exporter using environment variables.
// Required: GOOGLE_SPREADSHEET_ID. Credentials come from
// GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or
// GOOGLE_APPLICATION_CREDENTIALS. GOOGLE_REPORT_SHEET_NAME defaults to
// "Report".
func NewFromEnv(ctx context.Context) (*Exporter, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}

	sheetName := strings.TrimSpace(os.Getenv("GOOGLE_REPORT_SHEET_NAME"))
	if sheetName == "" {
		sheetName = "Report"
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Exporter{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return service, nil
}

// Export replaces the report tab's contents with a snapshot of r.
func (e *Exporter) Export(ctx context.Context, runID string, r *report.Report) error {
	if e.svc == nil {
		return errors.New("sheets service not initialized")
	}

	rng := fmt.Sprintf("%s!A:Z", e.sheetName)
	if _, err := e.svc.Spreadsheets.Values.Clear(e.spreadsheetID, rng, &gsheet.ClearValuesRequest{}).
		Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear sheet %s: %w", e.sheetName, err)
	}

	rows := rowsForReport(runID, r)
	vr := &gsheet.ValueRange{Values: rows}
	writeRange := fmt.Sprintf("%s!A1", e.sheetName)
	if _, err := e.svc.Spreadsheets.Values.Update(e.spreadsheetID, writeRange, vr).
		ValueInputOption("USER_ENTERED").Context(ctx).Do(); err != nil {
		return fmt.Errorf("update sheet %s: %w", e.sheetName, err)
	}

	slog.InfoContext(ctx, "Report exported to Google Sheets",
		"run_id", runID,
		"sheet", e.sheetName,
		"rows", len(rows))
	return nil
}

// rowsForReport flattens a report into spreadsheet rows: a summary block,
// then the month breakdown, then the peak lookups.
func rowsForReport(runID string, r *report.Report) [][]any {
	rows := [][]any{
		{"Run", runID, "Generated", r.GeneratedAt.Format("2006-01-02 15:04:05")},
		{},
		{"Metric", "Value"},
		{"Transactions", r.TransactionCount},
		{"Unique customers", r.UniqueCustomerCount},
		{"Total revenue", r.TotalRevenue.Dollars()},
		{"Average transaction value", r.AverageTransactionValue.Dollars()},
		{"Min sale", r.MinSale.Dollars()},
		{"Max sale", r.MaxSale.Dollars()},
		{"Average price per unit", r.AveragePricePerUnit.Dollars()},
		{"Total quantity", r.TotalQuantity},
		{"Categories", strings.Join(r.DistinctCategories, ", ")},
		{},
		{"Month", "Revenue"},
	}
	for _, mt := range r.SalesByMonth {
		rows = append(rows, []any{mt.Month, mt.Total.Dollars()})
	}
	rows = append(rows, []any{}, []any{"Peak day(s)", "Revenue"})
	for _, dt := range r.PeakSalesDays {
		rows = append(rows, []any{dt.Date.String(), dt.Total.Dollars()})
	}
	rows = append(rows, []any{}, []any{"Peak month(s)", "Revenue"})
	for _, mt := range r.PeakSalesMonths {
		rows = append(rows, []any{mt.Month, mt.Total.Dollars()})
	}
	return rows
}
