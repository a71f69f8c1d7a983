package main

import (
	"context"
	"os"
	"time"

	"salescope/internal/amqp"
	"salescope/internal/analysis"
	"salescope/internal/cli"
	"salescope/internal/export/sheets"
	"salescope/internal/log"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger().WithComponent(log.ComponentWorker)

	logger.Info("Starting salescope-worker")

	cfg := cli.LoadAndValidateConfig(logger)

	src, closeSource := cli.BuildSource(logger, cfg)
	defer closeSource()

	// The worker is driven by broker messages, so AMQP is mandatory here.
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the worker")
		os.Exit(1)
	}
	amqpClient := cli.InitAMQP(logger, cfg)
	defer amqpClient.Close()

	// Sheets export is optional; without a spreadsheet ID reports are only
	// published back on the broker.
	var exporter *sheets.Exporter
	if cfg.GoogleSpreadsheetID != "" {
		var err error
		exporter, err = sheets.NewFromEnv(context.Background())
		if err != nil {
			logger.Error("Failed to initialize Google Sheets exporter", log.FieldError, err.Error())
			os.Exit(1)
		}
		logger.Info("Google Sheets exporter initialized", "spreadsheet_id", cfg.GoogleSpreadsheetID)
	} else {
		logger.Info("Google Sheets export disabled - no GOOGLE_SPREADSHEET_ID provided")
	}

	svc := analysis.NewService(src, amqpClient, cfg.ValidationMode, cfg.ReportParallel)

	ctx, cancel := cli.NotifyShutdown(context.Background())
	defer cancel()

	handler := func(msg *amqp.AnalysisRequestMessage) error {
		runLogger := logger.With(log.FieldRunID, msg.RunID)
		runLogger.Info("Analysis request received", "requested_at", msg.RequestedAt)

		result, err := svc.Run(ctx, msg.RunID)
		if err != nil {
			runLogger.Error("Analysis run failed", log.FieldError, err.Error())
			return err
		}

		if exporter != nil {
			if err := exporter.Export(ctx, msg.RunID, result.Report); err != nil {
				// The report was built and published; export retries on the
				// next request.
				runLogger.Error("Sheets export failed", log.FieldError, err.Error())
			} else {
				runLogger.Info("Report exported to Google Sheets")
			}
		}

		runLogger.Info("Analysis request handled",
			log.FieldRecordCount, result.RecordCount,
			log.FieldRejectedCount, result.RejectedCount)
		return nil
	}

	consumeErr := make(chan error, 1)
	go func() {
		consumeErr <- amqpClient.ConsumeAnalysisRequests(ctx, handler)
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-consumeErr:
		if err != nil && err != context.Canceled {
			logger.Error("Message consumption failed", log.FieldError, err.Error())
			cancel()
			os.Exit(1)
		}
	}

	cancel()

	// Give the consumer time to finish the in-flight request.
	select {
	case <-consumeErr:
	case <-time.After(5 * time.Second):
		logger.Warn("Shutdown timeout reached")
	}
	logger.Info("Worker shutdown complete")
}
