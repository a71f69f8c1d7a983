package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"salescope/internal/analysis"
	"salescope/internal/cli"
	"salescope/internal/log"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger().WithComponent(log.ComponentApp)

	cfg := cli.LoadAndValidateConfig(logger)

	src, closeSource := cli.BuildSource(logger, cfg)
	defer closeSource()

	amqpClient := cli.InitAMQP(logger, cfg)
	if amqpClient != nil {
		defer amqpClient.Close()
	}

	ctx, cancel := cli.NotifyShutdown(context.Background())
	defer cancel()

	var publisher analysis.ReportPublisher
	if amqpClient != nil {
		publisher = amqpClient
	}
	svc := analysis.NewService(src, publisher, cfg.ValidationMode, cfg.ReportParallel)

	runID := fmt.Sprintf("run-%d", time.Now().Unix())
	logger.Info("Starting analysis run",
		log.FieldRunID, runID,
		"data_source", cfg.DataSource,
		"validation_mode", cfg.ValidationMode)

	result, err := svc.Run(ctx, runID)
	if err != nil {
		logger.Error("Analysis run failed", log.FieldError, err.Error(), log.FieldRunID, runID)
		os.Exit(1)
	}

	body, err := json.MarshalIndent(result.Report, "", "  ")
	if err != nil {
		logger.Error("Failed to encode report", log.FieldError, err.Error(), log.FieldRunID, runID)
		os.Exit(1)
	}

	if cfg.ReportOutPath == "-" || cfg.ReportOutPath == "" {
		fmt.Println(string(body))
	} else {
		if err := os.WriteFile(cfg.ReportOutPath, append(body, '\n'), 0o644); err != nil {
			logger.Error("Failed to write report file",
				log.FieldError, err.Error(), "out_path", cfg.ReportOutPath)
			os.Exit(1)
		}
		logger.Info("Report written", "out_path", cfg.ReportOutPath, log.FieldRunID, runID)
	}

	logger.Info("Analysis run complete",
		log.FieldRunID, runID,
		log.FieldRecordCount, result.RecordCount,
		log.FieldRejectedCount, result.RejectedCount)
}
