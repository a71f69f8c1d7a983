package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	// Dataset source
	DataSource   string // csv | sqlite | memory
	CSVPath      string
	SQLiteDBPath string

	// Validation
	ValidationMode string // lenient | strict

	// Reporting
	ReportParallel bool
	ReportOutPath  string // "-" writes JSON to stdout

	// AMQP (optional; empty URL disables messaging)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Google Sheets export (worker only; empty ID disables export)
	GoogleSpreadsheetID   string
	GoogleReportSheetName string
}

func Load() *Config {
	return &Config{
		DataSource:   getEnv("DATA_SOURCE", "csv"),
		CSVPath:      getEnv("CSV_PATH", "./data/retail_sales.csv"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/salescope.db"),

		ValidationMode: getEnv("VALIDATION_MODE", "lenient"),

		ReportParallel: getEnvBool("REPORT_PARALLEL", false),
		ReportOutPath:  getEnv("REPORT_OUT_PATH", "-"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "salescope"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "analysis_requests"),

		GoogleSpreadsheetID:   getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleReportSheetName: getEnv("GOOGLE_REPORT_SHEET_NAME", "Report"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	switch c.DataSource {
	case "csv", "sqlite", "memory":
	default:
		errors = append(errors, fmt.Sprintf("invalid data source '%s': must be one of [csv sqlite memory]", c.DataSource))
	}

	switch c.ValidationMode {
	case "lenient", "strict":
	default:
		errors = append(errors, fmt.Sprintf("invalid validation mode '%s': must be 'lenient' or 'strict'", c.ValidationMode))
	}

	if c.DataSource == "csv" && c.CSVPath == "" {
		errors = append(errors, "CSV path cannot be empty when using csv source")
	}

	if c.DataSource == "sqlite" {
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite source")
		} else if dir := filepath.Dir(c.SQLiteDBPath); dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
				}
			}
		}
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	default:
		return defaultValue
	}
}
