// Package cli provides common initialization shared by the salescope
// binaries.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"salescope/internal/amqp"
	"salescope/internal/config"
	"salescope/internal/log"
	"salescope/internal/source"
	"salescope/internal/source/sqlite"
)

// SetupLogger initializes structured logging and installs it as the process
// default.
func SetupLogger() *log.Logger {
	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err.Error())
		os.Exit(1)
	}
	return cfg
}

// BuildSource constructs the configured record source. The returned closer
// is a no-op for sources without an underlying connection.
func BuildSource(logger *log.Logger, cfg *config.Config) (source.RecordSource, func() error) {
	switch cfg.DataSource {
	case "sqlite":
		src, err := sqlite.New(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to open SQLite source",
				log.FieldError, err.Error(), "db_path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		logger.Info("Initialized SQLite source", "db_path", cfg.SQLiteDBPath)
		return src, src.Close
	case "memory":
		logger.Info("Initialized memory source")
		return source.NewMemorySource(nil), func() error { return nil }
	default:
		logger.Info("Initialized CSV source", "csv_path", cfg.CSVPath)
		return source.NewCSVSource(cfg.CSVPath), func() error { return nil }
	}
}

// InitAMQP connects to the broker when an URL is configured. Returns nil
// when messaging is disabled; callers treat a nil client as "skip publish".
func InitAMQP(logger *log.Logger, cfg *config.Config) *amqp.Client {
	if cfg.AMQPURL == "" {
		logger.Info("AMQP disabled, no URL configured")
		return nil
	}
	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to connect to AMQP broker",
			log.FieldError, err.Error(), log.FieldExchange, cfg.AMQPExchange)
		os.Exit(1)
	}
	logger.Info("Connected to AMQP broker",
		log.FieldExchange, cfg.AMQPExchange, log.FieldQueue, cfg.AMQPQueue)
	return client
}

// NotifyShutdown returns a context cancelled on SIGINT or SIGTERM.
func NotifyShutdown(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
