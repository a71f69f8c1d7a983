// Package sqlite is the database-query loading collaborator: it serves raw
// retail_sales rows to the analytics core. Rows are stored as raw text so
// the validator, not the database, decides what is admissible.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"salescope/internal/validate"

	_ "modernc.org/sqlite"
)

type Source struct {
	db *sql.DB
}

// New opens (creating if needed) the database at dbPath and runs migrations.
func New(dbPath string) (*Source, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Source{db: db}, nil
}

func (s *Source) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Records implements source.RecordSource. NULL cells stay absent from the
// raw record, so the validator reports them as missing fields.
func (s *Source) Records(ctx context.Context) ([]validate.RawRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT transaction_id, sale_date, sale_time, customer_id, gender,
		       age, category, quantity, price_per_unit, cogs, total_sale
		FROM retail_sales
		ORDER BY rowid_key`)
	if err != nil {
		return nil, fmt.Errorf("query retail_sales: %w", err)
	}
	defer rows.Close()

	var out []validate.RawRecord
	for rows.Next() {
		cells := make([]sql.NullString, len(validate.Columns))
		dest := make([]any, len(cells))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan retail_sales row: %w", err)
		}
		raw := make(validate.RawRecord, len(cells))
		for i, cell := range cells {
			if cell.Valid && cell.String != "" {
				raw[validate.Columns[i]] = cell.String
			}
		}
		out = append(out, raw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate retail_sales rows: %w", err)
	}

	slog.DebugContext(ctx, "Loaded raw records from SQLite", "count", len(out))
	return out, nil
}

// Insert stores one raw row. Absent fields become NULL. Used by dataset
// seeding and tests; the analytics core itself never writes.
func (s *Source) Insert(ctx context.Context, raw validate.RawRecord) error {
	args := make([]any, len(validate.Columns))
	for i, col := range validate.Columns {
		if v, ok := raw[col]; ok && v != "" {
			args[i] = v
		} else {
			args[i] = nil
		}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO retail_sales (
			transaction_id, sale_date, sale_time, customer_id, gender,
			age, category, quantity, price_per_unit, cogs, total_sale
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, args...)
	if err != nil {
		return fmt.Errorf("insert retail_sales row: %w", err)
	}
	return nil
}
