package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"salescope/internal/validate"
)

// CSVSource reads raw records from a header-driven CSV file. Unknown columns
// are ignored; a cell left empty simply stays absent from the RawRecord, so
// the validator reports it as missing.
type CSVSource struct {
	path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

func (c *CSVSource) Records(ctx context.Context) ([]validate.RawRecord, error) {
	f, err := os.Open(c.path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // rows may be ragged; validation decides

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	var out []validate.RawRecord
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		raw := make(validate.RawRecord, len(header))
		for i, cell := range row {
			if i >= len(header) {
				break
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			raw[header[i]] = cell
		}
		out = append(out, raw)
	}
	return out, nil
}
