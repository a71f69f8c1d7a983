package source

import (
	"context"
	"sync"

	"salescope/internal/validate"
)

// MemorySource serves a fixed slice of raw records. Used by tests and as
// the wiring default when no file or database is configured.
type MemorySource struct {
	mu      sync.Mutex
	records []validate.RawRecord
}

func NewMemorySource(records []validate.RawRecord) *MemorySource {
	copied := make([]validate.RawRecord, len(records))
	copy(copied, records)
	return &MemorySource{records: copied}
}

func (m *MemorySource) Records(_ context.Context) ([]validate.RawRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]validate.RawRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}
