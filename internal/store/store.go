// Package store holds the validated records of one analysis run.
//
// A Store is built once from validated records and never mutated; every
// aggregation reads the same snapshot for the lifetime of the run.
package store

import (
	"fmt"

	"salescope/internal/core"
)

// DuplicateKeyError reports two records sharing a transaction id at build
// time. The offending build yields no store.
type DuplicateKeyError struct {
	TransactionID int64
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate transaction_id %d", e.TransactionID)
}

// Store is an immutable, insertion-ordered collection of transaction
// records. Safe for concurrent reads.
type Store struct {
	records []core.TransactionRecord
}

// Build constructs a store from validated records, preserving insertion
// order. Fails with *DuplicateKeyError if two records share a
// transaction_id; on failure no store is returned (atomic build).
func Build(records []core.TransactionRecord) (*Store, error) {
	seen := make(map[int64]struct{}, len(records))
	copied := make([]core.TransactionRecord, len(records))
	for i, r := range records {
		if _, ok := seen[r.TransactionID]; ok {
			return nil, &DuplicateKeyError{TransactionID: r.TransactionID}
		}
		seen[r.TransactionID] = struct{}{}
		copied[i] = r
	}
	return &Store{records: copied}, nil
}

// All returns the records in insertion order. The returned slice is a copy;
// callers cannot reach the store's backing array through it.
func (s *Store) All() []core.TransactionRecord {
	out := make([]core.TransactionRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Count returns the number of records in the store.
func (s *Store) Count() int {
	return len(s.records)
}

// Each calls fn for every record in insertion order. Aggregations use this
// to avoid copying the backing slice per pass.
func (s *Store) Each(fn func(core.TransactionRecord)) {
	for _, r := range s.records {
		fn(r)
	}
}
