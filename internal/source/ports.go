// Package source provides the data-loading collaborators that hand the
// analytics core its raw records. The core packages never import this one;
// sources produce validate.RawRecord values and nothing else.
package source

import (
	"context"

	"salescope/internal/validate"
)

// RecordSource is the port every loading collaborator implements.
type RecordSource interface {
	// Records returns every raw record of the dataset, in source order.
	Records(ctx context.Context) ([]validate.RawRecord, error)
}
