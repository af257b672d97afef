package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/caption-viewer/internal/core/domain"
)

// RecordService manages the record collection.
type RecordService interface {
	// List returns all records.
	List(ctx context.Context) ([]domain.Record, error)

	// Get retrieves a record by ID.
	Get(ctx context.Context, id string) (*domain.Record, error)

	// Delete removes a record.
	Delete(ctx context.Context, id string) error

	// Import reads JSON Lines records from r and stores them.
	// Returns the number of records imported.
	Import(ctx context.Context, r io.Reader) (int, error)
}
