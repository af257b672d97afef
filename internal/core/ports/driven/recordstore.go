package driven

import (
	"context"

	"github.com/custodia-labs/caption-viewer/internal/core/domain"
)

// RecordStore persists records and the declared field schema.
// Implementations return domain.ErrNotFound for unknown record IDs.
type RecordStore interface {
	// Schema returns the declared fields in declaration order.
	Schema(ctx context.Context) ([]domain.FieldSchema, error)

	// DeclareField adds a field to the schema.
	// Declaring an existing field updates its type and keeps its position.
	DeclareField(ctx context.Context, field domain.FieldSchema) error

	// GetRecord retrieves a record by ID.
	GetRecord(ctx context.Context, id string) (*domain.Record, error)

	// SaveRecord stores or updates a record.
	SaveRecord(ctx context.Context, record *domain.Record) error

	// ListRecords returns all records in insertion order.
	ListRecords(ctx context.Context) ([]domain.Record, error)

	// DeleteRecord removes a record.
	DeleteRecord(ctx context.Context, id string) error
}
