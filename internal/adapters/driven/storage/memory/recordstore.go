package memory

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/caption-viewer/internal/core/domain"
	"github.com/custodia-labs/caption-viewer/internal/core/ports/driven"
)

// Ensure RecordStore implements the interface.
var _ driven.RecordStore = (*RecordStore)(nil)

// RecordStore is an in-memory implementation of driven.RecordStore.
// Records and fields keep their insertion order.
type RecordStore struct {
	mu      sync.RWMutex
	records map[string]*domain.Record
	order   []string
	schema  []domain.FieldSchema
}

// NewRecordStore creates a new in-memory record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{
		records: make(map[string]*domain.Record),
	}
}

// Schema returns the declared fields in declaration order.
func (s *RecordStore) Schema(_ context.Context) ([]domain.FieldSchema, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	schema := make([]domain.FieldSchema, len(s.schema))
	copy(schema, s.schema)
	return schema, nil
}

// DeclareField adds a field to the schema or updates its type.
func (s *RecordStore) DeclareField(_ context.Context, field domain.FieldSchema) error {
	if field.Name == "" || !field.Type.IsValid() {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.schema {
		if s.schema[i].Name == field.Name {
			s.schema[i].Type = field.Type
			return nil
		}
	}
	s.schema = append(s.schema, field)
	return nil
}

// GetRecord retrieves a record by ID.
func (s *RecordStore) GetRecord(_ context.Context, id string) (*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return rec.Clone(), nil
}

// SaveRecord stores or updates a record.
func (s *RecordStore) SaveRecord(_ context.Context, record *domain.Record) error {
	if record == nil || record.ID == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	rec := record.Clone()
	if existing, ok := s.records[rec.ID]; ok {
		rec.CreatedAt = existing.CreatedAt
	} else {
		s.order = append(s.order, rec.ID)
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = now
		}
	}
	rec.UpdatedAt = now
	s.records[rec.ID] = rec
	return nil
}

// ListRecords returns all records in insertion order.
func (s *RecordStore) ListRecords(_ context.Context) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]domain.Record, 0, len(s.order))
	for _, id := range s.order {
		records = append(records, *s.records[id].Clone())
	}
	return records, nil
}

// DeleteRecord removes a record.
func (s *RecordStore) DeleteRecord(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.records, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
