package services

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/segmentio/encoding/json"

	"github.com/custodia-labs/caption-viewer/internal/core/domain"
	"github.com/custodia-labs/caption-viewer/internal/core/ports/driven"
	"github.com/custodia-labs/caption-viewer/internal/core/ports/driving"
	"github.com/custodia-labs/caption-viewer/internal/logger"
)

// Ensure RecordService implements the interface.
var _ driving.RecordService = (*RecordService)(nil)

// idKey is the JSON Lines member used as the record ID.
const idKey = "id"

// maxImportLine bounds a single JSON Lines record.
const maxImportLine = 16 << 20

// RecordService manages the record collection.
type RecordService struct {
	records driven.RecordStore
}

// NewRecordService creates a new record service.
func NewRecordService(records driven.RecordStore) *RecordService {
	return &RecordService{records: records}
}

// List returns all records.
func (s *RecordService) List(ctx context.Context) ([]domain.Record, error) {
	if s.records == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.records.ListRecords(ctx)
}

// Get retrieves a record by ID.
func (s *RecordService) Get(ctx context.Context, id string) (*domain.Record, error) {
	if s.records == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.records.GetRecord(ctx, id)
}

// Delete removes a record.
func (s *RecordService) Delete(ctx context.Context, id string) error {
	if s.records == nil {
		return domain.ErrNotImplemented
	}
	return s.records.DeleteRecord(ctx, id)
}

// Import reads one JSON object per line and stores each as a record.
// A string "id" member becomes the record ID; records without one get a
// generated ID. Field types are inferred from the values and declared, in
// name order, the first time a field is seen. Blank lines are skipped. Import stops at the
// first invalid line and reports how many records were stored before it.
func (s *RecordService) Import(ctx context.Context, r io.Reader) (int, error) {
	if s.records == nil {
		return 0, domain.ErrNotImplemented
	}

	schema, err := s.records.Schema(ctx)
	if err != nil {
		return 0, fmt.Errorf("read schema: %w", err)
	}
	declared := make(map[string]bool, len(schema))
	for _, f := range schema {
		declared[f.Name] = true
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxImportLine)

	imported := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return imported, err
		}

		var fields map[string]any
		if err := json.Unmarshal([]byte(line), &fields); err != nil {
			return imported, fmt.Errorf("line %d: %w: %v", lineNo, domain.ErrInvalidInput, err)
		}
		if fields == nil {
			return imported, fmt.Errorf("line %d: %w: expected an object", lineNo, domain.ErrInvalidInput)
		}

		rec := domain.NewRecord(recordID(fields))
		for _, name := range slices.Sorted(maps.Keys(fields)) {
			value := fields[name]
			rec.SetField(name, value)
			if declared[name] {
				continue
			}
			ft, ok := domain.InferFieldType(value)
			if !ok {
				continue
			}
			if err := s.records.DeclareField(ctx, domain.FieldSchema{Name: name, Type: ft}); err != nil {
				return imported, fmt.Errorf("declare field %q: %w", name, err)
			}
			declared[name] = true
			logger.Debug("declared field %s (%s)", name, ft)
		}

		if err := s.records.SaveRecord(ctx, rec); err != nil {
			return imported, fmt.Errorf("save record %s: %w", rec.ID, err)
		}
		imported++
	}
	if err := scanner.Err(); err != nil {
		return imported, fmt.Errorf("read records: %w", err)
	}

	logger.Info("imported %d records", imported)
	return imported, nil
}

// recordID removes the id member from fields and returns it,
// generating a new ID when there is none.
func recordID(fields map[string]any) string {
	if raw, ok := fields[idKey]; ok {
		delete(fields, idKey)
		if id, ok := raw.(string); ok && id != "" {
			return id
		}
	}
	return uuid.New().String()
}
