package services

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/custodia-labs/caption-viewer/internal/core/domain"
	"github.com/custodia-labs/caption-viewer/internal/core/ports/driven"
	"github.com/custodia-labs/caption-viewer/internal/core/ports/driving"
)

// Ensure CaptionService implements the interface.
var _ driving.CaptionService = (*CaptionService)(nil)

// CaptionService reads, formats and updates caption fields.
type CaptionService struct {
	records   driven.RecordStore
	formatter func() driven.Formatter
}

// NewCaptionService creates a new caption service.
// Formatters are built from the current settings on every call.
func NewCaptionService(
	records driven.RecordStore,
	settings driving.SettingsService,
	newFormatter FormatterFactory,
) *CaptionService {
	return &CaptionService{
		records:   records,
		formatter: formatterFor(settings, newFormatter),
	}
}

// StringFields returns the names of string fields in schema order.
func (s *CaptionService) StringFields(ctx context.Context) ([]string, error) {
	schema, err := s.Fields(ctx)
	if err != nil {
		return nil, err
	}
	return domain.StringFieldNames(schema), nil
}

// Fields returns the full field schema.
func (s *CaptionService) Fields(ctx context.Context) ([]domain.FieldSchema, error) {
	if s.records == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.records.Schema(ctx)
}

// Render reads a record field and runs it through the formatter.
// A missing or null field renders as empty output with Present false.
func (s *CaptionService) Render(ctx context.Context, recordID, field string) (*domain.CaptionView, error) {
	if s.records == nil {
		return nil, domain.ErrNotImplemented
	}
	if field == "" {
		return nil, fmt.Errorf("%w: field is required", domain.ErrInvalidInput)
	}

	rec, err := s.records.GetRecord(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("get record %s: %w", recordID, err)
	}

	raw, present := rec.GetField(field)
	f := s.formatter()
	out := f.Process(raw)

	return &domain.CaptionView{
		RecordID:  recordID,
		Field:     field,
		Raw:       raw,
		Present:   present,
		Output:    out,
		Markdown:  f.Markdown(out),
		CharCount: utf8.RuneCountInString(raw),
	}, nil
}

// Format runs arbitrary text through the formatter.
func (s *CaptionService) Format(text string) domain.FormattedOutput {
	return s.formatter().Process(text)
}

// Markdown applies hard line breaks to a formatted output.
func (s *CaptionService) Markdown(out domain.FormattedOutput) string {
	return s.formatter().Markdown(out)
}

// Update writes a new value to a string field.
// Undeclared fields are declared as string fields.
func (s *CaptionService) Update(ctx context.Context, recordID, field, value string) error {
	if s.records == nil {
		return domain.ErrNotImplemented
	}
	if field == "" {
		return fmt.Errorf("%w: field is required", domain.ErrInvalidInput)
	}

	schema, err := s.records.Schema(ctx)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	declared := false
	for _, f := range schema {
		if f.Name != field {
			continue
		}
		if f.Type != domain.FieldTypeString {
			return fmt.Errorf("%w: %s is %s", domain.ErrFieldNotString, field, f.Type)
		}
		declared = true
		break
	}

	rec, err := s.records.GetRecord(ctx, recordID)
	if err != nil {
		return fmt.Errorf("get record %s: %w", recordID, err)
	}

	if !declared {
		if err := s.records.DeclareField(ctx, domain.FieldSchema{Name: field, Type: domain.FieldTypeString}); err != nil {
			return fmt.Errorf("declare field %q: %w", field, err)
		}
	}

	rec.SetField(field, value)
	if err := s.records.SaveRecord(ctx, rec); err != nil {
		return fmt.Errorf("save record %s: %w", recordID, err)
	}
	return nil
}
