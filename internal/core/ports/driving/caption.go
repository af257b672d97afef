package driving

import (
	"context"

	"github.com/custodia-labs/caption-viewer/internal/core/domain"
)

// CaptionService reads, formats and updates caption fields outside a panel.
type CaptionService interface {
	// StringFields returns the names of string fields in schema order.
	StringFields(ctx context.Context) ([]string, error)

	// Fields returns the full field schema.
	Fields(ctx context.Context) ([]domain.FieldSchema, error)

	// Render reads a record field and runs it through the formatter.
	Render(ctx context.Context, recordID, field string) (*domain.CaptionView, error)

	// Format runs arbitrary text through the formatter.
	Format(text string) domain.FormattedOutput

	// Markdown applies hard line breaks to a formatted output.
	Markdown(out domain.FormattedOutput) string

	// Update writes a new value to a string field.
	Update(ctx context.Context, recordID, field, value string) error
}
