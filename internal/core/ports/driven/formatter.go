package driven

import "github.com/custodia-labs/caption-viewer/internal/core/domain"

// Formatter converts raw model output into display-safe text.
type Formatter interface {
	// Process runs the full normalisation pipeline on a raw field value.
	Process(text string) domain.FormattedOutput

	// Markdown returns the output with hard line breaks applied,
	// leaving fenced blocks untouched.
	Markdown(out domain.FormattedOutput) string
}
