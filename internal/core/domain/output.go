package domain

import "strings"

// FenceMarker opens and closes a fenced block.
const FenceMarker = "```"

// ContentKind classifies a formatted output.
type ContentKind string

// Output kinds produced by the normalisation pipeline.
const (
	// ContentEmpty is produced for empty or null input.
	ContentEmpty ContentKind = "empty"

	// ContentJSON is a fenced, indented JSON block.
	ContentJSON ContentKind = "json"

	// ContentText is sanitised freeform text, possibly with table grids.
	ContentText ContentKind = "text"
)

// FormattedOutput is the display form of a field value after the
// normalisation pipeline has run.
type FormattedOutput struct {
	// Content is the formatted text.
	Content string

	// Kind records which pipeline branch produced the content.
	Kind ContentKind
}

// IsEmpty reports whether there is nothing to display.
func (o FormattedOutput) IsEmpty() bool {
	return o.Content == ""
}

// Fenced reports whether the content is a fenced block that must be
// rendered verbatim.
func (o FormattedOutput) Fenced() bool {
	return IsFenced(o.Content)
}

// String returns the formatted content.
func (o FormattedOutput) String() string {
	return o.Content
}

// IsFenced reports whether text, ignoring surrounding whitespace,
// starts with the fence marker.
func IsFenced(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), FenceMarker)
}
