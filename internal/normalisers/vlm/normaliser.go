package vlm

import (
	"strings"

	"github.com/custodia-labs/caption-viewer/internal/core/domain"
	"github.com/custodia-labs/caption-viewer/internal/core/ports/driven"
	"github.com/custodia-labs/caption-viewer/internal/logger"
)

// Ensure Normaliser implements the interface.
var _ driven.Formatter = (*Normaliser)(nil)

// Normaliser runs the display pipeline with a fixed configuration.
// A Normaliser holds no mutable state and is safe for concurrent use.
type Normaliser struct {
	maxLength     int
	marker        string
	maxTokenBytes int
}

// Option configures the normaliser.
type Option func(*Normaliser)

// WithMaxLength truncates input longer than n runes. Zero disables it.
func WithMaxLength(n int) Option {
	return func(nm *Normaliser) {
		if n >= 0 {
			nm.maxLength = n
		}
	}
}

// WithTruncationMarker sets the text appended to truncated input.
func WithTruncationMarker(marker string) Option {
	return func(nm *Normaliser) {
		nm.marker = marker
	}
}

// WithMaxTokenBytes bounds a single markup token inside a table span.
func WithMaxTokenBytes(n int) Option {
	return func(nm *Normaliser) {
		if n > 0 {
			nm.maxTokenBytes = n
		}
	}
}

// New creates a normaliser with the given options.
func New(opts ...Option) *Normaliser {
	nm := &Normaliser{
		marker:        domain.DefaultTruncationMarker,
		maxTokenBytes: DefaultMaxTokenBytes,
	}
	for _, opt := range opts {
		opt(nm)
	}
	return nm
}

// NewFromSettings creates a normaliser from display settings.
func NewFromSettings(s domain.DisplaySettings) *Normaliser {
	opts := []Option{WithMaxLength(s.MaxLength)}
	if s.TruncationMarker != "" {
		opts = append(opts, WithTruncationMarker(s.TruncationMarker))
	}
	return New(opts...)
}

// Process converts a raw field value into display output.
func (nm *Normaliser) Process(text string) domain.FormattedOutput {
	if text == "" {
		return domain.FormattedOutput{Kind: domain.ContentEmpty}
	}

	logger.Section("Normalise")

	sanitized := sanitize(text, nm.maxLength, nm.marker)
	logger.Stage("sanitize", len(text), len(sanitized))
	if sanitized == "" {
		return domain.FormattedOutput{Kind: domain.ContentEmpty}
	}

	if formatted, ok := FormatJSON(sanitized); ok {
		logger.Stage("json", len(sanitized), len(formatted))
		return domain.FormattedOutput{Content: formatted, Kind: domain.ContentJSON}
	}

	tables := convertTables(sanitized, nm.maxTokenBytes)
	logger.Stage("tables", len(sanitized), len(tables))

	resolved := ResolveEscapes(tables)
	logger.Stage("escapes", len(tables), len(resolved))

	return domain.FormattedOutput{Content: resolved, Kind: domain.ContentText}
}

// Markdown applies hard line breaks to out.
func (nm *Normaliser) Markdown(out domain.FormattedOutput) string {
	return Markdown(out)
}

// Markdown returns out with every newline turned into a hard line break.
// Fenced output is returned unchanged.
func Markdown(out domain.FormattedOutput) string {
	if out.Fenced() {
		return out.Content
	}
	return strings.ReplaceAll(out.Content, "\n", "  \n")
}

// Factory builds a normaliser for the given settings as a driven.Formatter.
func Factory(s domain.DisplaySettings) driven.Formatter {
	return NewFromSettings(s)
}
