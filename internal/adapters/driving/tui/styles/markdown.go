package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/custodia-labs/caption-viewer/internal/core/domain"
)

// minWrap keeps glamour from wrapping every word on tiny terminals.
const minWrap = 20

// MarkdownRenderer renders panel markdown for the terminal.
type MarkdownRenderer struct {
	style    domain.RenderStyle
	width    int
	renderer *glamour.TermRenderer
}

// NewMarkdownRenderer creates a renderer for the given style and wrap width.
func NewMarkdownRenderer(style domain.RenderStyle, width int) (*MarkdownRenderer, error) {
	if !style.IsValid() {
		style = domain.RenderStyleAuto
	}
	if width < minWrap {
		width = minWrap
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == domain.RenderStyleAuto {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style.String()))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}
	return &MarkdownRenderer{style: style, width: width, renderer: r}, nil
}

// Style returns the render style.
func (m *MarkdownRenderer) Style() domain.RenderStyle {
	return m.style
}

// Width returns the wrap width.
func (m *MarkdownRenderer) Width() int {
	return m.width
}

// Render converts markdown to styled terminal output.
// Falls back to the source text when glamour fails.
func (m *MarkdownRenderer) Render(md string) string {
	out, err := m.renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

// RenderMarkdown is a one-shot helper for callers that render once.
func RenderMarkdown(md string, style domain.RenderStyle, width int) (string, error) {
	r, err := NewMarkdownRenderer(style, width)
	if err != nil {
		return "", err
	}
	return r.Render(md), nil
}
