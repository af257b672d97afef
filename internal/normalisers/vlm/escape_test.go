package vlm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveEscapes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"newline", `line1\nline2`, "line1\nline2"},
		{"tab and carriage return", `a\tb\rc`, "a\tb\rc"},
		{"real newlines untouched", "a\nb", "a\nb"},
		{"fenced untouched", "```json\n{\"a\": \"x\\ny\"}\n```", "```json\n{\"a\": \"x\\ny\"}\n```"},
		{"fenced after whitespace", "\n```html\n<p>a\\nb</p>\n```\n", "\n```html\n<p>a\\nb</p>\n```\n"},
		{"fence later in text", "intro\\n```code```", "intro\n```code```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveEscapes(tt.input))
		})
	}
}
