package vlm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/caption-viewer/internal/core/domain"
)

func TestNew(t *testing.T) {
	nm := New()
	require.NotNil(t, nm)
	assert.Zero(t, nm.maxLength)
	assert.Equal(t, domain.DefaultTruncationMarker, nm.marker)
	assert.Equal(t, DefaultMaxTokenBytes, nm.maxTokenBytes)
}

func TestNewFromSettings(t *testing.T) {
	nm := NewFromSettings(domain.DisplaySettings{MaxLength: 4, TruncationMarker: "~"})
	assert.Equal(t, 4, nm.maxLength)
	assert.Equal(t, "~", nm.marker)

	nm = NewFromSettings(domain.DisplaySettings{})
	assert.Equal(t, domain.DefaultTruncationMarker, nm.marker)
}

func TestProcess(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		kind     domain.ContentKind
	}{
		{"empty", "", "", domain.ContentEmpty},
		{"only script", "<script>x()</script>", "", domain.ContentEmpty},
		{"json", `{"a":1}`, "```json\n{\n  \"a\": 1\n}\n```", domain.ContentJSON},
		{"json after script removal", `<script>x</script>{"a":1}`, "```json\n{\n  \"a\": 1\n}\n```", domain.ContentJSON},
		{"plain text", "A red car.", "A red car.", domain.ContentText},
		{"literal escapes", `one\ntwo`, "one\ntwo", domain.ContentText},
		{
			name:     "table and escapes",
			input:    `Caption:\n<table><tr><th>k</th></tr><tr><td>v</td></tr></table>`,
			expected: "Caption:\n\n\n| k |\n| --- |\n| v |\n\n",
			kind:     domain.ContentText,
		},
		{"json string escapes kept", `{"t":"a\nb"}`, "```json\n{\n  \"t\": \"a\\nb\"\n}\n```", domain.ContentJSON},
	}

	nm := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := nm.Process(tt.input)
			assert.Equal(t, tt.expected, out.Content)
			assert.Equal(t, tt.kind, out.Kind)
		})
	}
}

func TestProcess_Truncation(t *testing.T) {
	nm := New(WithMaxLength(5), WithTruncationMarker("…"))
	assert.Equal(t, "hello…", nm.Process("hello world").Content)
}

func TestProcess_Idempotent(t *testing.T) {
	inputs := []string{
		"A cat sitting on a mat.",
		`first\nsecond`,
		"<b>bold</b> words",
		"<table><tr><th>A</th></tr><tr><td>1</td></tr></table>",
	}

	nm := New()
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			once := nm.Process(input).Content
			assert.Equal(t, once, nm.Process(once).Content)
		})
	}
}

func TestMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		out      domain.FormattedOutput
		expected string
	}{
		{"hard breaks", domain.FormattedOutput{Content: "a\nb", Kind: domain.ContentText}, "a  \nb"},
		{"fenced untouched", domain.FormattedOutput{Content: "```json\n1\n```", Kind: domain.ContentJSON}, "```json\n1\n```"},
		{"empty", domain.FormattedOutput{Kind: domain.ContentEmpty}, ""},
	}

	nm := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Markdown(tt.out))
			assert.Equal(t, tt.expected, nm.Markdown(tt.out))
		})
	}
}
