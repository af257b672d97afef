package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderStyle_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		style    RenderStyle
		expected bool
	}{
		{"auto is valid", RenderStyleAuto, true},
		{"dark is valid", RenderStyleDark, true},
		{"light is valid", RenderStyleLight, true},
		{"notty is valid", RenderStyleNoTTY, true},
		{"empty is invalid", RenderStyle(""), false},
		{"unknown is invalid", RenderStyle("dracula-ish"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.style.IsValid())
		})
	}
}

func TestAllRenderStyles(t *testing.T) {
	styles := AllRenderStyles()
	assert.Len(t, styles, 4)
	for _, s := range styles {
		assert.True(t, s.IsValid())
	}
}

func TestDefaultDisplaySettings(t *testing.T) {
	d := DefaultDisplaySettings()
	assert.Zero(t, d.MaxLength)
	assert.Equal(t, DefaultTruncationMarker, d.TruncationMarker)
	assert.Empty(t, d.DefaultField)
	assert.Equal(t, RenderStyleAuto, d.Style)
}
