package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/caption-viewer/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/caption-viewer/internal/core/domain"
	"github.com/custodia-labs/caption-viewer/internal/normalisers/vlm"
)

func TestPanels(t *testing.T) {
	panels := Panels()

	require.Len(t, panels, 1)
	assert.Equal(t, domain.PanelDescriptor{
		Name:          "caption_viewer_panel",
		Label:         "Caption Viewer",
		Surfaces:      []string{"modal"},
		AllowMultiple: true,
	}, panels[0])
}

func TestPanelRegistry_Open(t *testing.T) {
	registry := NewPanelRegistry(seedStore(), nil, vlm.Factory)

	a, err := registry.Open(CaptionViewerPanel)
	require.NoError(t, err)
	b, err := registry.Open(CaptionViewerPanel)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID(), b.ID())
}

func TestPanelRegistry_Open_Unknown(t *testing.T) {
	registry := NewPanelRegistry(seedStore(), nil, vlm.Factory)

	_, err := registry.Open("histogram_panel")
	assert.ErrorIs(t, err, domain.ErrUnknownPanel)
}

func TestPanelRegistry_Open_SingleInstance(t *testing.T) {
	registry := NewPanelRegistry(seedStore(), nil, vlm.Factory)
	registry.descriptors = append(registry.descriptors, domain.PanelDescriptor{
		Name:  "single",
		Label: "Single",
	})

	a, err := registry.Open("single")
	require.NoError(t, err)
	b, err := registry.Open("single")
	require.NoError(t, err)

	assert.Same(t, a, b)
}

func TestPanelRegistry_Open_DefaultField(t *testing.T) {
	config := memory.NewConfigStore()
	settings := NewSettingsService(config)
	require.NoError(t, settings.SetDefaultField("caption"))

	registry := NewPanelRegistry(seedStore(), settings, vlm.Factory)
	p, err := registry.Open(CaptionViewerPanel)
	require.NoError(t, err)

	ctx := context.Background()
	assert.Equal(t, "caption", p.Session().SelectedField)
	assert.Equal(t, "Caption Viewer: caption", p.Session().Title)

	p.ChangeRecord(ctx, "rec-1")
	assert.Equal(t, `A cat\non a mat`, p.Session().DisplayText)
}

func TestPanelRegistry_SettingsReload(t *testing.T) {
	config := memory.NewConfigStore()
	settings := NewSettingsService(config)
	registry := NewPanelRegistry(seedStore(), settings, vlm.Factory)

	p, err := registry.Open(CaptionViewerPanel)
	require.NoError(t, err)
	ctx := context.Background()
	p.ChangeRecord(ctx, "rec-1")
	p.SelectField(ctx, "caption")

	require.NoError(t, settings.SetMaxLength(5))
	require.NoError(t, settings.SetTruncationMarker("~"))

	content, ok := p.Render(ctx).Find("content")
	require.True(t, ok)
	assert.Equal(t, "\n\nA cat~", content.Value)
}

func TestPanelRegistry_Descriptors(t *testing.T) {
	registry := NewPanelRegistry(nil, nil, vlm.Factory)

	descriptors := registry.Descriptors()
	descriptors[0].Name = "mutated"

	assert.Equal(t, CaptionViewerPanel, registry.Descriptors()[0].Name)
}
