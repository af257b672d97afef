package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/caption-viewer/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/caption-viewer/internal/core/domain"
	"github.com/custodia-labs/caption-viewer/internal/core/services"
	"github.com/custodia-labs/caption-viewer/internal/normalisers/vlm"
)

// mockCaptionService is a driving.CaptionService whose calls all fail with err.
type mockCaptionService struct {
	err error
}

func (m *mockCaptionService) StringFields(_ context.Context) ([]string, error) {
	return nil, m.err
}

func (m *mockCaptionService) Fields(_ context.Context) ([]domain.FieldSchema, error) {
	return nil, m.err
}

func (m *mockCaptionService) Render(_ context.Context, _, _ string) (*domain.CaptionView, error) {
	return nil, m.err
}

func (m *mockCaptionService) Format(text string) domain.FormattedOutput {
	return domain.FormattedOutput{Kind: domain.ContentText, Content: text}
}

func (m *mockCaptionService) Markdown(out domain.FormattedOutput) string {
	return out.String()
}

func (m *mockCaptionService) Update(_ context.Context, _, _, _ string) error {
	return m.err
}

// testPorts wires real services over an in-memory store holding two records.
func testPorts(t *testing.T) *Ports {
	t.Helper()

	ctx := context.Background()
	store := memory.NewRecordStore()
	require.NoError(t, store.DeclareField(ctx, domain.FieldSchema{Name: "caption", Type: domain.FieldTypeString}))
	require.NoError(t, store.DeclareField(ctx, domain.FieldSchema{Name: "vlm_output", Type: domain.FieldTypeString}))
	require.NoError(t, store.DeclareField(ctx, domain.FieldSchema{Name: "width", Type: domain.FieldTypeInt}))

	first := domain.NewRecord("rec-1")
	first.SetField("caption", "A cat")
	first.SetField("vlm_output", `{"label":"cat"}`)
	first.SetField("width", 640)
	require.NoError(t, store.SaveRecord(ctx, first))

	second := domain.NewRecord("rec-2")
	second.SetField("caption", nil)
	require.NoError(t, store.SaveRecord(ctx, second))

	settings := services.NewSettingsService(memory.NewConfigStore())

	return &Ports{
		Caption:  services.NewCaptionService(store, settings, vlm.Factory),
		Records:  services.NewRecordService(store),
		Settings: settings,
	}
}

func testServer(t *testing.T) *Server {
	t.Helper()

	server, err := NewServer(testPorts(t))
	require.NoError(t, err)
	return server
}
