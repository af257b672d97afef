package records

import (
	"context"
	"errors"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/caption-viewer/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/caption-viewer/internal/core/domain"
)

type mockRecordService struct {
	records []domain.Record
	err     error
}

func (m *mockRecordService) List(_ context.Context) ([]domain.Record, error) {
	return m.records, m.err
}

func (m *mockRecordService) Get(_ context.Context, _ string) (*domain.Record, error) {
	return nil, domain.ErrNotFound
}

func (m *mockRecordService) Delete(_ context.Context, _ string) error { return nil }

func (m *mockRecordService) Import(_ context.Context, _ io.Reader) (int, error) { return 0, nil }

func sampleRecords() []domain.Record {
	a := domain.NewRecord("rec-1")
	a.SetField("caption", "A cat")
	b := domain.NewRecord("rec-2")
	b.SetField("caption", "A dog")
	return []domain.Record{*a, *b}
}

func loaded(t *testing.T, svc *mockRecordService) *View {
	t.Helper()
	v := NewView(nil, nil, svc)
	cmd := v.Init()
	require.NotNil(t, cmd)
	v, _ = v.Update(cmd())
	return v
}

func TestView_LoadsRecords(t *testing.T) {
	v := loaded(t, &mockRecordService{records: sampleRecords()})
	v.SetPreviewField("caption")

	assert.NoError(t, v.Err())
	assert.Len(t, v.Records(), 2)
	out := v.View()
	assert.Contains(t, out, "rec-1")
	assert.Contains(t, out, "A dog")
}

func TestView_LoadError(t *testing.T) {
	v := loaded(t, &mockRecordService{err: errors.New("db locked")})

	assert.ErrorContains(t, v.Err(), "db locked")
	assert.Contains(t, v.View(), "Error: db locked")
}

func TestView_NilService(t *testing.T) {
	v := NewView(nil, nil, nil)

	msg := v.Init()()

	loadedMsg, ok := msg.(messages.RecordsLoaded)
	require.True(t, ok)
	assert.ErrorIs(t, loadedMsg.Err, ErrNoRecordService)
}

func TestView_SelectEmitsRecordSelected(t *testing.T) {
	v := loaded(t, &mockRecordService{records: sampleRecords()})

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.RecordSelected{Index: 1}, cmd())
}

func TestView_SelectOnEmptyList(t *testing.T) {
	v := loaded(t, &mockRecordService{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestView_QuitAndHelp(t *testing.T) {
	v := loaded(t, &mockRecordService{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, messages.Quit{}, cmd())

	_, cmd = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewHelp}, cmd())
}
