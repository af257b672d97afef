package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/caption-viewer/internal/core/domain"
)

func testRecords() []domain.Record {
	a := domain.NewRecord("rec-1")
	a.SetField("caption", "A cat\non a mat")
	b := domain.NewRecord("rec-2")
	b.SetField("caption", nil)
	c := domain.NewRecord("rec-3")
	c.SetField("caption", "A dog")
	return []domain.Record{*a, *b, *c}
}

func TestNewRecordList(t *testing.T) {
	l := NewRecordList(nil)

	require.NotNil(t, l)
	assert.True(t, l.IsEmpty())
	assert.Nil(t, l.SelectedRecord())
	assert.Contains(t, l.View(), "No records")
}

func TestRecordList_Navigation(t *testing.T) {
	l := NewRecordList(nil)
	l.SetRecords(testRecords())

	tests := []struct {
		key      tea.KeyMsg
		expected int
	}{
		{tea.KeyMsg{Type: tea.KeyDown}, 1},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, 2},
		{tea.KeyMsg{Type: tea.KeyDown}, 2},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, 1},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}}, 0},
		{tea.KeyMsg{Type: tea.KeyUp}, 0},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}}, 2},
	}

	for _, tt := range tests {
		l, _ = l.Update(tt.key)
		assert.Equal(t, tt.expected, l.Selected(), "after %s", tt.key.String())
	}
	assert.Equal(t, "rec-3", l.SelectedRecord().ID)
}

func TestRecordList_SetRecordsClampsSelection(t *testing.T) {
	l := NewRecordList(nil)
	l.SetRecords(testRecords())
	l.SetSelected(2)

	l.SetRecords(testRecords()[:1])

	assert.Equal(t, 0, l.Selected())
	assert.Equal(t, 1, l.Count())
}

func TestRecordList_ViewShowsPreview(t *testing.T) {
	l := NewRecordList(nil)
	l.SetDimensions(80, 20)
	l.SetRecords(testRecords())
	l.SetPreviewField("caption")

	view := l.View()

	assert.Contains(t, view, "Records (3)")
	assert.Contains(t, view, "rec-1")
	assert.Contains(t, view, "A cat")
	assert.NotContains(t, view, "on a mat")
	assert.Contains(t, view, "(no text)")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "日本...", truncate("日本語テキスト", 8))
}
