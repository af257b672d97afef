package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/caption-viewer/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/caption-viewer/internal/core/domain"
)

// fakeWatcher hands out a channel the test controls.
type fakeWatcher struct {
	changes chan struct{}
	err     error
}

func (w *fakeWatcher) Watch(_ context.Context) (<-chan struct{}, error) {
	if w.err != nil {
		return nil, w.err
	}
	return w.changes, nil
}

// loadedApp returns an app sized and populated with the test records.
func loadedApp(t *testing.T) *App {
	t.Helper()

	ports := testServices(t)
	ports.Watcher = nil
	app, err := NewApp(ports)
	require.NoError(t, err)

	app.SetDimensions(100, 30)
	app.Update(app.recordsView.Reload()())
	require.Len(t, app.recordsView.Records(), 2)
	return app
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(testServices(t))

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewRecords, app.CurrentView())
	assert.False(t, app.Ready())
	assert.Equal(t, "Initialising...", app.View())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{})

	assert.ErrorIs(t, err, ErrMissingRecordService)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app, err := NewApp(testServices(t))
	require.NoError(t, err)

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Equal(t, app, app.WithContext(ctx))
}

func TestApp_Init(t *testing.T) {
	app, err := NewApp(testServices(t))
	require.NoError(t, err)

	assert.NotNil(t, app.Init())
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, err := NewApp(testServices(t))
	require.NoError(t, err)

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
}

func TestApp_ListShowsRecords(t *testing.T) {
	app := loadedApp(t)

	view := app.View()

	assert.Contains(t, view, "Records (2)")
	assert.Contains(t, view, "rec-1")
}

func TestApp_OpenPanelAndBack(t *testing.T) {
	app := loadedApp(t)

	app.Update(messages.RecordSelected{Index: 1})

	assert.Equal(t, messages.ViewPanel, app.CurrentView())
	require.NotNil(t, app.Panel())
	assert.Equal(t, "rec-2", app.Panel().Session().RecordID)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	_, cmd = app.Update(cmd())

	assert.Equal(t, messages.ViewRecords, app.CurrentView())
	assert.NotNil(t, cmd, "returning to the list reloads records")

	// The panel instance is reused for the next record.
	first := app.Panel()
	app.Update(messages.RecordSelected{Index: 0})
	assert.Equal(t, first.ID(), app.Panel().ID())
	assert.Equal(t, "rec-1", app.Panel().Session().RecordID)
}

func TestApp_EditSaveReloadsRecords(t *testing.T) {
	app := loadedApp(t)
	app.Update(messages.RecordSelected{Index: 0})

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'!'}})
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	_, cmd = app.Update(cmd())
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.NoError(t, app.Err())
	rec, err := app.ports.Records.Get(context.Background(), "rec-1")
	require.NoError(t, err)
	got, _ := rec.GetField(app.Panel().Session().SelectedField)
	assert.Contains(t, got, "!")
}

func TestApp_CaptionSavedError(t *testing.T) {
	app := loadedApp(t)

	_, cmd := app.Update(messages.CaptionSaved{Err: errors.New("disk full")})

	assert.Nil(t, cmd)
	assert.ErrorContains(t, app.Err(), "disk full")
}

func TestApp_HelpToggle(t *testing.T) {
	app := loadedApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	require.NotNil(t, cmd)
	app.Update(cmd())
	assert.Equal(t, messages.ViewHelp, app.CurrentView())
	assert.Contains(t, app.View(), "Caption panel:")

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewRecords, app.CurrentView())
}

func TestApp_CtrlCQuits(t *testing.T) {
	app := loadedApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestApp_QuitMessage(t *testing.T) {
	app := loadedApp(t)

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestApp_SettingsWatch(t *testing.T) {
	watcher := &fakeWatcher{changes: make(chan struct{}, 1)}
	ports := testServices(t)
	ports.Watcher = watcher
	app, err := NewApp(ports)
	require.NoError(t, err)

	cmd := app.watchSettings()
	require.NotNil(t, cmd)

	watcher.changes <- struct{}{}
	msg := cmd()
	assert.Equal(t, messages.SettingsChanged{}, msg)

	_, next := app.Update(msg)
	assert.NotNil(t, next, "keeps waiting for the next change")

	close(watcher.changes)
	assert.Nil(t, next())
}

func TestApp_SettingsWatchError(t *testing.T) {
	ports := testServices(t)
	ports.Watcher = &fakeWatcher{err: errors.New("no inotify")}
	app, err := NewApp(ports)
	require.NoError(t, err)

	assert.Nil(t, app.watchSettings())
}

func TestApp_OpenPanelWithoutDescriptors(t *testing.T) {
	ports := testServices(t)
	ports.Panels = emptyRegistry{}
	app, err := NewApp(ports)
	require.NoError(t, err)

	cmd := app.openPanel(0)

	require.NotNil(t, cmd)
	assert.ErrorIs(t, app.Err(), domain.ErrUnknownPanel)
	assert.Equal(t, messages.ViewRecords, app.CurrentView())
}
