package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/caption-viewer/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/caption-viewer/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/caption-viewer/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/caption-viewer/internal/adapters/driving/tui/views/panel"
	"github.com/custodia-labs/caption-viewer/internal/adapters/driving/tui/views/records"
	"github.com/custodia-labs/caption-viewer/internal/core/domain"
	"github.com/custodia-labs/caption-viewer/internal/core/ports/driving"
	"github.com/custodia-labs/caption-viewer/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	// recordsView lists the records.
	recordsView *records.View

	// panelView shows the caption panel for the selected record.
	panelView *panel.View

	// panel is opened on first use and reused for every record.
	panel driving.Panel

	// changes signals settings reloads. Nil when not watching.
	changes <-chan struct{}

	// currentView tracks which view is active.
	currentView messages.ViewType

	// previous is the view to return to from help.
	previous messages.ViewType

	err    error
	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports, opts ...panel.Option) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	app := &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		recordsView: records.NewView(s, km, ports.Records),
		panelView:   panel.NewView(s, km, ports.Settings, opts...),
		currentView: messages.ViewRecords,
	}
	app.recordsView.SetPreviewField(app.previewField())
	return app, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.recordsView.WithContext(ctx)
	a.panelView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("captionview"),
		a.recordsView.Init(),
		a.watchSettings(),
	)
}

// watchSettings starts watching the config file and waits for the first change.
func (a *App) watchSettings() tea.Cmd {
	if a.ports.Watcher == nil {
		return nil
	}
	changes, err := a.ports.Watcher.Watch(a.ctx)
	if err != nil {
		logger.Warn("watching settings: %v", err)
		return nil
	}
	a.changes = changes
	return waitForChange(changes)
}

func waitForChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return messages.SettingsChanged{}
	}
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.recordsView.SetDimensions(msg.Width, msg.Height)
		a.panelView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewRecords:
			a.recordsView, cmd = a.recordsView.Update(msg)
		case messages.ViewPanel:
			a.panelView, cmd = a.panelView.Update(msg)
		case messages.ViewHelp:
			if keymap.Matches(msg.String(), a.keymap.Back) || keymap.Matches(msg.String(), a.keymap.Help) {
				a.currentView = a.previous
			}
		}
		return a, cmd

	case messages.RecordsLoaded:
		a.recordsView, cmd = a.recordsView.Update(msg)
		if msg.Err == nil {
			a.panelView.SetRecords(msg.Records)
		}
		return a, cmd

	case messages.RecordSelected:
		return a, a.openPanel(msg.Index)

	case messages.CaptionSaved:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		return a, a.recordsView.Reload()

	case messages.CaptionCopied:
		a.panelView, cmd = a.panelView.Update(msg)
		return a, cmd

	case messages.SettingsChanged:
		logger.Debug("settings reloaded")
		a.recordsView.SetPreviewField(a.previewField())
		a.panelView, _ = a.panelView.Update(msg)
		if a.changes != nil {
			return a, waitForChange(a.changes)
		}
		return a, nil

	case messages.ViewChanged:
		if msg.View == messages.ViewHelp {
			a.previous = a.currentView
		}
		a.currentView = msg.View
		if msg.View == messages.ViewRecords {
			return a, a.recordsView.Reload()
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.panelView, cmd = a.panelView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

// openPanel shows the caption panel for the record at index.
// The first registered panel is used.
func (a *App) openPanel(index int) tea.Cmd {
	if a.panel == nil {
		p, err := a.openFirstPanel()
		if err != nil {
			a.err = err
			return func() tea.Msg { return messages.ErrorOccurred{Err: err} }
		}
		a.panel = p
	}
	a.currentView = messages.ViewPanel
	return a.panelView.Open(a.panel, a.recordsView.Records(), index)
}

func (a *App) openFirstPanel() (driving.Panel, error) {
	descriptors := a.ports.Panels.Descriptors()
	if len(descriptors) == 0 {
		return nil, fmt.Errorf("%w: no panels registered", domain.ErrUnknownPanel)
	}
	return a.ports.Panels.Open(descriptors[0].Name)
}

// previewField is the field shown under each record in the list.
func (a *App) previewField() string {
	if a.ports.Settings == nil {
		return ""
	}
	s, err := a.ports.Settings.Get()
	if err != nil {
		return ""
	}
	return s.DefaultField
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewPanel:
		return a.panelView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewRecords:
		return a.recordsView.View()
	default:
		return a.recordsView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Records:
  j/k, ↑/↓    Navigate records
  enter       Open caption panel
  q           Quit

Caption panel:
  f           Next field
  e           Edit caption
  ctrl+s      Save edit
  esc         Cancel edit / back to records
  n / p       Next / previous record
  y           Copy raw text
  ↑/↓, pgup   Scroll

[esc] back`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// Panel returns the open caption panel, or nil.
func (a *App) Panel() driving.Panel {
	return a.panel
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.Update(tea.WindowSizeMsg{Width: width, Height: height})
}
