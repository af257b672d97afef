// Package panel provides the caption panel view for the TUI.
// It draws the component tree produced by a driving.Panel and maps keys
// onto panel actions.
package panel

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/custodia-labs/caption-viewer/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/caption-viewer/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/caption-viewer/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/caption-viewer/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/caption-viewer/internal/core/domain"
	"github.com/custodia-labs/caption-viewer/internal/core/ports/driving"
	"github.com/custodia-labs/caption-viewer/internal/logger"
)

// maxOptionWidth bounds each field name in the selector row.
const maxOptionWidth = 24

// reserved is the number of rows used by title, selector, buttons and status.
const reserved = 8

// View is the caption panel view.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	settings driving.SettingsService
	status   *status.Bar

	ctx      context.Context
	panel    driving.Panel
	records  []domain.Record
	index    int
	rendered domain.PanelView

	markdown *styles.MarkdownRenderer
	viewport viewport.Model
	editor   textarea.Model
	copy     func(string) error

	width  int
	height int
	err    error
}

// Option configures a View.
type Option func(*View)

// WithClipboard replaces the clipboard writer.
func WithClipboard(fn func(string) error) Option {
	return func(v *View) {
		v.copy = fn
	}
}

// NewView creates a new caption panel view.
// settings may be nil, in which case the auto render style is used.
func NewView(s *styles.Styles, km *keymap.KeyMap, settings driving.SettingsService, opts ...Option) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	editor := textarea.New()
	editor.CharLimit = 0
	editor.ShowLineNumbers = false
	editor.Placeholder = "Type a caption..."

	v := &View{
		styles:   s,
		keymap:   km,
		settings: settings,
		status:   status.NewBar(s, km),
		ctx:      context.Background(),
		viewport: viewport.New(80, 20),
		editor:   editor,
		copy:     clipboard.WriteAll,
		width:    80,
		height:   24,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.rebuildRenderer()
	return v
}

// WithContext sets the context passed to panel actions.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Open shows p for the record at index in records.
func (v *View) Open(p driving.Panel, records []domain.Record, index int) tea.Cmd {
	v.panel = p
	v.records = records
	v.index = -1
	v.err = nil
	v.status.Clear()
	return v.goTo(index)
}

// SetRecords replaces the record list used for next/previous navigation,
// keeping the current record when it is still present.
func (v *View) SetRecords(records []domain.Record) {
	current := ""
	if v.index >= 0 && v.index < len(v.records) {
		current = v.records[v.index].ID
	}
	v.records = records
	v.index = slices.IndexFunc(records, func(r domain.Record) bool { return r.ID == current })
	v.updatePosition()
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if v.panel == nil {
			return v, nil
		}
		if v.editing() {
			return v.handleEditKey(msg)
		}
		return v.handleViewKey(msg)

	case messages.SettingsChanged:
		v.rebuildRenderer()
		v.refresh()
		return v, nil

	case messages.CaptionCopied:
		if msg.Err != nil {
			v.setError(fmt.Errorf("copy: %w", msg.Err))
		} else {
			v.status.SetState(status.StateSaved)
			v.status.SetMessage("Copied to clipboard")
		}
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	return v, nil
}

func (v *View) handleViewKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Field):
		v.cycleField()
	case keymap.Matches(k, v.keymap.Edit):
		v.dispatch(domain.ActionEdit, nil)
	case keymap.Matches(k, v.keymap.Next):
		return v, v.goTo(v.index + 1)
	case keymap.Matches(k, v.keymap.Prev):
		return v, v.goTo(v.index - 1)
	case keymap.Matches(k, v.keymap.Copy):
		return v, v.copyRaw()
	case keymap.Matches(k, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewRecords}
		}
	default:
		var cmd tea.Cmd
		v.viewport, cmd = v.viewport.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *View) handleEditKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Save):
		return v, v.save()
	case keymap.Matches(k, v.keymap.Cancel):
		v.dispatch(domain.ActionCancel, nil)
		return v, nil
	}

	var cmd tea.Cmd
	v.editor, cmd = v.editor.Update(msg)
	if err := v.panel.SetEditText(v.editor.Value()); err != nil {
		v.setError(err)
	}
	return v, cmd
}

// dispatch runs a panel action and redraws.
func (v *View) dispatch(action string, params map[string]string) {
	if err := v.panel.Dispatch(v.ctx, action, params); err != nil {
		v.setError(err)
		return
	}
	v.err = nil
	v.status.SetState(status.StateViewing)
	v.status.SetMessage("")
	v.refresh()
}

func (v *View) save() tea.Cmd {
	session := v.panel.Session()
	if err := v.panel.SetEditText(v.editor.Value()); err != nil {
		v.setError(err)
		return nil
	}
	err := v.panel.Save(v.ctx)
	if err != nil {
		// The panel stays in edit mode with the buffer intact.
		v.setError(err)
	} else {
		v.err = nil
		v.status.SetState(status.StateSaved)
		v.status.SetMessage("Saved " + session.SelectedField)
		v.refresh()
	}
	return func() tea.Msg {
		return messages.CaptionSaved{
			RecordID: session.RecordID,
			Field:    session.SelectedField,
			Err:      err,
		}
	}
}

// goTo switches to the record at index, ignoring out-of-range moves.
func (v *View) goTo(index int) tea.Cmd {
	if index < 0 || index >= len(v.records) || index == v.index {
		v.refresh()
		return nil
	}
	v.index = index
	v.dispatch(domain.ActionRecordChange, map[string]string{
		domain.ActionParamRecordID: v.records[index].ID,
	})
	v.viewport.GotoTop()
	return nil
}

// cycleField selects the next string field after the current one.
func (v *View) cycleField() {
	selector, ok := v.rendered.Find(domain.ComponentNameSelector)
	if !ok || len(selector.Options) == 0 {
		v.status.SetState(status.StateError)
		v.status.SetMessage("No string fields")
		return
	}

	next := selector.Options[0]
	if i := slices.Index(selector.Options, selector.Value); i >= 0 {
		next = selector.Options[(i+1)%len(selector.Options)]
	}
	v.dispatch(domain.ActionFieldSelect, map[string]string{domain.ActionParamValue: next})
	v.viewport.GotoTop()
}

func (v *View) copyRaw() tea.Cmd {
	text := v.panel.Session().DisplayText
	if text == "" {
		return nil
	}
	copyFn := v.copy
	return func() tea.Msg {
		return messages.CaptionCopied{Err: copyFn(text)}
	}
}

func (v *View) rebuildRenderer() {
	style := domain.RenderStyleAuto
	if v.settings != nil {
		if s, err := v.settings.Get(); err == nil {
			style = s.Style
		} else {
			logger.Warn("reading render style: %v", err)
		}
	}

	r, err := styles.NewMarkdownRenderer(style, v.width-4)
	if err != nil {
		logger.Warn("markdown renderer: %v", err)
		return
	}
	v.markdown = r
}

// refresh re-renders the panel and syncs the viewport and editor.
func (v *View) refresh() {
	if v.panel == nil {
		return
	}
	v.rendered = v.panel.Render(v.ctx)

	if v.rendered.Mode == domain.ModeEdit {
		if !v.editor.Focused() {
			input, _ := v.rendered.Find(domain.ComponentNameEditText)
			v.editor.SetValue(input.Value)
			v.editor.Focus()
		}
		v.status.SetState(status.StateEditing)
	} else {
		v.editor.Blur()
		if v.status.State() != status.StateSaved && v.status.State() != status.StateError {
			v.status.SetState(status.StateViewing)
		}
	}

	v.viewport.SetContent(v.body())
	v.updatePosition()
}

func (v *View) updatePosition() {
	if v.index >= 0 {
		v.status.SetPosition(v.index+1, len(v.records))
	} else {
		v.status.SetPosition(0, 0)
	}
}

func (v *View) setError(err error) {
	v.err = err
	v.status.SetState(status.StateError)
	v.status.SetMessage(err.Error())
}

// body draws the scrollable part of the panel.
func (v *View) body() string {
	var b strings.Builder
	for _, c := range v.rendered.Components {
		switch c.Kind {
		case domain.ComponentMarkdown:
			md := strings.TrimLeft(c.Value, "\n")
			if v.markdown != nil {
				md = v.markdown.Render(md)
			}
			b.WriteString(md)
			b.WriteString("\n")
		case domain.ComponentNotice:
			b.WriteString(v.styles.Notice.Render(
				v.styles.Warning.Render(c.Label) + "\n" + v.styles.Muted.Render(c.Description),
			))
			b.WriteString("\n")
		case domain.ComponentLabel:
			b.WriteString("\n")
			b.WriteString(v.styles.Muted.Render(c.Value))
			b.WriteString("\n")
		case domain.ComponentFieldSelector, domain.ComponentTextInput, domain.ComponentButton:
			// drawn outside the viewport
		}
	}
	return b.String()
}

// View renders the panel view.
func (v *View) View() string {
	if v.panel == nil {
		return v.styles.Muted.Render("No record open")
	}

	v.status.SetWidth(v.width)

	if v.rendered.Layout == domain.LayoutCentered {
		selector, _ := v.rendered.Find(domain.ComponentNameSelector)
		content := v.styles.Title.Render(v.rendered.Title) + "\n\n" +
			v.styles.Subtitle.Render(selector.Label) + "\n" +
			v.renderOptions(selector) + "\n\n" +
			v.styles.Help.Render("[f] choose field")
		return lipgloss.Place(v.width, v.height-1, lipgloss.Center, lipgloss.Center, content) +
			"\n" + v.status.View()
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render(v.rendered.Title))
	b.WriteString("\n")
	if selector, ok := v.rendered.Find(domain.ComponentNameSelector); ok {
		b.WriteString(v.styles.Muted.Render(selector.Label+": ") + v.renderOptions(selector))
		b.WriteString("\n")
	}
	b.WriteString(v.styles.Separator.Render(strings.Repeat("─", max(min(v.width-4, 60), 1))))
	b.WriteString("\n")

	if v.rendered.Mode == domain.ModeEdit {
		input, _ := v.rendered.Find(domain.ComponentNameEditText)
		b.WriteString(v.styles.Subtitle.Render(input.Label))
		b.WriteString("\n")
		b.WriteString(v.styles.Editor.Render(v.editor.View()))
	} else {
		b.WriteString(v.viewport.View())
	}
	b.WriteString("\n")
	b.WriteString(v.renderButtons())
	b.WriteString("\n")
	b.WriteString(v.status.View())
	return b.String()
}

func (v *View) renderOptions(selector domain.Component) string {
	if len(selector.Options) == 0 {
		return v.styles.Muted.Render("(no string fields)")
	}
	parts := make([]string, 0, len(selector.Options))
	for _, opt := range selector.Options {
		name := runewidth.Truncate(opt, maxOptionWidth, "…")
		if opt == selector.Value {
			parts = append(parts, v.styles.Selected.Render(name))
		} else {
			parts = append(parts, v.styles.Normal.Render(name))
		}
	}
	return strings.Join(parts, " ")
}

func (v *View) renderButtons() string {
	var parts []string
	for _, c := range v.rendered.Components {
		if c.Kind != domain.ComponentButton {
			continue
		}
		label := fmt.Sprintf("[%s] %s", v.buttonKey(c.Action), c.Label)
		if c.Primary {
			parts = append(parts, v.styles.PrimaryButton.Render(label))
		} else {
			parts = append(parts, v.styles.Button.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (v *View) buttonKey(action string) string {
	switch action {
	case domain.ActionEdit:
		return v.keymap.Edit.Help().Key
	case domain.ActionSave:
		return v.keymap.Save.Help().Key
	case domain.ActionCancel:
		return v.keymap.Cancel.Help().Key
	default:
		return "?"
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = max(width-2, 1)
	v.viewport.Height = max(height-reserved, 1)
	// The editor frame takes two rows and two columns.
	v.editor.SetWidth(max(width-6, 10))
	v.editor.SetHeight(max(height-reserved-2, 3))
	if v.markdown == nil || v.markdown.Width() != max(width-4, 20) {
		v.rebuildRenderer()
	}
	v.refresh()
}

func (v *View) editing() bool {
	return v.panel != nil && v.panel.Session().EditMode
}

// Panel returns the open panel, or nil.
func (v *View) Panel() driving.Panel {
	return v.panel
}

// Rendered returns the last rendered component tree.
func (v *View) Rendered() domain.PanelView {
	return v.rendered
}

// Index returns the position of the current record.
func (v *View) Index() int {
	return v.index
}

// Editor returns the current editor content.
func (v *View) Editor() string {
	return v.editor.Value()
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
