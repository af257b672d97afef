// Package records provides the record list view for the TUI.
package records

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/caption-viewer/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/caption-viewer/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/caption-viewer/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/caption-viewer/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/caption-viewer/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/caption-viewer/internal/core/domain"
	"github.com/custodia-labs/caption-viewer/internal/core/ports/driving"
)

// ErrNoRecordService is reported when the view has no service to load from.
var ErrNoRecordService = errors.New("record service not available")

// View is the record list view.
type View struct {
	styles        *styles.Styles
	keymap        *keymap.KeyMap
	recordService driving.RecordService
	list          *list.RecordList
	status        *status.Bar

	ctx     context.Context
	width   int
	height  int
	loading bool
	err     error
}

// NewView creates a new record list view.
func NewView(s *styles.Styles, km *keymap.KeyMap, recordService driving.RecordService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:        s,
		keymap:        km,
		recordService: recordService,
		list:          list.NewRecordList(s),
		status:        status.NewBar(s, km),
		ctx:           context.Background(),
		width:         80,
		height:        24,
	}
}

// WithContext sets the context used to load records.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the records.
func (v *View) Init() tea.Cmd {
	return v.Reload()
}

// Reload returns a command that loads the records.
func (v *View) Reload() tea.Cmd {
	v.loading = true
	v.status.SetState(status.StateLoading)
	svc := v.recordService
	ctx := v.ctx
	return func() tea.Msg {
		if svc == nil {
			return messages.RecordsLoaded{Err: ErrNoRecordService}
		}
		recs, err := svc.List(ctx)
		return messages.RecordsLoaded{Records: recs, Err: err}
	}
}

// Update handles messages for the record list view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.RecordsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			v.status.SetState(status.StateError)
			v.status.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.err = nil
		v.list.SetRecords(msg.Records)
		v.status.SetState(status.StateReady)
		v.status.SetMessage("")
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }
	case keymap.Matches(k, v.keymap.Help):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewHelp} }
	case keymap.Matches(k, v.keymap.Select):
		if v.list.SelectedRecord() == nil {
			return v, nil
		}
		index := v.list.Selected()
		return v, func() tea.Msg { return messages.RecordSelected{Index: index} }
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View renders the record list view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("captionview"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", max(min(v.width-4, 60), 1)))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading records..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
	default:
		b.WriteString(v.list.View())
	}

	b.WriteString("\n\n")
	v.status.SetWidth(v.width)
	v.status.SetPosition(0, 0)
	b.WriteString(v.status.View())
	return b.String()
}

// SetPreviewField sets the field previewed under each record.
func (v *View) SetPreviewField(field string) {
	v.list.SetPreviewField(field)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.list.SetDimensions(width, height-5)
}

// Records returns the loaded records.
func (v *View) Records() []domain.Record {
	return v.list.Records()
}

// Selected returns the selected record index.
func (v *View) Selected() int {
	return v.list.Selected()
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
