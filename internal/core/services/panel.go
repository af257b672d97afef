package services

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/custodia-labs/caption-viewer/internal/core/domain"
	"github.com/custodia-labs/caption-viewer/internal/core/ports/driven"
	"github.com/custodia-labs/caption-viewer/internal/core/ports/driving"
	"github.com/custodia-labs/caption-viewer/internal/logger"
)

// Ensure CaptionPanel implements the interface.
var _ driving.Panel = (*CaptionPanel)(nil)

// Panel text.
const (
	panelTitle        = "Caption Viewer"
	emptyStateNoField = "No field selected"
	labelPickField    = "Select a field to display"
	labelSwitchField  = "Select a field"
	labelEditCaption  = "Edit Caption"
	labelAddCaption   = "Add Caption"
	labelNoData       = "No data"
	descriptionNoData = "This sample has no text in the selected field"
)

// CaptionPanel shows one string field of the active record and lets the
// user edit it. Each instance owns its session; instances share nothing
// but the record store.
//
// A CaptionPanel is not safe for concurrent use. Hosts drive it from a
// single event loop.
type CaptionPanel struct {
	id        string
	records   driven.RecordStore
	formatter func() driven.Formatter
	session   domain.EditSession
}

// NewCaptionPanel creates a panel that formats with a fixed formatter.
func NewCaptionPanel(records driven.RecordStore, formatter driven.Formatter) *CaptionPanel {
	return newCaptionPanel(records, func() driven.Formatter { return formatter })
}

func newCaptionPanel(records driven.RecordStore, formatter func() driven.Formatter) *CaptionPanel {
	return &CaptionPanel{
		id:        uuid.New().String(),
		records:   records,
		formatter: formatter,
		session:   domain.EditSession{Title: panelTitle},
	}
}

// ID returns the instance identifier.
func (p *CaptionPanel) ID() string {
	return p.id
}

// Session returns a copy of the current edit session.
func (p *CaptionPanel) Session() domain.EditSession {
	s := p.session
	if s.EditText != nil {
		buf := *s.EditText
		s.EditText = &buf
	}
	return s
}

// Load refreshes the display text from the active record.
// Read failures are logged and show as an empty field.
func (p *CaptionPanel) Load(ctx context.Context) {
	field := p.session.SelectedField
	if field == "" {
		p.session.EmptyState = emptyStateNoField
		return
	}
	p.session.EmptyState = ""

	recordID := p.session.RecordID
	if recordID == "" {
		return
	}

	if p.records == nil {
		p.session.DisplayText = ""
		return
	}

	rec, err := p.records.GetRecord(ctx, recordID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Debug("record %s not found", recordID)
		} else {
			logger.Error("loading field %q of record %s: %v", field, recordID, err)
		}
		p.session.DisplayText = ""
		return
	}

	value, _ := rec.GetField(field)
	p.session.DisplayText = value
}

// SelectField switches the displayed field, discards any edit and reloads.
func (p *CaptionPanel) SelectField(ctx context.Context, field string) {
	p.session.SelectedField = field
	p.session.Title = panelTitle
	if field != "" {
		p.session.Title = panelTitle + ": " + field
	}
	p.session.ResetEdit()
	p.Load(ctx)
}

// ChangeRecord switches the active record, discards any edit and reloads.
func (p *CaptionPanel) ChangeRecord(ctx context.Context, recordID string) {
	p.session.RecordID = recordID
	p.session.ResetEdit()
	p.Load(ctx)
}

// Edit enters edit mode with the display text as the buffer.
// Calling Edit while already editing keeps the current buffer.
func (p *CaptionPanel) Edit() {
	if p.session.EditMode {
		return
	}
	buf := p.session.DisplayText
	p.session.EditMode = true
	p.session.EditText = &buf
}

// SetEditText replaces the edit buffer.
func (p *CaptionPanel) SetEditText(text string) error {
	if !p.session.EditMode {
		return domain.ErrNotEditing
	}
	p.session.EditText = &text
	return nil
}

// Save writes the buffer to the selected field of the active record.
// On success the panel shows the saved value in view mode. On failure the
// error is logged and returned and the panel stays in edit mode with the
// buffer intact.
func (p *CaptionPanel) Save(ctx context.Context) error {
	if !p.session.HasSelection() {
		return domain.ErrNoSelection
	}
	if !p.session.EditMode {
		return domain.ErrNotEditing
	}
	if p.records == nil {
		return domain.ErrNotImplemented
	}

	field := p.session.SelectedField
	recordID := p.session.RecordID
	value := p.session.Buffer()

	rec, err := p.records.GetRecord(ctx, recordID)
	if err != nil {
		logger.Error("saving field %q of record %s: %v", field, recordID, err)
		return fmt.Errorf("save %s of %s: %w", field, recordID, err)
	}

	rec.SetField(field, value)
	if err := p.records.SaveRecord(ctx, rec); err != nil {
		logger.Error("saving field %q of record %s: %v", field, recordID, err)
		return fmt.Errorf("save %s of %s: %w", field, recordID, err)
	}

	p.session.DisplayText = value
	p.session.ResetEdit()
	return nil
}

// Cancel discards the buffer and returns to view mode.
func (p *CaptionPanel) Cancel() {
	p.session.ResetEdit()
}

// Dispatch runs a named host action.
// on_field_select reads the "value" parameter; on_change_current_sample
// reads "record_id" and keeps the current record when it is absent;
// on_edit_change reads "value".
func (p *CaptionPanel) Dispatch(ctx context.Context, action string, params map[string]string) error {
	switch action {
	case domain.ActionLoad:
		p.Load(ctx)
	case domain.ActionFieldSelect:
		p.SelectField(ctx, params[domain.ActionParamValue])
	case domain.ActionRecordChange:
		recordID, ok := params[domain.ActionParamRecordID]
		if !ok {
			recordID = p.session.RecordID
		}
		p.ChangeRecord(ctx, recordID)
	case domain.ActionEdit:
		p.Edit()
	case domain.ActionEditChange:
		return p.SetEditText(params[domain.ActionParamValue])
	case domain.ActionSave:
		return p.Save(ctx)
	case domain.ActionCancel:
		p.Cancel()
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnknownAction, action)
	}
	return nil
}

// Render projects the session into a component tree.
// It reads the field schema but never changes the session.
func (p *CaptionPanel) Render(ctx context.Context) domain.PanelView {
	fields := p.stringFields(ctx)
	s := p.session

	view := domain.PanelView{
		Title: s.Title,
		Mode:  s.Mode(),
	}

	if s.SelectedField == "" {
		view.Layout = domain.LayoutCentered
		view.Components = []domain.Component{{
			Kind:    domain.ComponentFieldSelector,
			Name:    domain.ComponentNameSelector,
			Label:   labelPickField,
			Options: fields,
			Action:  domain.ActionFieldSelect,
		}}
		return view
	}

	view.Layout = domain.LayoutGrid
	if len(fields) == 0 {
		return view
	}

	view.Components = append(view.Components, domain.Component{
		Kind:    domain.ComponentFieldSelector,
		Name:    domain.ComponentNameSelector,
		Label:   labelSwitchField,
		Value:   s.SelectedField,
		Options: fields,
		Action:  domain.ActionFieldSelect,
	})

	switch {
	case s.EditMode:
		view.Components = append(view.Components,
			domain.Component{
				Kind:   domain.ComponentTextInput,
				Name:   domain.ComponentNameEditText,
				Label:  "Editing: " + s.SelectedField,
				Value:  s.Buffer(),
				Action: domain.ActionEditChange,
			},
			domain.Component{
				Kind:    domain.ComponentButton,
				Name:    domain.ComponentNameSave,
				Label:   "Save",
				Action:  domain.ActionSave,
				Primary: true,
			},
			domain.Component{
				Kind:   domain.ComponentButton,
				Name:   domain.ComponentNameCancel,
				Label:  "Cancel",
				Action: domain.ActionCancel,
			},
		)
	case s.DisplayText != "":
		f := p.formatter()
		out := f.Process(s.DisplayText)
		view.Components = append(view.Components,
			domain.Component{
				Kind:  domain.ComponentMarkdown,
				Name:  domain.ComponentNameContent,
				Value: "\n\n" + f.Markdown(out),
			},
			domain.Component{
				Kind:   domain.ComponentButton,
				Name:   domain.ComponentNameEdit,
				Label:  labelEditCaption,
				Action: domain.ActionEdit,
			},
			domain.Component{
				Kind:     domain.ComponentLabel,
				Name:     domain.ComponentNameCharCount,
				Value:    fmt.Sprintf("%d characters", utf8.RuneCountInString(s.DisplayText)),
				ReadOnly: true,
			},
		)
	default:
		view.Components = append(view.Components,
			domain.Component{
				Kind:        domain.ComponentNotice,
				Name:        domain.ComponentNameNoData,
				Label:       labelNoData,
				Description: descriptionNoData,
			},
			domain.Component{
				Kind:   domain.ComponentButton,
				Name:   domain.ComponentNameEdit,
				Label:  labelAddCaption,
				Action: domain.ActionEdit,
			},
		)
	}

	return view
}

// preselect sets the initial field without loading a record.
func (p *CaptionPanel) preselect(field string) {
	if field == "" {
		return
	}
	p.session.SelectedField = field
	p.session.Title = panelTitle + ": " + field
}

func (p *CaptionPanel) stringFields(ctx context.Context) []string {
	if p.records == nil {
		return nil
	}
	schema, err := p.records.Schema(ctx)
	if err != nil {
		logger.Error("reading field schema: %v", err)
		return nil
	}
	return domain.StringFieldNames(schema)
}
