package domain

// PanelMode is the state of a caption panel's edit state machine.
type PanelMode string

// Panel modes.
const (
	// ModeView renders the formatted field value.
	ModeView PanelMode = "view"

	// ModeEdit shows the raw value in an editable buffer.
	ModeEdit PanelMode = "edit"
)

// String returns the string representation.
func (m PanelMode) String() string {
	return string(m)
}

// EditSession is the state of one caption panel.
// It is created when a field is selected, mutated by edit, save and cancel,
// and reset whenever the active record or the selected field changes.
type EditSession struct {
	// SelectedField is the field being displayed. Empty means none.
	SelectedField string

	// RecordID is the active record. Empty means none.
	RecordID string

	// DisplayText is the cached raw value of the selected field.
	DisplayText string

	// EditMode is true while the panel is in ModeEdit.
	EditMode bool

	// EditText is the edit buffer. Nil outside of edit mode.
	EditText *string

	// Title is the panel title shown by the host.
	Title string

	// EmptyState is the message shown when nothing can be displayed.
	EmptyState string
}

// Mode returns the current state machine mode.
func (s EditSession) Mode() PanelMode {
	if s.EditMode {
		return ModeEdit
	}
	return ModeView
}

// HasSelection reports whether both a field and a record are selected.
func (s EditSession) HasSelection() bool {
	return s.SelectedField != "" && s.RecordID != ""
}

// Buffer returns the edit buffer, falling back to the display text.
func (s EditSession) Buffer() string {
	if s.EditText != nil {
		return *s.EditText
	}
	return s.DisplayText
}

// ResetEdit leaves edit mode and drops the buffer.
func (s *EditSession) ResetEdit() {
	s.EditMode = false
	s.EditText = nil
}
