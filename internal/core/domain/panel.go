package domain

// PanelDescriptor describes a panel this module provides to a host.
type PanelDescriptor struct {
	// Name is the unique registration name.
	Name string

	// Label is the human-readable title.
	Label string

	// Surfaces lists where the host may show the panel (e.g. "modal").
	Surfaces []string

	// AllowMultiple permits several independent instances at once.
	AllowMultiple bool
}

// Panel action names dispatched by hosts.
const (
	ActionLoad          = "on_load"
	ActionFieldSelect   = "on_field_select"
	ActionRecordChange  = "on_change_current_sample"
	ActionEdit          = "on_edit_click"
	ActionEditChange    = "on_edit_change"
	ActionSave          = "on_save_edit"
	ActionCancel        = "on_cancel_edit"
	ActionParamValue    = "value"
	ActionParamRecordID = "record_id"
)

// ComponentKind identifies a rendered panel component.
type ComponentKind string

// Component kinds a host must be able to render.
const (
	ComponentFieldSelector ComponentKind = "field_selector"
	ComponentMarkdown      ComponentKind = "markdown"
	ComponentTextInput     ComponentKind = "text_input"
	ComponentButton        ComponentKind = "button"
	ComponentLabel         ComponentKind = "label"
	ComponentNotice        ComponentKind = "notice"
)

// Names of the components a caption panel renders.
const (
	ComponentNameSelector  = "field_selector"
	ComponentNameContent   = "content"
	ComponentNameEditText  = "edit_text"
	ComponentNameSave      = "save_btn"
	ComponentNameCancel    = "cancel_btn"
	ComponentNameEdit      = "edit_btn"
	ComponentNameCharCount = "char_count"
	ComponentNameNoData    = "no_data"
)

// Component is a single element of a rendered panel.
type Component struct {
	Kind ComponentKind

	// Name identifies the component within the panel.
	Name string

	// Label is the caption shown next to or on the component.
	Label string

	// Value is the markdown body, input default, or label text.
	Value string

	// Description is secondary text (notices).
	Description string

	// Options are the choices of a selector.
	Options []string

	// Action is dispatched when the component is activated.
	Action string

	// Primary marks the emphasised button.
	Primary bool

	// ReadOnly marks a component that accepts no input.
	ReadOnly bool
}

// PanelLayout is the arrangement of a rendered panel.
type PanelLayout string

// Panel layouts.
const (
	// LayoutCentered shows only the field selector, centred.
	LayoutCentered PanelLayout = "centered"

	// LayoutGrid is the full panel.
	LayoutGrid PanelLayout = "grid"
)

// PanelView is the component tree rendered for a panel state.
type PanelView struct {
	Title      string
	Mode       PanelMode
	Layout     PanelLayout
	Components []Component
}

// Find returns the first component with the given name.
func (v PanelView) Find(name string) (Component, bool) {
	for _, c := range v.Components {
		if c.Name == name {
			return c, true
		}
	}
	return Component{}, false
}
