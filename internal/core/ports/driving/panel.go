package driving

import (
	"context"

	"github.com/custodia-labs/caption-viewer/internal/core/domain"
)

// Panel is one caption viewer instance with its own edit session.
type Panel interface {
	// ID returns the instance identifier.
	ID() string

	// Session returns a copy of the current edit session.
	Session() domain.EditSession

	// Load refreshes the display text from the active record.
	Load(ctx context.Context)

	// SelectField switches the displayed field and discards any edit.
	SelectField(ctx context.Context, field string)

	// ChangeRecord switches the active record and discards any edit.
	ChangeRecord(ctx context.Context, recordID string)

	// Edit enters edit mode with the display text as the buffer.
	Edit()

	// SetEditText replaces the edit buffer.
	SetEditText(text string) error

	// Save writes the buffer back to the record.
	Save(ctx context.Context) error

	// Cancel discards the buffer and returns to view mode.
	Cancel()

	// Dispatch runs a named host action.
	Dispatch(ctx context.Context, action string, params map[string]string) error

	// Render projects the session into a component tree.
	Render(ctx context.Context) domain.PanelView
}

// PanelRegistry lists the panels this module provides and opens instances.
type PanelRegistry interface {
	// Descriptors returns the registered panels.
	Descriptors() []domain.PanelDescriptor

	// Open creates a new, independent panel instance.
	Open(name string) (Panel, error)
}
