// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/caption-viewer/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewRecords lists the stored records.
	ViewRecords ViewType = iota
	// ViewPanel shows the caption panel for one record.
	ViewPanel
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewRecords:
		return "records"
	case ViewPanel:
		return "panel"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// RecordsLoaded carries the list of records from the service.
type RecordsLoaded struct {
	Records []domain.Record
	Err     error
}

// RecordSelected signals a record was opened from the list.
type RecordSelected struct {
	Index int
}

// CaptionSaved signals the edit buffer was written back.
type CaptionSaved struct {
	RecordID string
	Field    string
	Err      error
}

// CaptionCopied signals the raw field text was copied to the clipboard.
type CaptionCopied struct {
	Err error
}

// SettingsChanged signals the config file was reloaded.
type SettingsChanged struct{}
