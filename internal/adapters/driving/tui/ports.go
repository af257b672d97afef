// Package tui provides an interactive terminal user interface for captionview.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"context"

	"github.com/custodia-labs/caption-viewer/internal/core/ports/driving"
)

// ConfigWatcher reports reloads of the settings file.
type ConfigWatcher interface {
	Watch(ctx context.Context) (<-chan struct{}, error)
}

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Records lists the records to browse.
	Records driving.RecordService

	// Panels opens caption panel instances.
	Panels driving.PanelRegistry

	// Settings supplies the markdown render style. Optional.
	Settings driving.SettingsService

	// Watcher triggers a re-render when settings change on disk. Optional.
	Watcher ConfigWatcher
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(records driving.RecordService, panels driving.PanelRegistry) *Ports {
	return &Ports{
		Records: records,
		Panels:  panels,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Records == nil {
		return ErrMissingRecordService
	}
	if p.Panels == nil {
		return ErrMissingPanelRegistry
	}
	return nil
}
