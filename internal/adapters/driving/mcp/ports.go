package mcp

import (
	"github.com/custodia-labs/caption-viewer/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Caption renders and updates caption fields.
	Caption driving.CaptionService

	// Records backs the record resources. Optional.
	Records driving.RecordService

	// Settings supplies the default field. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Caption == nil {
		return ErrMissingCaptionService
	}
	return nil
}
