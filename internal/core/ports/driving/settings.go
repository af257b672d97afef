package driving

import "github.com/custodia-labs/caption-viewer/internal/core/domain"

// SettingsService manages display settings.
type SettingsService interface {
	// Get retrieves current display settings.
	Get() (*domain.DisplaySettings, error)

	// Save persists display settings.
	Save(settings *domain.DisplaySettings) error

	// SetMaxLength sets the truncation length. Zero disables truncation.
	SetMaxLength(n int) error

	// SetTruncationMarker sets the text appended to truncated values.
	SetTruncationMarker(marker string) error

	// SetDefaultField sets the field preselected when a panel opens.
	SetDefaultField(field string) error

	// SetStyle sets the terminal markdown theme.
	SetStyle(style domain.RenderStyle) error
}
