package services

import (
	"fmt"

	"github.com/custodia-labs/caption-viewer/internal/core/domain"
	"github.com/custodia-labs/caption-viewer/internal/core/ports/driven"
	"github.com/custodia-labs/caption-viewer/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyMaxLength        = "display.max_length"
	keyTruncationMarker = "display.truncation_marker"
	keyDefaultField     = "panel.default_field"
	keyRenderStyle      = "render.style"
)

// SettingsService manages display settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current display settings.
// Missing or invalid values fall back to the defaults.
func (s *SettingsService) Get() (*domain.DisplaySettings, error) {
	defaults := domain.DefaultDisplaySettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	settings := &domain.DisplaySettings{
		MaxLength:        s.getMaxLength(defaults.MaxLength),
		TruncationMarker: s.getString(keyTruncationMarker, defaults.TruncationMarker),
		DefaultField:     s.configStore.GetString(keyDefaultField),
		Style:            s.getStyle(defaults.Style),
	}

	return settings, nil
}

// Save persists display settings.
func (s *SettingsService) Save(settings *domain.DisplaySettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}

	if err := s.configStore.Set(keyMaxLength, settings.MaxLength); err != nil {
		return fmt.Errorf("save max length: %w", err)
	}
	if err := s.configStore.Set(keyTruncationMarker, settings.TruncationMarker); err != nil {
		return fmt.Errorf("save truncation marker: %w", err)
	}
	if err := s.configStore.Set(keyDefaultField, settings.DefaultField); err != nil {
		return fmt.Errorf("save default field: %w", err)
	}
	if err := s.configStore.Set(keyRenderStyle, settings.Style.String()); err != nil {
		return fmt.Errorf("save render style: %w", err)
	}

	return nil
}

// SetMaxLength sets the truncation length. Zero disables truncation.
func (s *SettingsService) SetMaxLength(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: max length must not be negative", domain.ErrInvalidInput)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.MaxLength = n
	return s.Save(settings)
}

// SetTruncationMarker sets the text appended to truncated values.
func (s *SettingsService) SetTruncationMarker(marker string) error {
	if marker == "" {
		return fmt.Errorf("%w: truncation marker must not be empty", domain.ErrInvalidInput)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.TruncationMarker = marker
	return s.Save(settings)
}

// SetDefaultField sets the field preselected when a panel opens.
// An empty field clears the default.
func (s *SettingsService) SetDefaultField(field string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.DefaultField = field
	return s.Save(settings)
}

// SetStyle sets the terminal markdown theme.
func (s *SettingsService) SetStyle(style domain.RenderStyle) error {
	if !style.IsValid() {
		return fmt.Errorf("%w: render style %q", domain.ErrInvalidInput, style)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Style = style
	return s.Save(settings)
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getMaxLength(defaultVal int) int {
	val := s.configStore.GetInt(keyMaxLength)
	if val < 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getStyle(defaultVal domain.RenderStyle) domain.RenderStyle {
	val := s.configStore.GetString(keyRenderStyle)
	if val == "" {
		return defaultVal
	}
	style := domain.RenderStyle(val)
	if !style.IsValid() {
		return defaultVal
	}
	return style
}
