package services

import (
	"github.com/custodia-labs/caption-viewer/internal/core/domain"
	"github.com/custodia-labs/caption-viewer/internal/core/ports/driven"
	"github.com/custodia-labs/caption-viewer/internal/core/ports/driving"
	"github.com/custodia-labs/caption-viewer/internal/logger"
)

// FormatterFactory builds a formatter for the given display settings.
type FormatterFactory func(domain.DisplaySettings) driven.Formatter

// formatterFor returns a function that builds a formatter from the
// settings current at call time, so configuration reloads take effect on
// the next render.
func formatterFor(settings driving.SettingsService, factory FormatterFactory) func() driven.Formatter {
	return func() driven.Formatter {
		current := domain.DefaultDisplaySettings()
		if settings != nil {
			s, err := settings.Get()
			if err != nil {
				logger.Warn("reading display settings: %v", err)
			} else {
				current = *s
			}
		}
		return factory(current)
	}
}
