package services

import (
	"fmt"
	"sync"

	"github.com/custodia-labs/caption-viewer/internal/core/domain"
	"github.com/custodia-labs/caption-viewer/internal/core/ports/driven"
	"github.com/custodia-labs/caption-viewer/internal/core/ports/driving"
	"github.com/custodia-labs/caption-viewer/internal/logger"
)

// Ensure PanelRegistry implements the interface.
var _ driving.PanelRegistry = (*PanelRegistry)(nil)

// CaptionViewerPanel is the registration name of the caption viewer.
const CaptionViewerPanel = "caption_viewer_panel"

// SurfaceModal is the host surface for panels shown over a single record.
const SurfaceModal = "modal"

// Panels returns the panels this module provides.
func Panels() []domain.PanelDescriptor {
	return []domain.PanelDescriptor{
		{
			Name:          CaptionViewerPanel,
			Label:         panelTitle,
			Surfaces:      []string{SurfaceModal},
			AllowMultiple: true,
		},
	}
}

// PanelRegistry opens panel instances for hosts.
// Panels that allow multiple instances get a new one on every Open;
// others are opened once and shared.
type PanelRegistry struct {
	records     driven.RecordStore
	settings    driving.SettingsService
	formatter   func() driven.Formatter
	descriptors []domain.PanelDescriptor

	mu        sync.Mutex
	singleton map[string]driving.Panel
}

// NewPanelRegistry creates a registry for the panels returned by Panels.
func NewPanelRegistry(
	records driven.RecordStore,
	settings driving.SettingsService,
	newFormatter FormatterFactory,
) *PanelRegistry {
	return &PanelRegistry{
		records:     records,
		settings:    settings,
		formatter:   formatterFor(settings, newFormatter),
		descriptors: Panels(),
		singleton:   make(map[string]driving.Panel),
	}
}

// Descriptors returns the registered panels.
func (r *PanelRegistry) Descriptors() []domain.PanelDescriptor {
	out := make([]domain.PanelDescriptor, len(r.descriptors))
	copy(out, r.descriptors)
	return out
}

// Open creates a panel instance. The configured default field, if any,
// is preselected.
func (r *PanelRegistry) Open(name string) (driving.Panel, error) {
	desc, ok := r.lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownPanel, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !desc.AllowMultiple {
		if p, ok := r.singleton[name]; ok {
			return p, nil
		}
	}

	p := newCaptionPanel(r.records, r.formatter)
	p.preselect(r.defaultField())
	logger.Debug("opened panel %s (%s)", name, p.ID())

	if !desc.AllowMultiple {
		r.singleton[name] = p
	}
	return p, nil
}

func (r *PanelRegistry) lookup(name string) (domain.PanelDescriptor, bool) {
	for _, d := range r.descriptors {
		if d.Name == name {
			return d, true
		}
	}
	return domain.PanelDescriptor{}, false
}

func (r *PanelRegistry) defaultField() string {
	if r.settings == nil {
		return ""
	}
	s, err := r.settings.Get()
	if err != nil {
		logger.Warn("reading default field: %v", err)
		return ""
	}
	return s.DefaultField
}
