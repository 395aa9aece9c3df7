// Package tui provides an interactive terminal user interface for ChartLens.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/chartlens-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Review prepares patient data for display.
	Review driving.ReviewService

	// Settings manages persisted UI preferences.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(review driving.ReviewService, settings driving.SettingsService) *Ports {
	return &Ports{
		Review:   review,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Review == nil {
		return ErrMissingReviewService
	}
	// Settings is optional; the TUI falls back to the default language.
	return nil
}
