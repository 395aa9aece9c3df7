package mcp

import (
	"github.com/custodia-labs/chartlens-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Review prepares patient data for display.
	Review driving.ReviewService

	// Settings manages persisted UI preferences.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Review == nil {
		return ErrMissingReviewService
	}
	// Settings is optional; language only affects rendered labels.
	return nil
}
