package driven

import (
	"context"

	"github.com/custodia-labs/chartlens-cli/internal/core/domain"
)

// MilestoneSource supplies externally defined milestone events for timeline
// projection. Sources are read-only; an implementation backed by a watched
// file may return different results between calls.
type MilestoneSource interface {
	// Milestones returns all milestone events, or an empty slice when none
	// are configured.
	Milestones(ctx context.Context) ([]domain.Milestone, error)
}

// MilestoneWatcher is implemented by milestone sources that can report
// changes to their backing store. The channel closes when the context is
// cancelled.
type MilestoneWatcher interface {
	// Watch emits the full milestone set after every change.
	Watch(ctx context.Context) (<-chan []domain.Milestone, error)
}
