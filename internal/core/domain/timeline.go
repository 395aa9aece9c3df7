package domain

import (
	"time"

	"github.com/custodia-labs/chartlens-cli/internal/core/palette"
)

// Milestone is an externally supplied dated marker projected onto the same
// axis as documents. Milestones never participate in segmentation.
type Milestone struct {
	// ID is the unique identifier for the milestone.
	ID string

	// Date is the calendar date of the event.
	Date time.Time

	// Color is the display colour of the marker.
	Color palette.ColorID

	// Description is the human-readable label.
	Description string
}

// TimelinePoint is one calendar date placed on the proportional axis.
type TimelinePoint struct {
	// Date is the calendar date, at day resolution.
	Date time.Time

	// Position is the normalized position in [0,100].
	Position float64

	// Colors are the display colours present on any document dated that day,
	// in first-encountered order.
	Colors []palette.ColorID

	// SourceIDs maps each colour to the representative document id used for
	// click-to-navigate. The first document encountered wins.
	SourceIDs map[palette.ColorID]string
}

// MilestonePoint is a milestone placed on the axis.
type MilestonePoint struct {
	Milestone

	// Position is the normalized position in [0,100].
	Position float64

	// IsActive reports whether the milestone passes the active-colour
	// filter. An empty filter means all milestones are active.
	IsActive bool
}

// Projection is the complete result of projecting one patient's dated events
// onto the timeline axis. A zero Projection (no points, nil current
// position) means there was nothing to project and rendering should be
// suppressed.
type Projection struct {
	// Points are document dates in chronological order.
	Points []TimelinePoint

	// Milestones are milestone markers in chronological order.
	Milestones []MilestonePoint

	// CurrentPosition is the normalized position of the viewport's current
	// date, or nil when no current date was supplied.
	CurrentPosition *float64
}

// Empty returns true if there is nothing to render.
func (p Projection) Empty() bool {
	return len(p.Points) == 0 && len(p.Milestones) == 0
}
