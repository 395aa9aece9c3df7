package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/chartlens-cli/internal/core/domain"
	"github.com/custodia-labs/chartlens-cli/internal/core/palette"
)

// QuestionView is a question with its classified display colour and the
// lightened hex used for highlight backgrounds.
type QuestionView struct {
	domain.Question

	// Color is the classified display colour.
	Color palette.ColorID

	// LightHex is the lightened variant of the display colour, used as the
	// muted highlight background.
	LightHex string
}

// DocumentView is a document prepared for rendering: segmented into
// fragments with its highlight colours resolved.
type DocumentView struct {
	domain.Document

	// Fragments is the ordered plain/highlight decomposition of Text.
	Fragments []domain.Fragment

	// Colors are the display colours present on the document.
	Colors []palette.ColorID
}

// PatientView is the fully prepared detail view for one patient.
type PatientView struct {
	// ID is the patient identifier.
	ID string

	// Name is the display name.
	Name string

	// LongSummary is the narrative summary.
	LongSummary string

	// Questions are the batch's question types with resolved colours.
	Questions []QuestionView

	// Documents are the patient's records, segmented, sorted by date.
	Documents []DocumentView

	// Types are the distinct document type labels, in first-seen order.
	Types []string
}

// TimelineOptions is the per-call view state for a timeline request.
// Explicit parameters keep the projection pure; nothing here is ambient.
type TimelineOptions struct {
	// Types restricts projection to documents of these type labels.
	// Empty means all documents.
	Types []string

	// ActiveColors filters milestone activity. Empty means all active.
	ActiveColors map[palette.ColorID]struct{}

	// CurrentDate, when set, produces the current-viewport marker.
	CurrentDate *time.Time
}

// ReviewService prepares patient data for display: dashboard summaries,
// segmented documents and timeline projections.
type ReviewService interface {
	// Dashboard returns summary rows for all patients.
	Dashboard(ctx context.Context) ([]domain.PatientSummary, error)

	// Patient returns the prepared detail view. Returns domain.ErrNotFound
	// when the id is confirmed absent.
	Patient(ctx context.Context, id string) (*PatientView, error)

	// Timeline projects the patient's documents and any configured
	// milestones onto the normalized axis.
	Timeline(ctx context.Context, id string, opts TimelineOptions) (*domain.Projection, error)

	// WatchMilestones emits the milestone set after every change to the
	// milestone store, or nil when the source cannot watch. Consumers with
	// an open timeline use it to refresh without polling.
	WatchMilestones(ctx context.Context) <-chan []domain.Milestone
}
