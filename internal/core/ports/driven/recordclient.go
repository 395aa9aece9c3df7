package driven

import (
	"context"

	"github.com/custodia-labs/chartlens-cli/internal/core/domain"
)

// RecordClient fetches read-only patient data from the upstream record API.
// Implementations must return domain.ErrNotFound (possibly wrapped) when a
// patient id is confirmed absent, so callers can distinguish "not found"
// from a transport failure.
type RecordClient interface {
	// Dashboard returns the summary rows for every patient in the current
	// batch.
	Dashboard(ctx context.Context) ([]domain.PatientSummary, error)

	// Patient returns the full detail view for one patient.
	Patient(ctx context.Context, id string) (*domain.Patient, error)
}
