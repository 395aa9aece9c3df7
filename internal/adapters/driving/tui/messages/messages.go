// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/chartlens-cli/internal/core/domain"
	"github.com/custodia-labs/chartlens-cli/internal/core/ports/driving"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewDashboard is the patient list.
	ViewDashboard ViewType = iota
	// ViewPatient is the single-patient detail view.
	ViewPatient
	// ViewDocument is the highlighted document reader.
	ViewDocument
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewDashboard:
		return "dashboard"
	case ViewPatient:
		return "patient"
	case ViewDocument:
		return "document"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// DashboardLoaded carries the patient rows from the review service.
type DashboardLoaded struct {
	Summaries []domain.PatientSummary
	Err       error
}

// PatientSelected signals a dashboard row was chosen.
type PatientSelected struct {
	ID string
}

// PatientLoaded carries the prepared patient view.
type PatientLoaded struct {
	View *driving.PatientView
	Err  error
}

// DocumentSelected signals a document was chosen in the patient view.
type DocumentSelected struct {
	PatientID string
	Index     int
}

// TimelineLoaded carries the timeline projection for the open patient.
type TimelineLoaded struct {
	PatientID  string
	Projection *domain.Projection
	Err        error
}

// MilestonesChanged signals the milestone store changed on disk and any
// open timeline should be re-projected.
type MilestonesChanged struct{}

// LanguageChanged signals the UI language preference was toggled.
type LanguageChanged struct {
	Err error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
