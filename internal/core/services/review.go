package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/chartlens-cli/internal/core/domain"
	"github.com/custodia-labs/chartlens-cli/internal/core/palette"
	"github.com/custodia-labs/chartlens-cli/internal/core/ports/driven"
	"github.com/custodia-labs/chartlens-cli/internal/core/ports/driving"
	"github.com/custodia-labs/chartlens-cli/internal/core/segment"
	"github.com/custodia-labs/chartlens-cli/internal/core/timeline"
	"github.com/custodia-labs/chartlens-cli/internal/logger"
)

// Ensure ReviewService implements the interface.
var _ driving.ReviewService = (*ReviewService)(nil)

// ReviewService prepares patient data for display.
type ReviewService struct {
	records    driven.RecordClient
	milestones driven.MilestoneSource
}

// NewReviewService creates a review service. The milestone source may be
// nil, in which case timelines carry no milestone markers.
func NewReviewService(records driven.RecordClient, milestones driven.MilestoneSource) *ReviewService {
	return &ReviewService{
		records:    records,
		milestones: milestones,
	}
}

// Dashboard returns summary rows for all patients.
func (s *ReviewService) Dashboard(ctx context.Context) ([]domain.PatientSummary, error) {
	if s.records == nil {
		return nil, domain.ErrRecordsUnavailable
	}
	return s.records.Dashboard(ctx)
}

// Patient fetches one patient and prepares it for rendering: each
// question's colour is classified once, every document is segmented into
// fragments and its highlight colour set collected.
func (s *ReviewService) Patient(ctx context.Context, id string) (*driving.PatientView, error) {
	patient, err := s.fetchPatient(ctx, id)
	if err != nil {
		return nil, err
	}

	resolve := questionResolver(patient.Questions)

	view := &driving.PatientView{
		ID:          patient.ID,
		Name:        patient.Name,
		LongSummary: patient.LongSummary,
		Questions:   make([]driving.QuestionView, 0, len(patient.Questions)),
		Documents:   make([]driving.DocumentView, 0, len(patient.Documents)),
	}

	for _, q := range patient.Questions {
		color := palette.Classify(q.ColorValue)
		view.Questions = append(view.Questions, driving.QuestionView{
			Question: q,
			Color:    color,
			LightHex: palette.Lighten(color.Hex(), palette.DefaultLightenFactor),
		})
	}

	seenTypes := make(map[string]struct{})
	for _, doc := range patient.Documents {
		view.Documents = append(view.Documents, driving.DocumentView{
			Document:  doc,
			Fragments: segment.Segment(doc.Text, doc.Spans, resolve),
			Colors:    doc.Colors(resolve),
		})
		if doc.Type != "" {
			if _, ok := seenTypes[doc.Type]; !ok {
				seenTypes[doc.Type] = struct{}{}
				view.Types = append(view.Types, doc.Type)
			}
		}
	}

	logger.Debug("review: prepared patient %s (%d documents, %d questions)",
		id, len(view.Documents), len(view.Questions))
	return view, nil
}

// Timeline projects the patient's documents and configured milestones.
// The type filter and active-colour filter come in as explicit options and
// only affect this call.
func (s *ReviewService) Timeline(ctx context.Context, id string, opts driving.TimelineOptions) (*domain.Projection, error) {
	patient, err := s.fetchPatient(ctx, id)
	if err != nil {
		return nil, err
	}

	resolve := questionResolver(patient.Questions)

	var entries []timeline.Entry
	for _, doc := range patient.Documents {
		if !typeAllowed(doc.Type, opts.Types) {
			continue
		}
		if doc.Date.IsZero() {
			logger.Debug("review: document %s has no usable date, skipping", doc.ID)
			continue
		}
		entries = append(entries, timeline.Entry{
			ID:     doc.ID,
			Date:   doc.Date,
			Colors: doc.Colors(resolve),
		})
	}

	milestones, err := s.loadMilestones(ctx)
	if err != nil {
		// Milestones are decorative; a failed source degrades the view
		// instead of failing it.
		logger.Warn("review: milestone source failed: %v", err)
		milestones = nil
	}

	projection := timeline.Project(entries, milestones, timeline.Options{
		CurrentDate:  opts.CurrentDate,
		ActiveColors: opts.ActiveColors,
	})
	return &projection, nil
}

// WatchMilestones returns a channel carrying the milestone set after every
// change to the backing store, or nil when the configured source cannot
// watch. A nil channel means callers fall back to re-reading on demand.
func (s *ReviewService) WatchMilestones(ctx context.Context) <-chan []domain.Milestone {
	watcher, ok := s.milestones.(driven.MilestoneWatcher)
	if !ok {
		return nil
	}
	ch, err := watcher.Watch(ctx)
	if err != nil {
		logger.Warn("review: milestone watch unavailable: %v", err)
		return nil
	}
	return ch
}

// fetchPatient guards the record client and keeps ErrNotFound intact.
func (s *ReviewService) fetchPatient(ctx context.Context, id string) (*domain.Patient, error) {
	if s.records == nil {
		return nil, domain.ErrRecordsUnavailable
	}
	if id == "" {
		return nil, fmt.Errorf("patient id: %w", domain.ErrInvalidInput)
	}
	return s.records.Patient(ctx, id)
}

// loadMilestones reads the milestone source when one is configured.
func (s *ReviewService) loadMilestones(ctx context.Context) ([]domain.Milestone, error) {
	if s.milestones == nil {
		return nil, nil
	}
	return s.milestones.Milestones(ctx)
}

// questionResolver builds a segment.Resolver over the patient's question
// set. Unknown question ids classify as Neutral.
func questionResolver(questions []domain.Question) segment.Resolver {
	colors := make(map[string]palette.ColorID, len(questions))
	for _, q := range questions {
		colors[q.ID] = palette.Classify(q.ColorValue)
	}
	return func(questionID string) palette.ColorID {
		if c, ok := colors[questionID]; ok {
			return c
		}
		return palette.Neutral
	}
}

// typeAllowed applies the document type filter.
func typeAllowed(docType string, filter []string) bool {
	if len(filter) == 0 {
		return true
	}
	for _, t := range filter {
		if t == docType {
			return true
		}
	}
	return false
}
