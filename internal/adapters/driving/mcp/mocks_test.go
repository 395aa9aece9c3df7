package mcp

import (
	"context"
	"fmt"

	"github.com/custodia-labs/chartlens-cli/internal/core/domain"
	"github.com/custodia-labs/chartlens-cli/internal/core/ports/driving"
	"github.com/custodia-labs/chartlens-cli/internal/i18n"
)

// mockReviewService is a mock implementation of driving.ReviewService.
type mockReviewService struct {
	summaries  []domain.PatientSummary
	patient    *driving.PatientView
	projection *domain.Projection
	err        error

	lastOpts driving.TimelineOptions
}

func (m *mockReviewService) Dashboard(_ context.Context) ([]domain.PatientSummary, error) {
	return m.summaries, m.err
}

func (m *mockReviewService) Patient(_ context.Context, id string) (*driving.PatientView, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.patient == nil || m.patient.ID != id {
		return nil, fmt.Errorf("patient %s: %w", id, domain.ErrNotFound)
	}
	return m.patient, nil
}

func (m *mockReviewService) Timeline(
	_ context.Context,
	_ string,
	opts driving.TimelineOptions,
) (*domain.Projection, error) {
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.projection == nil {
		return &domain.Projection{}, nil
	}
	return m.projection, nil
}

func (m *mockReviewService) WatchMilestones(_ context.Context) <-chan []domain.Milestone {
	return nil
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	language i18n.Language
	err      error
}

func (m *mockSettingsService) Language() i18n.Language {
	if m.language == "" {
		return i18n.Default
	}
	return m.language
}

func (m *mockSettingsService) SetLanguage(_ i18n.Language) error {
	return m.err
}
