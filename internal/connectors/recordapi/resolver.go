package recordapi

import (
	"sort"
	"time"

	"github.com/custodia-labs/chartlens-cli/internal/core/domain"
	"github.com/custodia-labs/chartlens-cli/internal/logger"
)

// dateLayouts are tried in order when parsing upstream dates.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// parseDate parses an upstream date string. Unparseable or empty input
// yields the zero time; span sanitising is the engine's job, date
// sanitising is ours.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	logger.Warn("recordapi: unparseable date %q", s)
	return time.Time{}
}

// resolveDashboard converts the dashboard payload to domain summaries,
// defaulting missing optional fields.
func resolveDashboard(payload *DashboardPayload) []domain.PatientSummary {
	summaries := make([]domain.PatientSummary, 0, len(payload.Patients))
	for _, p := range payload.Patients {
		summary := domain.PatientSummary{
			ID:                     p.ID.String(),
			Name:                   p.Name,
			ShortSummary:           p.ShortSummary,
			DocumentsTotal:         p.DocumentsTotal,
			RelevantDocumentsTotal: p.RelevantDocumentsTotal,
			DocumentsStartDate:     parseDate(p.DocumentsStartDate),
			DocumentsEndDate:       parseDate(p.DocumentsEndDate),
			Difficulty:             clampDifficulty(p.Difficulty),
			AnsweredQuestions:      make([]domain.QuestionStatus, 0, len(p.AnsweredQuestions)),
			UnansweredQuestions:    make([]domain.Question, 0, len(p.UnansweredQuestions)),
		}
		for _, q := range p.AnsweredQuestions {
			count := q.DocumentsCount
			if count < 1 {
				// Listed as answered, so at least one document carries it.
				count = 1
			}
			summary.AnsweredQuestions = append(summary.AnsweredQuestions, domain.QuestionStatus{
				Question:      resolveQuestion(q),
				DocumentCount: count,
			})
		}
		for _, q := range p.UnansweredQuestions {
			summary.UnansweredQuestions = append(summary.UnansweredQuestions, resolveQuestion(q))
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

// resolvePatient converts the patient payload to a domain patient.
// Documents are sorted ascending by date; malformed spans pass through for
// the segmentation engine to clip.
func resolvePatient(id string, payload *PatientPayload) *domain.Patient {
	patient := &domain.Patient{
		ID:          id,
		Name:        payload.Name,
		LongSummary: payload.LongSummary,
		Questions:   make([]domain.Question, 0, len(payload.QuestionsTypes)),
		Documents:   make([]domain.Document, 0, len(payload.Documents)),
	}

	for _, q := range payload.QuestionsTypes {
		patient.Questions = append(patient.Questions, resolveQuestion(q))
	}

	for _, d := range payload.Documents {
		doc := domain.Document{
			ID:       d.ID.String(),
			Date:     parseDate(d.Date),
			Type:     d.Type,
			Text:     d.Text,
			Spans:    make([]domain.HighlightSpan, 0, len(d.Highlights)),
			Comments: make([]domain.CommentedHighlight, 0, len(d.CommentedHighlights)),
		}
		for _, h := range d.Highlights {
			doc.Spans = append(doc.Spans, domain.HighlightSpan{
				QuestionID:  h.QuestionID.String(),
				StartOffset: h.OffsetStart,
				EndOffset:   h.OffsetEnd,
				Confidence:  h.Confidence,
			})
		}
		for _, ch := range d.CommentedHighlights {
			doc.Comments = append(doc.Comments, domain.CommentedHighlight{
				StartOffset: ch.OffsetStart,
				EndOffset:   ch.OffsetEnd,
				Description: ch.Description,
			})
		}
		patient.Documents = append(patient.Documents, doc)
	}

	sort.SliceStable(patient.Documents, func(i, j int) bool {
		return patient.Documents[i].Date.Before(patient.Documents[j].Date)
	})

	return patient
}

// resolveQuestion converts a wire question, defaulting blank fields.
func resolveQuestion(q Question) domain.Question {
	return domain.Question{
		ID:          q.ID.String(),
		DisplayText: q.Name,
		ColorValue:  q.RGBColor,
	}
}

// clampDifficulty keeps the upstream score inside the 0-5 scale.
func clampDifficulty(d int) int {
	if d < 0 {
		return 0
	}
	if d > 5 {
		return 5
	}
	return d
}
