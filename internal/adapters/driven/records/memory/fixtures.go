package memory

import (
	"time"

	"github.com/custodia-labs/chartlens-cli/internal/core/domain"
)

// NewDemoClient returns a record client seeded with a small synthetic batch
// so the CLI and TUI work without a running record API.
func NewDemoClient() *RecordClient {
	c := NewRecordClient()

	questions := []domain.Question{
		{ID: "q-diagnosis", DisplayText: "What is the primary diagnosis?", ColorValue: "#FF6B6B"},
		{ID: "q-treatment", DisplayText: "Which treatments were administered?", ColorValue: "#5567FF"},
		{ID: "q-metastases", DisplayText: "Are metastases documented?", ColorValue: "#1A9E7D"},
	}

	docs := []domain.Document{
		{
			ID:   "doc-100",
			Date: day(2020, time.January, 15),
			Type: "consultation",
			Text: "Initial consultation. Patient reports a palpable lump in the left breast.",
		},
		{
			ID:   "doc-101",
			Date: day(2020, time.February, 2),
			Type: "pathology report",
			Text: "Biopsy confirms invasive ductal carcinoma, grade 2.",
			Spans: []domain.HighlightSpan{
				{QuestionID: "q-diagnosis", StartOffset: 16, EndOffset: 41},
			},
		},
		{
			ID:   "doc-102",
			Date: day(2020, time.March, 10),
			Type: "discharge report",
			Text: "Mastectomy performed without complications. Adjuvant chemotherapy scheduled.",
			Spans: []domain.HighlightSpan{
				{QuestionID: "q-treatment", StartOffset: 0, EndOffset: 10},
				{QuestionID: "q-treatment", StartOffset: 44, EndOffset: 65},
			},
			Comments: []domain.CommentedHighlight{
				{StartOffset: 0, EndOffset: 10, Description: "verify operative note"},
			},
		},
	}

	c.AddPatient(
		domain.PatientSummary{
			ID:                     "1",
			Name:                   "patient-007",
			ShortSummary:           "Breast carcinoma, surgery plus adjuvant chemotherapy.",
			DocumentsTotal:         len(docs),
			RelevantDocumentsTotal: 2,
			DocumentsStartDate:     docs[0].Date,
			DocumentsEndDate:       docs[len(docs)-1].Date,
			Difficulty:             3,
			AnsweredQuestions: []domain.QuestionStatus{
				{Question: questions[0], DocumentCount: 1},
				{Question: questions[1], DocumentCount: 1},
			},
			UnansweredQuestions: []domain.Question{questions[2]},
		},
		domain.Patient{
			ID:          "1",
			Name:        "patient-007",
			LongSummary: "Female patient diagnosed with invasive ductal carcinoma in early 2020, treated with mastectomy followed by adjuvant chemotherapy.",
			Questions:   questions,
			Documents:   docs,
		},
	)

	c.AddPatient(
		domain.PatientSummary{
			ID:                  "2",
			Name:                "patient-011",
			ShortSummary:        "No relevant findings.",
			DocumentsTotal:      1,
			DocumentsStartDate:  day(2021, time.May, 5),
			DocumentsEndDate:    day(2021, time.May, 5),
			Difficulty:          0,
			UnansweredQuestions: questions,
		},
		domain.Patient{
			ID:        "2",
			Name:      "patient-011",
			Questions: questions,
			Documents: []domain.Document{
				{
					ID:   "doc-200",
					Date: day(2021, time.May, 5),
					Type: "lab result",
					Text: "Routine blood panel within normal limits.",
				},
			},
		},
	)

	return c
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
