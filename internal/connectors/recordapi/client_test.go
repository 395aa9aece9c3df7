package recordapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/chartlens-cli/internal/core/domain"
)

const dashboardJSON = `{
	"summary": "Batch of two patients.",
	"documents_total": 5,
	"patients": [
		{
			"id": 1,
			"name": "patient-007",
			"short_summary": "Breast carcinoma follow-up.",
			"documents_total": 3,
			"relevant_documents_total": 2,
			"documents_start_date": "2020-01-15",
			"documents_end_date": "2021-06-30",
			"difficulty": 4,
			"answered_questions": [
				{"id": 10, "name": "Diagnosis", "rgb_color": "#FF6B6B", "documents_count": 2}
			],
			"unanswered_questions": [
				{"id": 11, "name": "Metastases", "rgb_color": "#5567FF"}
			]
		},
		{
			"id": 2,
			"name": "patient-011",
			"documents_total": 2,
			"relevant_documents_total": 0,
			"difficulty": 9
		}
	]
}`

const patientJSON = `{
	"name": "patient-007",
	"long_summary": "Full narrative.",
	"questions_types": [
		{"id": 10, "name": "Diagnosis", "rgb_color": "#FF6B6B"},
		{"id": 11, "name": "Metastases", "rgb_color": "#5567FF"}
	],
	"documents": [
		{
			"id": 101,
			"date": "2021-06-30",
			"type": "discharge report",
			"text": "The diagnosis is cancer.",
			"highlights": [
				{"question_id": 10, "offset_start": 4, "offset_end": 13}
			],
			"commented_highlights": [
				{"offset_start": 17, "offset_end": 23, "description": "confirmed"}
			]
		},
		{
			"id": 100,
			"date": "2020-01-15",
			"text": "Initial consultation."
		}
	]
}`

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, NewClient(srv.URL)
}

func TestClient_Dashboard(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/dashboard", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(dashboardJSON))
	})

	summaries, err := client.Dashboard(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	first := summaries[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "patient-007", first.Name)
	assert.Equal(t, 3, first.DocumentsTotal)
	assert.Equal(t, 2, first.RelevantDocumentsTotal)
	assert.Equal(t, 2020, first.DocumentsStartDate.Year())
	assert.Equal(t, 4, first.Difficulty)
	require.Len(t, first.AnsweredQuestions, 1)
	assert.Equal(t, "10", first.AnsweredQuestions[0].ID)
	assert.Equal(t, 2, first.AnsweredQuestions[0].DocumentCount)
	require.Len(t, first.UnansweredQuestions, 1)
	assert.Equal(t, "Metastases", first.UnansweredQuestions[0].DisplayText)
}

func TestClient_Dashboard_DefaultsMissingFields(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(dashboardJSON))
	})

	summaries, err := client.Dashboard(context.Background())
	require.NoError(t, err)

	second := summaries[1]
	assert.Equal(t, "", second.ShortSummary)
	assert.True(t, second.DocumentsStartDate.IsZero())
	assert.Empty(t, second.AnsweredQuestions)
	assert.Empty(t, second.UnansweredQuestions)
	assert.Equal(t, 5, second.Difficulty) // clamped to the 0-5 scale
}

func TestClient_Patient(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/patient/1", r.URL.Path)
		_, _ = w.Write([]byte(patientJSON))
	})

	patient, err := client.Patient(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, "1", patient.ID)
	assert.Equal(t, "patient-007", patient.Name)
	require.Len(t, patient.Questions, 2)
	require.Len(t, patient.Documents, 2)

	// Documents come back sorted ascending by date.
	assert.Equal(t, "100", patient.Documents[0].ID)
	assert.Equal(t, "101", patient.Documents[1].ID)

	doc := patient.Documents[1]
	assert.Equal(t, "discharge report", doc.Type)
	require.Len(t, doc.Spans, 1)
	assert.Equal(t, "10", doc.Spans[0].QuestionID)
	assert.Equal(t, 4, doc.Spans[0].StartOffset)
	assert.Equal(t, 13, doc.Spans[0].EndOffset)
	require.Len(t, doc.Comments, 1)
	assert.Equal(t, "confirmed", doc.Comments[0].Description)

	// Optional fields on the second document defaulted.
	assert.Equal(t, "", patient.Documents[0].Type)
	assert.Empty(t, patient.Documents[0].Spans)
}

func TestClient_Patient_NotFound(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := client.Patient(context.Background(), "999")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_Patient_ServerErrorIsNotNotFound(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	})

	_, err := client.Patient(context.Background(), "1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "boom", apiErr.Message)
	assert.True(t, IsServerError(err))
}

func TestClient_Patient_EmptyID(t *testing.T) {
	client := NewClient("http://localhost:0")
	_, err := client.Patient(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyPatientID)
}

func TestClient_NoBaseURL(t *testing.T) {
	client := NewClient("")
	_, err := client.Dashboard(context.Background())
	assert.ErrorIs(t, err, ErrNoBaseURL)
}

func TestClient_ContextCancelled(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(50 * time.Millisecond)
		_, _ = w.Write([]byte(dashboardJSON))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Dashboard(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&APIError{StatusCode: 404}))
	assert.False(t, IsNotFound(&APIError{StatusCode: 500}))
	assert.False(t, IsNotFound(errors.New("other")))
}
