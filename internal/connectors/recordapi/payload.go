package recordapi

// Payload DTOs mirror the upstream JSON exactly. They are resolved into
// domain values (with defaulting for missing optional fields) in resolver.go
// and never leak past this package.

// FlexID tolerates the upstream API serialising identifiers as either JSON
// numbers or strings. Either form decodes to its string representation.
type FlexID string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "null" {
		s = ""
	}
	*f = FlexID(s)
	return nil
}

// String returns the identifier as a string.
func (f FlexID) String() string {
	return string(f)
}

// DashboardPayload is the response of GET /api/dashboard.
type DashboardPayload struct {
	Summary        string           `json:"summary"`
	Patients       []PatientSummary `json:"patients"`
	DocumentsTotal int              `json:"documents_total"`
}

// PatientSummary is one dashboard row.
type PatientSummary struct {
	ID                     FlexID     `json:"id"`
	Name                   string     `json:"name"`
	ShortSummary           string     `json:"short_summary"`
	DocumentsTotal         int        `json:"documents_total"`
	RelevantDocumentsTotal int        `json:"relevant_documents_total"`
	DocumentsStartDate     string     `json:"documents_start_date"`
	DocumentsEndDate       string     `json:"documents_end_date"`
	Difficulty             int        `json:"difficulty"`
	AnsweredQuestions      []Question `json:"answered_questions"`
	UnansweredQuestions    []Question `json:"unanswered_questions"`
}

// Question is a question type as serialised upstream. DocumentsCount is only
// present on answered questions.
type Question struct {
	ID             FlexID `json:"id"`
	Name           string `json:"name"`
	RGBColor       string `json:"rgb_color"`
	DocumentsCount int    `json:"documents_count"`
}

// PatientPayload is the response of GET /api/patient/{id}.
type PatientPayload struct {
	Name           string     `json:"name"`
	LongSummary    string     `json:"long_summary"`
	QuestionsTypes []Question `json:"questions_types"`
	Documents      []Document `json:"documents"`
}

// Document is one record with its extraction findings.
type Document struct {
	ID                  FlexID               `json:"id"`
	Date                string               `json:"date"`
	Type                string               `json:"type"`
	Text                string               `json:"text"`
	Highlights          []Highlight          `json:"highlights"`
	CommentedHighlights []CommentedHighlight `json:"commented_highlights"`
}

// Highlight is a finding span in upstream offset encoding.
type Highlight struct {
	QuestionID  FlexID   `json:"question_id"`
	OffsetStart int      `json:"offset_start"`
	OffsetEnd   int      `json:"offset_end"`
	Confidence  *float64 `json:"confidence,omitempty"`
}

// CommentedHighlight is a reviewer-annotated span.
type CommentedHighlight struct {
	OffsetStart int    `json:"offset_start"`
	OffsetEnd   int    `json:"offset_end"`
	Description string `json:"description"`
}
