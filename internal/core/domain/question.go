package domain

// Question is a clinical question (a colour-coded category) that highlight
// spans answer. Questions are unique per id within a patient record batch;
// insertion order is irrelevant.
type Question struct {
	// ID is the opaque identifier assigned upstream.
	ID string

	// DisplayText is the human-readable question text.
	DisplayText string

	// ColorValue is the raw colour assigned by upstream question metadata,
	// either "#rrggbb" or "rgb(r,g,b)". It is classified, never rendered
	// directly.
	ColorValue string
}

// QuestionStatus is a question together with how many of a patient's
// documents contain a span answering it. Zero means unanswered.
type QuestionStatus struct {
	Question

	// DocumentCount is the number of documents with at least one span for
	// this question.
	DocumentCount int
}

// Answered returns true if at least one document answers the question.
func (q QuestionStatus) Answered() bool {
	return q.DocumentCount > 0
}
