package domain

import "time"

// PatientSummary is one dashboard row.
type PatientSummary struct {
	// ID is the unique patient identifier within the current batch.
	ID string

	// Name is the display name (the upstream pseudonymised patient id).
	Name string

	// ShortSummary is a one-paragraph abstract of the record set.
	ShortSummary string

	// DocumentsTotal is the number of records held for the patient.
	DocumentsTotal int

	// RelevantDocumentsTotal counts records with at least one finding.
	RelevantDocumentsTotal int

	// DocumentsStartDate is the date of the earliest record.
	DocumentsStartDate time.Time

	// DocumentsEndDate is the date of the latest record.
	DocumentsEndDate time.Time

	// Difficulty is a 0-5 review difficulty score derived upstream from the
	// answered/unanswered ratio.
	Difficulty int

	// AnsweredQuestions are questions with at least one finding, with
	// per-question document counts.
	AnsweredQuestions []QuestionStatus

	// UnansweredQuestions are questions with no finding anywhere in the
	// patient's records.
	UnansweredQuestions []Question
}

// Patient is the full detail view of one patient.
type Patient struct {
	// ID is the unique patient identifier within the current batch.
	ID string

	// Name is the display name.
	Name string

	// LongSummary is the full narrative summary.
	LongSummary string

	// Questions are all question types active for the batch.
	Questions []Question

	// Documents are the patient's records, sorted ascending by date.
	Documents []Document
}
