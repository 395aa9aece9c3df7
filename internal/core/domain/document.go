package domain

import (
	"time"

	"github.com/custodia-labs/chartlens-cli/internal/core/palette"
)

// HighlightSpan marks a character-offset range of a document's text as
// answering a question. Offsets are byte offsets into the UTF-8 text, the
// same indexing the upstream extraction pipeline uses.
type HighlightSpan struct {
	// QuestionID references the Question this span answers.
	QuestionID string

	// StartOffset is the inclusive start of the range.
	StartOffset int

	// EndOffset is the exclusive end of the range.
	EndOffset int

	// Confidence is the optional extraction confidence in [0,1].
	Confidence *float64
}

// ClampTo clips the span to [0, textLen] and reports whether a non-empty
// range remains. Out-of-range offsets are a recoverable defect of upstream
// data, never a reason to fail segmentation.
func (s HighlightSpan) ClampTo(textLen int) (HighlightSpan, bool) {
	clipped := s
	if clipped.StartOffset < 0 {
		clipped.StartOffset = 0
	}
	if clipped.EndOffset > textLen {
		clipped.EndOffset = textLen
	}
	if clipped.StartOffset >= clipped.EndOffset {
		return clipped, false
	}
	return clipped, true
}

// CommentedHighlight is a reviewer-annotated range with a free-text note.
// It is display metadata only and does not participate in segmentation.
type CommentedHighlight struct {
	StartOffset int
	EndOffset   int
	Description string
}

// Document is one dated record belonging to a patient. Documents are
// immutable for the duration of a view.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Date is the calendar date of the record, truncated to day resolution.
	Date time.Time

	// Type is the record type label (discharge report, lab result, ...).
	// May be empty.
	Type string

	// Text is the full raw text of the record.
	Text string

	// Spans are the highlight spans found by the extraction pipeline.
	// Order carries no meaning.
	Spans []HighlightSpan

	// Comments are reviewer-annotated highlights.
	Comments []CommentedHighlight
}

// Relevant returns true if the document answers at least one question.
func (d Document) Relevant() bool {
	return len(d.Spans) > 0
}

// Colors returns the set of display colours present on the document under
// the given question-to-colour resolution.
func (d Document) Colors(resolve func(questionID string) palette.ColorID) []palette.ColorID {
	if resolve == nil || len(d.Spans) == 0 {
		return nil
	}

	seen := make(map[palette.ColorID]struct{}, len(d.Spans))
	var colors []palette.ColorID
	for _, span := range d.Spans {
		c := resolve(span.QuestionID)
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		colors = append(colors, c)
	}
	return colors
}

// FragmentKind distinguishes plain from highlighted fragments.
type FragmentKind string

const (
	// FragmentPlain is unannotated text.
	FragmentPlain FragmentKind = "plain"

	// FragmentHighlight is text covered by a highlight span.
	FragmentHighlight FragmentKind = "highlight"
)

// Fragment is a contiguous piece of a document's text used for differential
// rendering. Fragments concatenate, in order, to exactly reconstruct the
// source text.
type Fragment struct {
	// Kind is plain or highlight.
	Kind FragmentKind

	// Content is the substring of the document text.
	Content string

	// Color is the classified display colour. Set only for highlights.
	Color palette.ColorID

	// QuestionID references the answered question. Set only for highlights.
	QuestionID string
}
