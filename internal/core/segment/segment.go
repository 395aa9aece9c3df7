// Package segment converts a document's raw text plus its highlight spans
// into an ordered sequence of plain and highlighted fragments for
// differential rendering. The transform is pure and synchronous: identical
// inputs always produce identical output.
package segment

import (
	"sort"

	"github.com/custodia-labs/chartlens-cli/internal/core/domain"
	"github.com/custodia-labs/chartlens-cli/internal/core/palette"
	"github.com/custodia-labs/chartlens-cli/internal/logger"
)

// Resolver maps a question id to its classified display colour.
// Unknown ids must resolve to palette.Neutral rather than fail.
type Resolver func(questionID string) palette.ColorID

// Segment splits text into fragments according to spans.
//
// Spans are stably sorted by start offset, so spans sharing a start keep
// their input order. A span overlapping an already-emitted highlight is
// clipped to begin at the current cursor and dropped entirely if nothing
// remains; out-of-range offsets are clamped to the text. The concatenation
// of all fragment contents always reproduces text exactly.
func Segment(text string, spans []domain.HighlightSpan, resolve Resolver) []domain.Fragment {
	if len(spans) == 0 {
		return []domain.Fragment{{Kind: domain.FragmentPlain, Content: text}}
	}

	sorted := make([]domain.HighlightSpan, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartOffset < sorted[j].StartOffset
	})

	fragments := make([]domain.Fragment, 0, 2*len(sorted)+1)
	cursor := 0

	for _, span := range sorted {
		span, ok := span.ClampTo(len(text))
		if !ok {
			logger.Debug("segment: dropping out-of-range span %d:%d (question %s)",
				span.StartOffset, span.EndOffset, span.QuestionID)
			continue
		}

		// Clip spans that overlap the previously emitted highlight.
		start := span.StartOffset
		if start < cursor {
			start = cursor
		}
		if start >= span.EndOffset {
			logger.Debug("segment: dropping fully overlapped span %d:%d (question %s)",
				span.StartOffset, span.EndOffset, span.QuestionID)
			continue
		}

		if start > cursor {
			fragments = append(fragments, domain.Fragment{
				Kind:    domain.FragmentPlain,
				Content: text[cursor:start],
			})
		}

		fragments = append(fragments, domain.Fragment{
			Kind:       domain.FragmentHighlight,
			Content:    text[start:span.EndOffset],
			Color:      resolveColor(resolve, span.QuestionID),
			QuestionID: span.QuestionID,
		})
		cursor = span.EndOffset
	}

	if cursor < len(text) {
		fragments = append(fragments, domain.Fragment{
			Kind:    domain.FragmentPlain,
			Content: text[cursor:],
		})
	}

	if len(fragments) == 0 {
		// Every span was dropped; behave like the no-span case.
		return []domain.Fragment{{Kind: domain.FragmentPlain, Content: text}}
	}

	return fragments
}

// resolveColor applies the resolver with the Neutral fallback.
func resolveColor(resolve Resolver, questionID string) palette.ColorID {
	if resolve == nil {
		return palette.Neutral
	}
	c := resolve(questionID)
	if !c.IsValid() {
		return palette.Neutral
	}
	return c
}
