// Package docview provides the single-document reading view for the TUI.
package docview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/chartlens-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/chartlens-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/chartlens-cli/internal/core/domain"
	"github.com/custodia-labs/chartlens-cli/internal/core/ports/driving"
)

const dateLayout = "2006-01-02"

// View renders one document's text with its highlight fragments styled.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	width  int
	height int
	offset int

	document *driving.DocumentView
	// lightHex maps question IDs to the lightened highlight backgrounds
	// resolved for the patient's question batch.
	lightHex map[string]string
}

// NewView creates a new document view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles: s,
		keymap: km,
		width:  80,
		height: 24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Show sets the document to display and resets scrolling. The questions
// supply the highlight backgrounds for the document's fragments.
func (v *View) Show(doc *driving.DocumentView, questions []driving.QuestionView) {
	v.document = doc
	v.offset = 0
	v.lightHex = make(map[string]string, len(questions))
	for _, q := range questions {
		v.lightHex[q.ID] = q.LightHex
	}
}

// Update handles document view messages.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch {
	case v.keymap.Matches(keyMsg, v.keymap.Up):
		if v.offset > 0 {
			v.offset--
		}
	case v.keymap.Matches(keyMsg, v.keymap.Down):
		if v.offset < v.maxOffset() {
			v.offset++
		}
	}

	return v, nil
}

// View renders the document.
func (v *View) View() string {
	if v.document == nil {
		return v.styles.Muted.Render("No document selected.") + "\n"
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render(v.document.Type))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%s  %s",
		v.document.ID, v.document.Date.Format(dateLayout))))
	b.WriteString("\n\n")

	lines := v.bodyLines()
	visible := v.visibleHeight()
	end := v.offset + visible
	if end > len(lines) {
		end = len(lines)
	}
	for _, line := range lines[v.offset:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(lines) > visible {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(
			fmt.Sprintf("lines %d-%d of %d", v.offset+1, end, len(lines))))
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("up/down: scroll | esc: back | q: quit"))

	return b.String()
}

// bodyLines renders the fragment sequence and splits it into lines.
func (v *View) bodyLines() []string {
	var b strings.Builder
	for _, frag := range v.document.Fragments {
		if frag.Kind == domain.FragmentHighlight {
			b.WriteString(v.styles.Highlight(v.lightHex[frag.QuestionID]).Render(frag.Content))
			continue
		}
		b.WriteString(v.styles.Normal.Render(frag.Content))
	}
	return strings.Split(b.String(), "\n")
}

// visibleHeight is the number of body lines that fit the viewport.
func (v *View) visibleHeight() int {
	// header, blank line, footer hint and scroll indicator
	h := v.height - 6
	if h < 1 {
		h = 1
	}
	return h
}

// maxOffset is the largest scroll offset that still shows content.
func (v *View) maxOffset() int {
	if v.document == nil {
		return 0
	}
	max := len(v.bodyLines()) - v.visibleHeight()
	if max < 0 {
		return 0
	}
	return max
}

// SetDimensions updates the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	if v.offset > v.maxOffset() {
		v.offset = v.maxOffset()
	}
}

// Document returns the document being shown.
func (v *View) Document() *driving.DocumentView {
	return v.document
}

// Offset returns the current scroll offset.
func (v *View) Offset() int {
	return v.offset
}
