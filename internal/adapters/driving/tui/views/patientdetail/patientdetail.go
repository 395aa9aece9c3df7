// Package patientdetail provides the patient detail view for the TUI.
package patientdetail

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/chartlens-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/chartlens-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/chartlens-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/chartlens-cli/internal/core/domain"
	"github.com/custodia-labs/chartlens-cli/internal/core/ports/driving"
)

const dateLayout = "2006-01-02"

// View is the patient detail view: questions, document list and an
// optional timeline panel.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	review  driving.ReviewService
	ctx     context.Context
	width   int
	height  int
	cursor  int
	loading bool
	err     error

	patientID    string
	patient      *driving.PatientView
	projection   *domain.Projection
	showTimeline bool

	// watch carries milestone updates while the service supports watching;
	// waiting guards against stacking more than one pending receive.
	watch   <-chan []domain.Milestone
	waiting bool
}

// NewView creates a new patient detail view.
func NewView(s *styles.Styles, km *keymap.KeyMap, review driving.ReviewService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles: s,
		keymap: km,
		review: review,
		ctx:    context.Background(),
		width:  80,
		height: 24,
	}
}

// WithContext sets the context used for loading.
func (v *View) WithContext(ctx context.Context) *View {
	if ctx != nil {
		v.ctx = ctx
	}
	return v
}

// Init is a no-op; loading starts when a patient is selected.
func (v *View) Init() tea.Cmd {
	return nil
}

// Load resets the view for a patient and starts loading its detail.
func (v *View) Load(patientID string) tea.Cmd {
	v.patientID = patientID
	v.patient = nil
	v.projection = nil
	v.showTimeline = false
	v.cursor = 0
	v.loading = true
	v.err = nil
	return v.loadPatient()
}

// loadPatient fetches the patient detail from the review service.
func (v *View) loadPatient() tea.Cmd {
	ctx := v.ctx
	review := v.review
	id := v.patientID
	return func() tea.Msg {
		if review == nil {
			return messages.PatientLoaded{Err: domain.ErrRecordsUnavailable}
		}
		patient, err := review.Patient(ctx, id)
		return messages.PatientLoaded{View: patient, Err: err}
	}
}

// loadTimeline fetches the timeline projection for the patient.
func (v *View) loadTimeline() tea.Cmd {
	ctx := v.ctx
	review := v.review
	id := v.patientID
	return func() tea.Msg {
		if review == nil {
			return messages.TimelineLoaded{PatientID: id, Err: domain.ErrRecordsUnavailable}
		}
		projection, err := review.Timeline(ctx, id, driving.TimelineOptions{})
		return messages.TimelineLoaded{PatientID: id, Projection: projection, Err: err}
	}
}

// armMilestoneWatch subscribes to milestone store changes and issues one
// pending receive. Each delivery triggers a timeline reload, whose
// TimelineLoaded re-arms the watch.
func (v *View) armMilestoneWatch() tea.Cmd {
	if v.review == nil || v.waiting {
		return nil
	}
	if v.watch == nil {
		v.watch = v.review.WatchMilestones(v.ctx)
		if v.watch == nil {
			return nil
		}
	}
	v.waiting = true
	ch := v.watch
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return messages.MilestonesChanged{}
	}
}

// Update handles patient detail messages.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.PatientLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.patient = msg.View
		return v, nil

	case messages.TimelineLoaded:
		if msg.PatientID != v.patientID {
			return v, nil
		}
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.projection = msg.Projection
		v.showTimeline = true
		return v, v.armMilestoneWatch()

	case messages.MilestonesChanged:
		v.waiting = false
		if v.patientID == "" || v.projection == nil {
			return v, v.armMilestoneWatch()
		}
		return v, v.loadTimeline()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg handles keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case v.keymap.Matches(msg, v.keymap.Up):
		if v.cursor > 0 {
			v.cursor--
		}
		return v, nil

	case v.keymap.Matches(msg, v.keymap.Down):
		if v.patient != nil && v.cursor < len(v.patient.Documents)-1 {
			v.cursor++
		}
		return v, nil

	case v.keymap.Matches(msg, v.keymap.Select):
		if v.patient != nil && v.cursor < len(v.patient.Documents) {
			id := v.patientID
			index := v.cursor
			return v, func() tea.Msg {
				return messages.DocumentSelected{PatientID: id, Index: index}
			}
		}
		return v, nil

	case v.keymap.Matches(msg, v.keymap.Timeline):
		if v.showTimeline {
			v.showTimeline = false
			return v, nil
		}
		if v.projection != nil {
			v.showTimeline = true
			return v, nil
		}
		return v, v.loadTimeline()

	case v.keymap.Matches(msg, v.keymap.Reload):
		if v.patientID != "" {
			return v, v.Load(v.patientID)
		}
		return v, nil
	}

	return v, nil
}

// View renders the patient detail.
func (v *View) View() string {
	var b strings.Builder

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading patient..."))
		b.WriteString("\n")
		return b.String()
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Failed to load patient: %v", v.err)))
		b.WriteString("\n")
		return b.String()
	case v.patient == nil:
		b.WriteString(v.styles.Muted.Render("No patient selected."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(v.styles.Title.Render(v.patient.Name))
	b.WriteString("\n\n")

	if v.patient.LongSummary != "" {
		b.WriteString(v.styles.Normal.Render(v.patient.LongSummary))
		b.WriteString("\n\n")
	}

	if len(v.patient.Questions) > 0 {
		b.WriteString(v.styles.Subtitle.Render("Questions"))
		b.WriteString("\n")
		for _, q := range v.patient.Questions {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				v.styles.Dot(q.Color).Render("●"),
				v.styles.Normal.Render(q.DisplayText),
			))
		}
		b.WriteString("\n")
	}

	b.WriteString(v.styles.Subtitle.Render("Documents"))
	b.WriteString("\n")
	if len(v.patient.Documents) == 0 {
		b.WriteString(v.styles.Muted.Render("  No documents."))
		b.WriteString("\n")
	}
	for i, doc := range v.patient.Documents {
		b.WriteString(v.renderDocumentRow(i, doc))
		b.WriteString("\n")
	}

	if v.showTimeline && v.projection != nil {
		b.WriteString("\n")
		b.WriteString(v.renderTimeline())
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderDocumentRow renders one document list row with its colour dots.
func (v *View) renderDocumentRow(i int, doc driving.DocumentView) string {
	dots := make([]string, 0, len(doc.Colors))
	for _, c := range doc.Colors {
		dots = append(dots, v.styles.Dot(c).Render("●"))
	}

	line := fmt.Sprintf("%s  %s", doc.Date.Format(dateLayout), doc.Type)
	if len(dots) > 0 {
		line += "  " + strings.Join(dots, " ")
	}

	if i == v.cursor {
		return v.styles.Selected.Render("> ") + line
	}
	return "  " + line
}

// renderTimeline renders the projection panel.
func (v *View) renderTimeline() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Timeline"))
	b.WriteString("\n")

	if v.projection.Empty() {
		b.WriteString(v.styles.Muted.Render("  Nothing to project."))
		b.WriteString("\n")
		return b.String()
	}

	for _, point := range v.projection.Points {
		dots := make([]string, 0, len(point.Colors))
		for _, c := range point.Colors {
			dots = append(dots, v.styles.Dot(c).Render("●"))
		}
		b.WriteString(fmt.Sprintf("  %s  %5.1f%%  %s\n",
			point.Date.Format(dateLayout),
			point.Position,
			strings.Join(dots, " "),
		))
	}

	for _, m := range v.projection.Milestones {
		label := m.Description
		if !m.IsActive {
			label += " (inactive)"
		}
		b.WriteString(fmt.Sprintf("  %s  %5.1f%%  %s %s\n",
			m.Date.Format(dateLayout),
			m.Position,
			v.styles.Dot(m.Color).Render("^"),
			v.styles.Muted.Render(label),
		))
	}

	return b.String()
}

// renderHelp renders the footer hint line.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("up/down: navigate | enter: open document | t: timeline | esc: back")
}

// SetDimensions updates the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Cursor returns the current cursor position.
func (v *View) Cursor() int {
	return v.cursor
}

// PatientID returns the id of the patient being shown.
func (v *View) PatientID() string {
	return v.patientID
}

// Patient returns the loaded patient view.
func (v *View) Patient() *driving.PatientView {
	return v.patient
}

// Loading reports whether the view is loading.
func (v *View) Loading() bool {
	return v.loading
}

// TimelineVisible reports whether the timeline panel is shown.
func (v *View) TimelineVisible() bool {
	return v.showTimeline
}

// Err returns the last load error, if any.
func (v *View) Err() error {
	return v.err
}
