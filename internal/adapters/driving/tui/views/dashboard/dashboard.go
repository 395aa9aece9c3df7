// Package dashboard provides the patient list view for the TUI.
package dashboard

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

// View is the patient dashboard list view.
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

	summaries []domain.PatientSummary
}

// NewView creates a new dashboard view.
func NewView(s *styles.Styles, km *keymap.KeyMap, review driving.ReviewService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:  s,
		keymap:  km,
		review:  review,
		ctx:     context.Background(),
		width:   80,
		height:  24,
		loading: true,
	}
}

// WithContext sets the context used for loading patients.
func (v *View) WithContext(ctx context.Context) *View {
	if ctx != nil {
		v.ctx = ctx
	}
	return v
}

// Init starts loading the dashboard.
func (v *View) Init() tea.Cmd {
	return v.loadDashboard()
}

// loadDashboard fetches patient summaries from the review service.
func (v *View) loadDashboard() tea.Cmd {
	ctx := v.ctx
	review := v.review
	return func() tea.Msg {
		if review == nil {
			return messages.DashboardLoaded{Err: domain.ErrRecordsUnavailable}
		}
		summaries, err := review.Dashboard(ctx)
		return messages.DashboardLoaded{Summaries: summaries, Err: err}
	}
}

// Update handles dashboard messages.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.DashboardLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.summaries = msg.Summaries
		if v.cursor >= len(v.summaries) {
			v.cursor = 0
		}
		return v, nil

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
		if v.cursor < len(v.summaries)-1 {
			v.cursor++
		}
		return v, nil

	case v.keymap.Matches(msg, v.keymap.Select):
		if v.cursor < len(v.summaries) {
			id := v.summaries[v.cursor].ID
			return v, func() tea.Msg {
				return messages.PatientSelected{ID: id}
			}
		}
		return v, nil

	case v.keymap.Matches(msg, v.keymap.Reload):
		v.loading = true
		v.err = nil
		return v, v.loadDashboard()
	}

	return v, nil
}

// View renders the dashboard.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Patients"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading patients..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Failed to load patients: %v", v.err)))
	case len(v.summaries) == 0:
		b.WriteString(v.styles.Muted.Render("No patients found."))
	default:
		for i, summary := range v.summaries {
			b.WriteString(v.renderRow(i, summary))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderRow renders a single patient row.
func (v *View) renderRow(i int, summary domain.PatientSummary) string {
	line := fmt.Sprintf("%s  %d/%d relevant docs  difficulty %d/5",
		summary.Name,
		summary.RelevantDocumentsTotal,
		summary.DocumentsTotal,
		summary.Difficulty,
	)
	if !summary.DocumentsStartDate.IsZero() && !summary.DocumentsEndDate.IsZero() {
		line += fmt.Sprintf("  %s to %s",
			summary.DocumentsStartDate.Format(dateLayout),
			summary.DocumentsEndDate.Format(dateLayout),
		)
	}

	if i == v.cursor {
		return v.styles.Selected.Render("> " + line)
	}
	return v.styles.Normal.Render("  " + line)
}

// renderHelp renders the footer hint line.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("up/down: navigate | enter: open | r: reload | q: quit")
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

// Summaries returns the loaded patient summaries.
func (v *View) Summaries() []domain.PatientSummary {
	return v.summaries
}

// Loading reports whether the view is loading.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the last load error, if any.
func (v *View) Err() error {
	return v.err
}
