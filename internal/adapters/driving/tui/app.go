package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/chartlens-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/chartlens-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/chartlens-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/chartlens-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/chartlens-cli/internal/adapters/driving/tui/views/dashboard"
	"github.com/custodia-labs/chartlens-cli/internal/adapters/driving/tui/views/docview"
	"github.com/custodia-labs/chartlens-cli/internal/adapters/driving/tui/views/patientdetail"
	"github.com/custodia-labs/chartlens-cli/internal/i18n"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the shared keybindings.
	keymap *keymap.KeyMap

	// dashboardView is the patient list view.
	dashboardView *dashboard.View

	// patientView is the patient detail view.
	patientView *patientdetail.View

	// documentView is the single-document reading view.
	documentView *docview.View

	// statusBar shows status and key hints.
	statusBar *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		dashboardView: dashboard.NewView(s, km, ports.Review),
		patientView:   patientdetail.NewView(s, km, ports.Review),
		documentView:  docview.NewView(s, km),
		statusBar:     status.NewBar(s, km),
		currentView:   messages.ViewDashboard,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.dashboardView.WithContext(ctx)
	a.patientView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	a.statusBar.SetState(status.StateLoading)
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("chartlens - Patient Review"),
		a.dashboardView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.dashboardView.SetDimensions(msg.Width, msg.Height)
		a.patientView.SetDimensions(msg.Width, msg.Height)
		a.documentView.SetDimensions(msg.Width, msg.Height)
		a.statusBar.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.DashboardLoaded:
		a.dashboardView, cmd = a.dashboardView.Update(msg)
		if msg.Err != nil {
			a.err = msg.Err
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage(msg.Err.Error())
			return a, cmd
		}
		a.err = nil
		a.statusBar.SetState(status.StateReady)
		a.statusBar.SetPatientCount(len(msg.Summaries))
		return a, cmd

	case messages.PatientSelected:
		a.currentView = messages.ViewPatient
		a.statusBar.SetState(status.StateLoading)
		return a, a.patientView.Load(msg.ID)

	case messages.PatientLoaded:
		a.patientView, cmd = a.patientView.Update(msg)
		if msg.Err != nil {
			a.err = msg.Err
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage(msg.Err.Error())
			return a, cmd
		}
		a.err = nil
		a.statusBar.SetState(status.StateReady)
		return a, cmd

	case messages.TimelineLoaded:
		a.patientView, cmd = a.patientView.Update(msg)
		if msg.Err != nil {
			a.err = msg.Err
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage(msg.Err.Error())
		}
		return a, cmd

	case messages.MilestonesChanged:
		// The patient view owns the timeline panel regardless of which view
		// is on screen.
		a.patientView, cmd = a.patientView.Update(msg)
		return a, cmd

	case messages.DocumentSelected:
		patient := a.patientView.Patient()
		if patient == nil || msg.Index >= len(patient.Documents) {
			return a, nil
		}
		a.documentView.Show(&patient.Documents[msg.Index], patient.Questions)
		a.currentView = messages.ViewDocument
		return a, nil

	case messages.LanguageChanged:
		if msg.Err != nil {
			a.err = msg.Err
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage(msg.Err.Error())
			return a, nil
		}
		if a.ports.Settings != nil {
			lang := a.ports.Settings.Language()
			a.statusBar.SetState(status.StateReady)
			a.statusBar.SetMessage(fmt.Sprintf("language: %s", lang.Description()))
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.SetState(status.StateError)
		if msg.Err != nil {
			a.statusBar.SetMessage(msg.Err.Error())
		}
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewDashboard:
		a.dashboardView, cmd = a.dashboardView.Update(msg)
	case messages.ViewPatient:
		a.patientView, cmd = a.patientView.Update(msg)
	case messages.ViewDocument:
		a.documentView, cmd = a.documentView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't handle other messages
	}

	return a, cmd
}

// handleKeyMsg routes keyboard input: global bindings first, then the
// active view.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case a.keymap.Matches(msg, a.keymap.Quit):
		return a, tea.Quit

	case a.keymap.Matches(msg, a.keymap.Help):
		if a.currentView == messages.ViewHelp {
			a.currentView = messages.ViewDashboard
			a.statusBar.SetState(status.StateReady)
		} else {
			a.currentView = messages.ViewHelp
			a.statusBar.SetState(status.StateHelp)
		}
		return a, nil

	case a.keymap.Matches(msg, a.keymap.Language):
		return a, a.toggleLanguage()

	case a.keymap.Matches(msg, a.keymap.Back):
		switch a.currentView {
		case messages.ViewDocument:
			a.currentView = messages.ViewPatient
		case messages.ViewPatient, messages.ViewHelp:
			a.currentView = messages.ViewDashboard
		case messages.ViewDashboard:
			// Nothing to go back to
		}
		return a, nil
	}

	switch a.currentView {
	case messages.ViewDashboard:
		a.dashboardView, cmd = a.dashboardView.Update(msg)
	case messages.ViewPatient:
		a.patientView, cmd = a.patientView.Update(msg)
	case messages.ViewDocument:
		a.documentView, cmd = a.documentView.Update(msg)
	case messages.ViewHelp:
		// Help view only reacts to the global bindings above
	}

	return a, cmd
}

// toggleLanguage switches the UI language between the supported pair.
func (a *App) toggleLanguage() tea.Cmd {
	settings := a.ports.Settings
	if settings == nil {
		return nil
	}
	return func() tea.Msg {
		next := i18n.Czech
		if settings.Language() == i18n.Czech {
			next = i18n.English
		}
		return messages.LanguageChanged{Err: settings.SetLanguage(next)}
	}
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewDashboard:
		body = a.dashboardView.View()
	case messages.ViewPatient:
		body = a.patientView.View()
	case messages.ViewDocument:
		body = a.documentView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.dashboardView.View()
	}

	return body + "\n" + a.statusBar.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back
  ctrl+c, q   Quit

Patients:
  j/k, ↑/↓    Navigate patients
  enter       Open patient
  r           Reload

Patient:
  j/k, ↑/↓    Navigate documents
  enter       Open document
  t           Toggle timeline

Document:
  j/k, ↑/↓    Scroll

Global:
  l           Switch language
  ?           Toggle this help

[esc] back`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.dashboardView.SetDimensions(width, height)
	a.patientView.SetDimensions(width, height)
	a.documentView.SetDimensions(width, height)
	a.statusBar.SetWidth(width)
}
