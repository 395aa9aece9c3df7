// Package cli provides the cobra command tree for ChartLens. Commands are
// registered in init functions and receive their services through package
// level injection points set up by the composition root.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/chartlens-cli/internal/core/ports/driving"
	"github.com/custodia-labs/chartlens-cli/internal/logger"
)

// version is the build version, injected by the composition root.
var version = "dev"

// Injected services. Commands must tolerate nil services and report a clear
// error instead of panicking.
var (
	reviewService   driving.ReviewService
	settingsService driving.SettingsService
)

// verbose enables debug logging for the process.
var verbose bool

// Backend selection flags, consumed by the composition root's selector.
var (
	apiURL string
	demo   bool
)

// backendSelector is registered by the composition root and invoked with the
// parsed backend flags before any command runs.
var backendSelector func(apiURL string, demo bool)

var rootCmd = &cobra.Command{
	Use:   "chartlens",
	Short: "Review highlighted patient records from the terminal",
	Long: `ChartLens is a terminal client for reviewing batches of patient
records annotated by an extraction pipeline. It renders documents with
colour-coded highlight spans, summarises which clinical questions each
patient's records answer, and projects record dates onto a proportional
timeline.

Run without arguments to launch the interactive TUI, or use subcommands
for scripted access to the same views.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
		if backendSelector != nil {
			backendSelector(apiURL, demo)
		}
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "record API base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&demo, "demo", false, "use the bundled demo records")
}

// SetVersion sets the build version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetServices injects the driving services used by all commands.
func SetServices(review driving.ReviewService, settings driving.SettingsService) {
	reviewService = review
	settingsService = settings
}

// SetBackendSelector registers a callback that re-selects the record backend
// from the --api and --demo flags once they are parsed.
func SetBackendSelector(fn func(apiURL string, demo bool)) {
	backendSelector = fn
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
