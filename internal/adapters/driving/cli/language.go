package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/chartlens-cli/internal/i18n"
)

var languageCmd = &cobra.Command{
	Use:   "language",
	Short: "Show or set the UI language",
	Long: `Shows the current UI language, or sets it when a code is given.

Supported languages:
  en - English (default)
  cs - Čeština

The preference is persisted and survives restarts. An unsupported stored
value silently falls back to English.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLanguage,
}

func init() {
	rootCmd.AddCommand(languageCmd)
}

func runLanguage(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if len(args) == 0 {
		lang := settingsService.Language()
		cmd.Printf("Current language: %s (%s)\n", lang, lang.Description())
		return nil
	}

	lang := i18n.Language(args[0])
	if err := settingsService.SetLanguage(lang); err != nil {
		return fmt.Errorf("failed to set language: %w", err)
	}

	cmd.Printf("Language set to: %s (%s)\n", lang, lang.Description())
	return nil
}
