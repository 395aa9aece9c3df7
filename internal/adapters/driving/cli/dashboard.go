package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/chartlens-cli/internal/core/domain"
	"github.com/custodia-labs/chartlens-cli/internal/i18n"
)

var dashboardJSON bool

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "List patients in the current review batch",
	Long: `Lists every patient in the batch with record counts, the covered
date range, and how many clinical questions the records answer.`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func init() {
	dashboardCmd.Flags().BoolVar(&dashboardJSON, "json", false, "output rows as JSON")
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	if reviewService == nil {
		return errors.New("review service not configured")
	}

	summaries, err := reviewService.Dashboard(cmd.Context())
	if err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}

	if dashboardJSON {
		return outputDashboardJSON(cmd, summaries)
	}

	return outputDashboardTable(cmd, summaries)
}

func outputDashboardJSON(cmd *cobra.Command, summaries []domain.PatientSummary) error {
	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal rows: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputDashboardTable(cmd *cobra.Command, summaries []domain.PatientSummary) error {
	if len(summaries) == 0 {
		cmd.Println("No patients in the current batch.")
		return nil
	}

	lang := uiLanguage()

	cmd.Println("Patients:")
	cmd.Println()
	for i := range summaries {
		row := &summaries[i]

		cmd.Printf("  [%s] %s\n", row.ID, row.Name)
		cmd.Printf("      %d %s, %d %s\n",
			row.DocumentsTotal, documentsWord(lang, row.DocumentsTotal),
			row.RelevantDocumentsTotal, relevantWord(lang, row.RelevantDocumentsTotal))
		if !row.DocumentsStartDate.IsZero() && !row.DocumentsEndDate.IsZero() {
			cmd.Printf("      %s to %s\n",
				row.DocumentsStartDate.Format("2006-01-02"),
				row.DocumentsEndDate.Format("2006-01-02"))
		}
		if row.ShortSummary != "" {
			cmd.Printf("      %s\n", row.ShortSummary)
		}
		cmd.Printf("      Difficulty: %d/5, answered: %d, unanswered: %d\n",
			row.Difficulty, len(row.AnsweredQuestions), len(row.UnansweredQuestions))
		cmd.Println()
	}

	return nil
}

// uiLanguage resolves the display language, tolerating a missing settings
// service.
func uiLanguage() i18n.Language {
	if settingsService == nil {
		return i18n.Default
	}
	return settingsService.Language()
}

func documentsWord(lang i18n.Language, n int) string {
	if lang == i18n.Czech {
		return i18n.Plural(lang, n, "dokument", "dokumenty", "dokumentů")
	}
	return i18n.Plural(lang, n, "document", "documents")
}

func relevantWord(lang i18n.Language, n int) string {
	if lang == i18n.Czech {
		return i18n.Plural(lang, n, "relevantní dokument", "relevantní dokumenty", "relevantních dokumentů")
	}
	return i18n.Plural(lang, n, "relevant", "relevant")
}
