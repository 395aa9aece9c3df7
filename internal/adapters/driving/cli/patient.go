package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/chartlens-cli/internal/core/domain"
	"github.com/custodia-labs/chartlens-cli/internal/core/ports/driving"
)

var (
	patientJSON bool
	patientType string
)

var patientCmd = &cobra.Command{
	Use:   "patient [id]",
	Short: "Show one patient's highlighted documents",
	Long: `Shows a patient's clinical questions and every document split into
plain and highlighted fragments. Highlighted fragments are marked inline
with the colour of the question they answer:

  ...free text [red|extracted finding] more free text...

Use --type to restrict the output to one document type.`,
	Args: cobra.ExactArgs(1),
	RunE: runPatient,
}

func init() {
	patientCmd.Flags().BoolVar(&patientJSON, "json", false, "output the view as JSON")
	patientCmd.Flags().StringVarP(&patientType, "type", "t", "", "only show documents of this type")
	rootCmd.AddCommand(patientCmd)
}

func runPatient(cmd *cobra.Command, args []string) error {
	if reviewService == nil {
		return errors.New("review service not configured")
	}

	view, err := reviewService.Patient(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no patient with id %q", args[0])
		}
		return fmt.Errorf("patient lookup failed: %w", err)
	}

	if patientJSON {
		return outputPatientJSON(cmd, view)
	}

	return outputPatientText(cmd, view)
}

func outputPatientJSON(cmd *cobra.Command, view *driving.PatientView) error {
	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal view: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputPatientText(cmd *cobra.Command, view *driving.PatientView) error {
	cmd.Printf("Patient %s (%s)\n", view.Name, view.ID)
	if view.LongSummary != "" {
		cmd.Println()
		cmd.Println(view.LongSummary)
	}

	if len(view.Questions) > 0 {
		cmd.Println()
		cmd.Println("Questions:")
		for _, q := range view.Questions {
			cmd.Printf("  [%s] %s\n", q.Color, q.DisplayText)
		}
	}

	shown := 0
	for i := range view.Documents {
		doc := &view.Documents[i]
		if patientType != "" && doc.Type != patientType {
			continue
		}
		shown++

		cmd.Println()
		header := doc.ID
		if doc.Type != "" {
			header += " - " + doc.Type
		}
		if !doc.Date.IsZero() {
			header += " - " + doc.Date.Format("2006-01-02")
		}
		cmd.Printf("--- %s ---\n", header)
		cmd.Println(renderFragments(doc.Fragments))
	}

	if shown == 0 && patientType != "" {
		cmd.Println()
		cmd.Printf("No documents of type %q.\n", patientType)
	}

	return nil
}

// renderFragments marks highlights inline. Concatenating the unmarked
// fragment contents reproduces the original document text.
func renderFragments(fragments []domain.Fragment) string {
	var out string
	for _, frag := range fragments {
		if frag.Kind == domain.FragmentHighlight {
			out += fmt.Sprintf("[%s|%s]", frag.Color, frag.Content)
			continue
		}
		out += frag.Content
	}
	return out
}
