package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/chartlens-cli/internal/core/domain"
	"github.com/custodia-labs/chartlens-cli/internal/core/palette"
	"github.com/custodia-labs/chartlens-cli/internal/core/ports/driving"
)

// dateLayout is the calendar-date format used in tool input and output.
const dateLayout = "2006-01-02"

// ListPatientsInput is the input schema for the list_patients tool.
type ListPatientsInput struct{}

// ListPatientsOutput is the output schema for the list_patients tool.
type ListPatientsOutput struct {
	Patients []PatientSummaryOutput `json:"patients"`
	Count    int                    `json:"count"`
}

// PatientSummaryOutput is one dashboard row.
type PatientSummaryOutput struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	ShortSummary      string `json:"short_summary,omitempty"`
	DocumentsTotal    int    `json:"documents_total"`
	RelevantDocuments int    `json:"relevant_documents"`
	StartDate         string `json:"start_date,omitempty"`
	EndDate           string `json:"end_date,omitempty"`
	Difficulty        int    `json:"difficulty"`
	AnsweredQuestions int    `json:"answered_questions"`
}

// GetPatientInput is the input schema for the get_patient tool.
type GetPatientInput struct {
	PatientID string `json:"patient_id" jsonschema:"the patient identifier from list_patients"`
}

// GetPatientOutput is the output schema for the get_patient tool.
type GetPatientOutput struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	LongSummary string           `json:"long_summary,omitempty"`
	Questions   []QuestionOutput `json:"questions"`
	Documents   []DocumentOutput `json:"documents"`
	Types       []string         `json:"types,omitempty"`
}

// QuestionOutput is one colour-coded clinical question.
type QuestionOutput struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Color    string `json:"color"`
	ColorHex string `json:"color_hex"`
}

// DocumentOutput is one record split into render fragments.
type DocumentOutput struct {
	ID        string           `json:"id"`
	Date      string           `json:"date,omitempty"`
	Type      string           `json:"type,omitempty"`
	Fragments []FragmentOutput `json:"fragments"`
	Colors    []string         `json:"colors,omitempty"`
}

// FragmentOutput is one contiguous piece of document text.
type FragmentOutput struct {
	Kind       string `json:"kind"`
	Content    string `json:"content"`
	Color      string `json:"color,omitempty"`
	QuestionID string `json:"question_id,omitempty"`
}

// GetTimelineInput is the input schema for the get_timeline tool.
type GetTimelineInput struct {
	PatientID   string   `json:"patient_id" jsonschema:"the patient identifier from list_patients"`
	Types       []string `json:"types,omitempty" jsonschema:"restrict to these document types"`
	Colors      []string `json:"colors,omitempty" jsonschema:"milestone colours to mark active"`
	CurrentDate string   `json:"current_date,omitempty" jsonschema:"viewport date in YYYY-MM-DD form"`
}

// GetTimelineOutput is the output schema for the get_timeline tool.
type GetTimelineOutput struct {
	Points          []TimelinePointOutput  `json:"points"`
	Milestones      []MilestonePointOutput `json:"milestones,omitempty"`
	CurrentPosition *float64               `json:"current_position,omitempty"`
}

// TimelinePointOutput is one document date on the normalized axis.
type TimelinePointOutput struct {
	Date      string            `json:"date"`
	Position  float64           `json:"position"`
	Colors    []string          `json:"colors,omitempty"`
	SourceIDs map[string]string `json:"source_ids,omitempty"`
}

// MilestonePointOutput is one milestone marker on the normalized axis.
type MilestonePointOutput struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Position    float64 `json:"position"`
	Color       string  `json:"color"`
	Description string  `json:"description,omitempty"`
	IsActive    bool    `json:"is_active"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_patients",
		Description: "List all patients in the current review batch",
	}, s.handleListPatients)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_patient",
		Description: "Get one patient's questions and highlighted documents",
	}, s.handleGetPatient)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_timeline",
		Description: "Project a patient's documents and milestones onto a 0-100 timeline",
	}, s.handleGetTimeline)
}

// handleListPatients handles the list_patients tool invocation.
func (s *Server) handleListPatients(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListPatientsInput,
) (*mcp.CallToolResult, ListPatientsOutput, error) {
	summaries, err := s.ports.Review.Dashboard(ctx)
	if err != nil {
		return nil, ListPatientsOutput{}, err
	}

	output := ListPatientsOutput{
		Patients: make([]PatientSummaryOutput, len(summaries)),
		Count:    len(summaries),
	}
	for i, sum := range summaries {
		output.Patients[i] = PatientSummaryOutput{
			ID:                sum.ID,
			Name:              sum.Name,
			ShortSummary:      sum.ShortSummary,
			DocumentsTotal:    sum.DocumentsTotal,
			RelevantDocuments: sum.RelevantDocumentsTotal,
			StartDate:         formatDate(sum.DocumentsStartDate),
			EndDate:           formatDate(sum.DocumentsEndDate),
			Difficulty:        sum.Difficulty,
			AnsweredQuestions: len(sum.AnsweredQuestions),
		}
	}
	return nil, output, nil
}

// handleGetPatient handles the get_patient tool invocation.
func (s *Server) handleGetPatient(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetPatientInput,
) (*mcp.CallToolResult, GetPatientOutput, error) {
	view, err := s.ports.Review.Patient(ctx, input.PatientID)
	if err != nil {
		return nil, GetPatientOutput{}, err
	}

	output := GetPatientOutput{
		ID:          view.ID,
		Name:        view.Name,
		LongSummary: view.LongSummary,
		Questions:   make([]QuestionOutput, len(view.Questions)),
		Documents:   make([]DocumentOutput, len(view.Documents)),
		Types:       view.Types,
	}

	for i, q := range view.Questions {
		output.Questions[i] = QuestionOutput{
			ID:       q.ID,
			Text:     q.DisplayText,
			Color:    q.Color.String(),
			ColorHex: q.Color.Hex(),
		}
	}

	for i, doc := range view.Documents {
		fragments := make([]FragmentOutput, len(doc.Fragments))
		for j, frag := range doc.Fragments {
			out := FragmentOutput{
				Kind:    string(frag.Kind),
				Content: frag.Content,
			}
			if frag.Kind == domain.FragmentHighlight {
				out.Color = frag.Color.String()
				out.QuestionID = frag.QuestionID
			}
			fragments[j] = out
		}
		output.Documents[i] = DocumentOutput{
			ID:        doc.ID,
			Date:      formatDate(doc.Date),
			Type:      doc.Type,
			Fragments: fragments,
			Colors:    colorNames(doc.Colors),
		}
	}

	return nil, output, nil
}

// handleGetTimeline handles the get_timeline tool invocation.
func (s *Server) handleGetTimeline(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetTimelineInput,
) (*mcp.CallToolResult, GetTimelineOutput, error) {
	opts := driving.TimelineOptions{Types: input.Types}

	if len(input.Colors) > 0 {
		opts.ActiveColors = make(map[palette.ColorID]struct{}, len(input.Colors))
		for _, c := range input.Colors {
			opts.ActiveColors[palette.ColorID(c)] = struct{}{}
		}
	}

	if input.CurrentDate != "" {
		current, err := time.Parse(dateLayout, input.CurrentDate)
		if err != nil {
			return nil, GetTimelineOutput{}, err
		}
		opts.CurrentDate = &current
	}

	projection, err := s.ports.Review.Timeline(ctx, input.PatientID, opts)
	if err != nil {
		return nil, GetTimelineOutput{}, err
	}

	output := GetTimelineOutput{
		Points:          make([]TimelinePointOutput, len(projection.Points)),
		CurrentPosition: projection.CurrentPosition,
	}

	for i, p := range projection.Points {
		var sources map[string]string
		if len(p.SourceIDs) > 0 {
			sources = make(map[string]string, len(p.SourceIDs))
			for color, id := range p.SourceIDs {
				sources[color.String()] = id
			}
		}
		output.Points[i] = TimelinePointOutput{
			Date:      formatDate(p.Date),
			Position:  p.Position,
			Colors:    colorNames(p.Colors),
			SourceIDs: sources,
		}
	}

	for _, m := range projection.Milestones {
		output.Milestones = append(output.Milestones, MilestonePointOutput{
			ID:          m.ID,
			Date:        formatDate(m.Date),
			Position:    m.Position,
			Color:       m.Color.String(),
			Description: m.Description,
			IsActive:    m.IsActive,
		})
	}

	return nil, output, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func colorNames(colors []palette.ColorID) []string {
	if len(colors) == 0 {
		return nil
	}
	names := make([]string, len(colors))
	for i, c := range colors {
		names[i] = c.String()
	}
	return names
}
