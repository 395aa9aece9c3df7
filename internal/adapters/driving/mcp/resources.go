package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/chartlens-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for ChartLens resources.
	uriScheme = "chartlens://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the patient dashboard.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "patients",
		Name:        "patients",
		Description: "All patients in the current review batch",
		MIMEType:    "application/json",
	}, s.handlePatientsResource)

	// Template for one patient's document list.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "patients/{patientId}/documents",
		Name:        "patient-documents",
		Description: "Documents held for a specific patient",
		MIMEType:    "application/json",
	}, s.handleDocumentsResource)

	// Template for one document's raw text.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "patients/{patientId}/documents/{documentId}",
		Name:        "document-text",
		Description: "Raw text of a specific document",
		MIMEType:    "text/plain",
	}, s.handleDocumentTextResource)
}

// handlePatientsResource returns the dashboard rows.
func (s *Server) handlePatientsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	summaries, err := s.ports.Review.Dashboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing patients: %w", err)
	}

	// Build simplified patient list.
	type patientInfo struct {
		ID             string `json:"id"`
		Name           string `json:"name"`
		DocumentsTotal int    `json:"documents_total"`
		Difficulty     int    `json:"difficulty"`
	}

	infos := make([]patientInfo, len(summaries))
	for i, sum := range summaries {
		infos[i] = patientInfo{
			ID:             sum.ID,
			Name:           sum.Name,
			DocumentsTotal: sum.DocumentsTotal,
			Difficulty:     sum.Difficulty,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling patients: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleDocumentsResource returns the document list for one patient.
func (s *Server) handleDocumentsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	patientID, _ := extractIDs(req.Params.URI)
	if patientID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	view, err := s.ports.Review.Patient(ctx, patientID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("fetching patient: %w", err)
	}

	// Build simplified document list.
	type docInfo struct {
		ID     string   `json:"id"`
		Date   string   `json:"date,omitempty"`
		Type   string   `json:"type,omitempty"`
		Colors []string `json:"colors,omitempty"`
	}

	infos := make([]docInfo, len(view.Documents))
	for i, doc := range view.Documents {
		infos[i] = docInfo{
			ID:     doc.ID,
			Date:   formatDate(doc.Date),
			Type:   doc.Type,
			Colors: colorNames(doc.Colors),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling documents: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleDocumentTextResource returns the raw text of one document.
func (s *Server) handleDocumentTextResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	patientID, documentID := extractIDs(req.Params.URI)
	if patientID == "" || documentID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	view, err := s.ports.Review.Patient(ctx, patientID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("fetching patient: %w", err)
	}

	for _, doc := range view.Documents {
		if doc.ID == documentID {
			return &mcp.ReadResourceResult{
				Contents: []*mcp.ResourceContents{{
					URI:      req.Params.URI,
					MIMEType: "text/plain",
					Text:     doc.Text,
				}},
			}, nil
		}
	}

	return nil, mcp.ResourceNotFoundError(req.Params.URI)
}

// extractIDs parses URIs of the forms
// chartlens://patients/{patientId}/documents and
// chartlens://patients/{patientId}/documents/{documentId}.
func extractIDs(uri string) (patientID, documentID string) {
	const prefix = uriScheme + "patients/"
	if !strings.HasPrefix(uri, prefix) {
		return "", ""
	}

	rest := strings.TrimPrefix(uri, prefix)
	parts := strings.Split(rest, "/")
	switch {
	case len(parts) == 2 && parts[1] == "documents":
		return parts[0], ""
	case len(parts) == 3 && parts[1] == "documents":
		return parts[0], parts[2]
	default:
		return "", ""
	}
}
