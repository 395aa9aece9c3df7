// Package memory provides an in-memory implementation of the record client
// port. It backs service tests and the offline demo mode.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/chartlens-cli/internal/core/domain"
	"github.com/custodia-labs/chartlens-cli/internal/core/ports/driven"
)

// Ensure RecordClient implements the interface.
var _ driven.RecordClient = (*RecordClient)(nil)

// RecordClient is an in-memory implementation of driven.RecordClient.
type RecordClient struct {
	mu        sync.RWMutex
	summaries []domain.PatientSummary
	patients  map[string]domain.Patient
}

// NewRecordClient creates an empty in-memory record client.
func NewRecordClient() *RecordClient {
	return &RecordClient{
		patients: make(map[string]domain.Patient),
	}
}

// AddPatient stores a patient and its dashboard summary.
func (c *RecordClient) AddPatient(summary domain.PatientSummary, patient domain.Patient) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.summaries = append(c.summaries, summary)
	c.patients[patient.ID] = patient
}

// Dashboard returns all stored patient summaries.
func (c *RecordClient) Dashboard(_ context.Context) ([]domain.PatientSummary, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.PatientSummary, len(c.summaries))
	copy(out, c.summaries)
	return out, nil
}

// Patient returns one stored patient, or domain.ErrNotFound.
func (c *RecordClient) Patient(_ context.Context, id string) (*domain.Patient, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	patient, ok := c.patients[id]
	if !ok {
		return nil, fmt.Errorf("patient %s: %w", id, domain.ErrNotFound)
	}
	return &patient, nil
}
