package recordapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/chartlens-cli/internal/core/domain"
	"github.com/custodia-labs/chartlens-cli/internal/logger"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// requestsPerSecond caps request rate against the upstream API.
	requestsPerSecond = 10

	// maxBodyBytes bounds how much of an error response body is read.
	maxBodyBytes = 4 << 10
)

// Client is the HTTP client for the record API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Useful for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a record API client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dashboard fetches and resolves the batch dashboard.
func (c *Client) Dashboard(ctx context.Context) ([]domain.PatientSummary, error) {
	var payload DashboardPayload
	if err := c.getJSON(ctx, "/api/dashboard", &payload); err != nil {
		return nil, err
	}
	logger.Debug("recordapi: dashboard with %d patients", len(payload.Patients))
	return resolveDashboard(&payload), nil
}

// Patient fetches and resolves one patient's detail payload.
// A 404 response maps to domain.ErrNotFound.
func (c *Client) Patient(ctx context.Context, id string) (*domain.Patient, error) {
	if id == "" {
		return nil, ErrEmptyPatientID
	}

	var payload PatientPayload
	err := c.getJSON(ctx, "/api/patient/"+url.PathEscape(id), &payload)
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("patient %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	logger.Debug("recordapi: patient %s with %d documents", id, len(payload.Documents))
	return resolvePatient(id, &payload), nil
}

// getJSON performs a rate-limited GET and decodes the JSON response.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	if c.baseURL == "" {
		return ErrNoBaseURL
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
			URL:        reqURL,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
