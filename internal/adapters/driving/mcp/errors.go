// Package mcp provides an MCP (Model Context Protocol) server adapter for
// ChartLens. It lets AI assistants browse patient record batches, read
// highlighted documents, and project review timelines.
package mcp

import "errors"

// ErrMissingReviewService is returned when the review service is not provided.
var ErrMissingReviewService = errors.New("mcp: review service is required")
