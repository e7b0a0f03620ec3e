// ML-Restaurant-Recommendations - Hybrid Restaurant Recommendation Engine
// Copyright 2026 Ayush Saxena (iamAyushSaxena)
// SPDX-License-Identifier: MIT
// https://github.com/iamAyushSaxena/ML-Restaurant-Recommendations

// Package models defines the shared API response envelope.
package models

import (
	"time"
)

// APIResponse is the standardized wrapper used by all HTTP endpoints,
// for both successful and error responses.
//
// Status field values:
//   - "success": request completed, see Data
//   - "error": request failed, see Error
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"recommendations": [...]},
//	  "metadata": {
//	    "timestamp": "2026-08-29T12:00:00Z",
//	    "query_time_ms": 12,
//	    "request_id": "d3b0..."
//	  }
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries per-response observability fields.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError is the structured error payload.
//
// Common error codes:
//   - VALIDATION_ERROR: invalid input parameters
//   - NOT_FOUND: resource doesn't exist
//   - NOT_READY: engine has no fitted dataset yet
//   - RATE_LIMIT_EXCEEDED: too many requests
//   - INTERNAL_ERROR: unexpected failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
