// ML-Restaurant-Recommendations - Hybrid Restaurant Recommendation Engine
// Copyright 2026 Ayush Saxena (iamAyushSaxena)
// SPDX-License-Identifier: MIT
// https://github.com/iamAyushSaxena/ML-Restaurant-Recommendations

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/iamAyushSaxena/ML-Restaurant-Recommendations/internal/logging"
	"github.com/iamAyushSaxena/ML-Restaurant-Recommendations/internal/models"
)

var validate = validator.New()

// sanitizeLogValue strips control characters so request-supplied values
// cannot forge log lines.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError sends an error response in the standard envelope.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().Str("code", code).Str("error", sanitizeLogValue(err.Error())).Msg("API error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// validateRequest validates a struct with go-playground/validator and
// converts the first failure into an APIError.
func validateRequest(v interface{}) *models.APIError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if fieldErrs, ok := err.(validator.ValidationErrors); ok {
		verrs = fieldErrs
	}
	if len(verrs) == 0 {
		return &models.APIError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	fe := verrs[0]
	return &models.APIError{
		Code:    "VALIDATION_ERROR",
		Message: fmt.Sprintf("invalid field %s (constraint: %s)", fe.Field(), fe.Tag()),
		Details: map[string]interface{}{
			"field":      fe.Field(),
			"constraint": fe.Tag(),
		},
	}
}

// getIntParam extracts an integer query parameter with a default.
func getIntParam(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// successResponse wraps data in the standard envelope with timing.
func successResponse(data interface{}, start time.Time, requestID string) *models.APIResponse {
	return &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
			RequestID:   requestID,
		},
	}
}
