// ML-Restaurant-Recommendations - Hybrid Restaurant Recommendation Engine
// Copyright 2026 Ayush Saxena (iamAyushSaxena)
// SPDX-License-Identifier: MIT
// https://github.com/iamAyushSaxena/ML-Restaurant-Recommendations

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/iamAyushSaxena/ML-Restaurant-Recommendations/internal/logging"
	"github.com/iamAyushSaxena/ML-Restaurant-Recommendations/internal/metrics"
	"github.com/iamAyushSaxena/ML-Restaurant-Recommendations/internal/recommend"
)

// Handler holds the API dependencies.
type Handler struct {
	engine *recommend.Engine
}

// NewHandler creates a Handler backed by engine.
func NewHandler(engine *recommend.Engine) *Handler {
	return &Handler{engine: engine}
}

// RecommendRequest is the POST /recommendations body.
type RecommendRequest struct {
	UserID         string  `json:"user_id" validate:"required"`
	N              int     `json:"n" validate:"gte=0,lte=100"`
	TimeOfDay      string  `json:"time_of_day" validate:"omitempty,oneof=breakfast lunch evening_snack dinner late_night"`
	DayOfWeek      string  `json:"day_of_week"`
	Weather        string  `json:"weather" validate:"omitempty,oneof=clear rainy hot"`
	Lat            float64 `json:"lat" validate:"omitempty,gte=-90,lte=90"`
	Lon            float64 `json:"lon" validate:"omitempty,gte=-180,lte=180"`
	HasLocation    bool    `json:"has_location"`
	ExcludeOrdered bool    `json:"exclude_ordered"`
}

// Recommendations serves POST /api/v1/recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid JSON body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	requestID := logging.RequestIDFromContext(r.Context())
	var loc *recommend.Location
	if req.HasLocation {
		loc = &recommend.Location{Lat: req.Lat, Lon: req.Lon}
	}

	resp, err := h.engine.Recommend(recommend.Request{
		UserID: req.UserID,
		N:      req.N,
		Context: recommend.Context{
			TimeOfDay: req.TimeOfDay,
			DayOfWeek: req.DayOfWeek,
			Weather:   req.Weather,
		},
		Location:       loc,
		ExcludeOrdered: req.ExcludeOrdered,
		RequestID:      requestID,
	})
	if err != nil {
		h.respondEngineError(w, err)
		return
	}

	metrics.RecordRecommendation("hybrid", time.Since(start), !resp.HasHistory)
	respondJSON(w, http.StatusOK, successResponse(resp, start, requestID))
}

// OnboardRequest is the POST /onboarding body.
type OnboardRequest struct {
	DietaryPreference string   `json:"dietary_preference" validate:"omitempty,oneof=veg non_veg vegan no_preference"`
	FavoriteCuisines  []string `json:"favorite_cuisines" validate:"max=10"`
	Budget            string   `json:"budget"`
	N                 int      `json:"n" validate:"gte=0,lte=100"`
}

// Onboarding serves POST /api/v1/onboarding.
func (h *Handler) Onboarding(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req OnboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid JSON body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	results, err := h.engine.Onboard(recommend.Preferences{
		DietaryPreference: recommend.DietaryPreference(req.DietaryPreference),
		FavoriteCuisines:  req.FavoriteCuisines,
		Budget:            req.Budget,
	}, req.N)
	if err != nil {
		h.respondEngineError(w, err)
		return
	}

	metrics.RecordRecommendation("onboarding", time.Since(start), true)
	requestID := logging.RequestIDFromContext(r.Context())
	respondJSON(w, http.StatusOK, successResponse(map[string]interface{}{
		"recommendations": results,
	}, start, requestID))
}

// Popular serves GET /api/v1/popular.
func (h *Handler) Popular(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	results, err := h.engine.Popular(getIntParam(r, "n", 0))
	if err != nil {
		h.respondEngineError(w, err)
		return
	}

	metrics.RecordRecommendation("popular", time.Since(start), false)
	requestID := logging.RequestIDFromContext(r.Context())
	respondJSON(w, http.StatusOK, successResponse(map[string]interface{}{
		"recommendations": results,
	}, start, requestID))
}

// SimilarProfile serves GET /api/v1/similar-profile/{userID}.
func (h *Handler) SimilarProfile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID := chi.URLParam(r, "userID")

	results, err := h.engine.SimilarProfile(userID, getIntParam(r, "n", 0))
	if err != nil {
		h.respondEngineError(w, err)
		return
	}

	metrics.RecordRecommendation("similar_profile", time.Since(start), true)
	requestID := logging.RequestIDFromContext(r.Context())
	respondJSON(w, http.StatusOK, successResponse(map[string]interface{}{
		"recommendations": results,
	}, start, requestID))
}

// Explanation serves GET /api/v1/explanations/{userID}/{restaurantID}.
func (h *Handler) Explanation(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID := chi.URLParam(r, "userID")
	restaurantID := chi.URLParam(r, "restaurantID")

	ctx := recommend.Context{
		TimeOfDay: r.URL.Query().Get("time_of_day"),
		Weather:   r.URL.Query().Get("weather"),
	}
	exp, err := h.engine.Explain(userID, restaurantID, ctx)
	if err != nil {
		h.respondEngineError(w, err)
		return
	}

	metrics.ExplanationsGenerated.Inc()
	requestID := logging.RequestIDFromContext(r.Context())
	respondJSON(w, http.StatusOK, successResponse(exp, start, requestID))
}

// ExplainBatchRequest is the POST /explanations body.
type ExplainBatchRequest struct {
	UserID        string   `json:"user_id" validate:"required"`
	RestaurantIDs []string `json:"restaurant_ids" validate:"required,min=1,max=50"`
	TimeOfDay     string   `json:"time_of_day" validate:"omitempty,oneof=breakfast lunch evening_snack dinner late_night"`
	Weather       string   `json:"weather" validate:"omitempty,oneof=clear rainy hot"`
}

// Explanations serves POST /api/v1/explanations for a batch of
// restaurants.
func (h *Handler) Explanations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req ExplainBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid JSON body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	exps, err := h.engine.ExplainAll(req.UserID, req.RestaurantIDs, recommend.Context{
		TimeOfDay: req.TimeOfDay,
		Weather:   req.Weather,
	})
	if err != nil {
		h.respondEngineError(w, err)
		return
	}

	metrics.ExplanationsGenerated.Add(float64(len(exps)))
	requestID := logging.RequestIDFromContext(r.Context())
	respondJSON(w, http.StatusOK, successResponse(map[string]interface{}{
		"explanations": exps,
	}, start, requestID))
}

// HealthLive serves GET /healthz. Always 200 while the process runs.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondJSON(w, http.StatusOK, successResponse(map[string]string{
		"status": "alive",
	}, start, ""))
}

// HealthReady serves GET /readyz. 503 until the engine is fitted.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	fitted, at := h.engine.Fitted()
	if !fitted {
		respondError(w, http.StatusServiceUnavailable, "NOT_READY", "engine has no fitted dataset", nil)
		return
	}
	start := time.Now()
	respondJSON(w, http.StatusOK, successResponse(map[string]interface{}{
		"fitted_at": at,
	}, start, ""))
}

func (h *Handler) respondEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, recommend.ErrNotFitted):
		respondError(w, http.StatusServiceUnavailable, "NOT_READY", "engine has no fitted dataset", err)
	case errors.Is(err, recommend.ErrUserNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", "user not found", nil)
	case errors.Is(err, recommend.ErrRestaurantNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", "restaurant not found", nil)
	default:
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error", err)
	}
}
