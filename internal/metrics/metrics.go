// ML-Restaurant-Recommendations - Hybrid Restaurant Recommendation Engine
// Copyright 2026 Ayush Saxena (iamAyushSaxena)
// SPDX-License-Identifier: MIT
// https://github.com/iamAyushSaxena/ML-Restaurant-Recommendations

// Package metrics provides Prometheus instrumentation for the API
// surface and the recommendation engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Total number of recommendation requests served",
		},
		[]string{"strategy"}, // "hybrid", "onboarding", "popular", "similar_profile"
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Time spent computing recommendations in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
		},
		[]string{"strategy"},
	)

	ColdStartRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_cold_start_total",
			Help: "Total recommendation requests served without collaborative history",
		},
	)

	ExplanationsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "explanations_generated_total",
			Help: "Total number of recommendation explanations generated",
		},
	)

	// Dataset Metrics
	DatasetUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_users",
			Help: "Number of users in the fitted dataset",
		},
	)

	DatasetRestaurants = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_restaurants",
			Help: "Number of restaurants in the fitted dataset",
		},
	)

	DatasetInteractions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_interactions",
			Help: "Number of interactions in the fitted dataset",
		},
	)

	EngineLastFitted = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "engine_last_fitted_timestamp",
			Help: "Unix timestamp of the last successful engine fit",
		},
	)
)

// RecordAPIRequest records one API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordRecommendation records one recommendation computation.
func RecordRecommendation(strategy string, duration time.Duration, coldStart bool) {
	RecommendationsServed.WithLabelValues(strategy).Inc()
	RecommendationDuration.WithLabelValues(strategy).Observe(duration.Seconds())
	if coldStart {
		ColdStartRequests.Inc()
	}
}

// RecordFit records the sizes of a freshly fitted dataset.
func RecordFit(users, restaurants, interactions int) {
	DatasetUsers.Set(float64(users))
	DatasetRestaurants.Set(float64(restaurants))
	DatasetInteractions.Set(float64(interactions))
	EngineLastFitted.Set(float64(time.Now().Unix()))
}

// TrackActiveRequest tracks in-flight API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
