// ML-Restaurant-Recommendations - Hybrid Restaurant Recommendation Engine
// Copyright 2026 Ayush Saxena (iamAyushSaxena)
// SPDX-License-Identifier: MIT
// https://github.com/iamAyushSaxena/ML-Restaurant-Recommendations

// Package config loads layered service configuration:
// defaults, then an optional YAML file, then environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/iamAyushSaxena/ML-Restaurant-Recommendations/internal/recommend"
)

// Config is the full service configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Data      DataConfig      `koanf:"data"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Recommend RecommendConfig `koanf:"recommend"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the listen address. Default: 0.0.0.0
	Host string `koanf:"host"`

	// Port is the listen port. Default: 8080
	Port int `koanf:"port"`

	// Timeout bounds request read and write. Default: 30s
	Timeout time.Duration `koanf:"timeout"`

	// ShutdownTimeout bounds graceful shutdown. Default: 15s
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// DataConfig locates the dataset the engine is fitted from.
type DataConfig struct {
	// SnapshotPath is the JSON dataset snapshot. Default: data/snapshot.json
	SnapshotPath string `koanf:"snapshot_path"`
}

// SecurityConfig holds request throttling settings.
type SecurityConfig struct {
	// RateLimitReqs is the per-IP request budget. Default: 100
	RateLimitReqs int `koanf:"rate_limit_reqs"`

	// RateLimitWindow is the budget window. Default: 1m
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`

	// RateLimitDisabled turns throttling off entirely.
	RateLimitDisabled bool `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	// Level: trace, debug, info, warn, error. Default: info
	Level string `koanf:"level"`

	// Format: json or console. Default: json
	Format string `koanf:"format"`

	// Caller includes file:line in log output. Default: false
	Caller bool `koanf:"caller"`
}

// RecommendConfig exposes the engine knobs worth tuning per deployment.
// Anything not listed keeps the engine's built-in default.
type RecommendConfig struct {
	// CollaborativeWeight, ContentWeight, and ContextualWeight blend the
	// three signals; they must sum to 1.
	CollaborativeWeight float64 `koanf:"collaborative_weight"`
	ContentWeight       float64 `koanf:"content_weight"`
	ContextualWeight    float64 `koanf:"contextual_weight"`

	// MinOrdersForCF is the history size below which the collaborative
	// signal is dropped for a user. Default: 3
	MinOrdersForCF int `koanf:"min_orders_for_cf"`

	// TopSimilarUsers caps the neighborhood size. Default: 30
	TopSimilarUsers int `koanf:"top_similar_users"`

	// DefaultN and MaxN bound result list sizes. Defaults: 10, 50
	DefaultN int `koanf:"default_n"`
	MaxN     int `koanf:"max_n"`

	// MinRating filters final results. Default: 3.0
	MinRating float64 `koanf:"min_rating"`

	// MaxDistanceKm filters final results when a location is given.
	// Default: 10
	MaxDistanceKm float64 `koanf:"max_distance_km"`
}

// EngineConfig maps the tunable subset onto the engine's full config.
func (c RecommendConfig) EngineConfig() *recommend.Config {
	cfg := recommend.DefaultConfig()
	cfg.Weights.Collaborative = c.CollaborativeWeight
	cfg.Weights.Content = c.ContentWeight
	cfg.Weights.Contextual = c.ContextualWeight
	cfg.Limits.MinOrdersForCF = c.MinOrdersForCF
	cfg.Collaborative.TopSimilarUsers = c.TopSimilarUsers
	cfg.Limits.DefaultN = c.DefaultN
	cfg.Limits.MaxN = c.MaxN
	cfg.Limits.MinRating = c.MinRating
	cfg.Limits.MaxDistanceKm = c.MaxDistanceKm
	return cfg
}

// Validate checks the service-level settings. Engine settings get a
// second, deeper validation inside the engine itself.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be 1-65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %s", c.Server.ShutdownTimeout)
	}
	if c.Data.SnapshotPath == "" {
		return fmt.Errorf("data.snapshot_path must not be empty")
	}
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs <= 0 {
			return fmt.Errorf("security.rate_limit_reqs must be positive, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("security.rate_limit_window must be positive, got %s", c.Security.RateLimitWindow)
		}
	}
	return c.Recommend.EngineConfig().Validate()
}
