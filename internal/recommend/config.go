// ML-Restaurant-Recommendations - Hybrid Restaurant Recommendation Engine
// Copyright 2026 Ayush Saxena (iamAyushSaxena)
// SPDX-License-Identifier: MIT
// https://github.com/iamAyushSaxena/ML-Restaurant-Recommendations

package recommend

import "fmt"

// Config contains all tunables for the recommendation engine. It is treated
// as immutable after construction; per-request weight adjustments (cold
// start) operate on copies and never write back.
type Config struct {
	// Weights defines the relative contribution of each scoring signal.
	Weights Weights `json:"weights"`

	// Collaborative contains parameters for the collaborative scorer.
	Collaborative CollaborativeConfig `json:"collaborative"`

	// Content contains parameters for the content scorer.
	Content ContentConfig `json:"content"`

	// ColdStart contains parameters for the cold-start scorer.
	ColdStart ColdStartConfig `json:"cold_start"`

	// Contextual contains parameters for the contextual modulator.
	Contextual ContextualConfig `json:"contextual"`

	// Limits contains blending and post-filter parameters.
	Limits LimitsConfig `json:"limits"`

	// Explain contains thresholds for the explainability engine.
	Explain ExplainConfig `json:"explain"`
}

// Weights defines the hybrid blend. They should sum to 1.0; when the
// collaborative signal is unavailable for a request its weight is folded
// into the content weight for that request only.
type Weights struct {
	// Collaborative is the weight of the similar-users signal.
	// Default: 0.40.
	Collaborative float64 `json:"collaborative"`

	// Content is the weight of the attribute-match signal.
	// Default: 0.35.
	Content float64 `json:"content"`

	// Contextual is the weight of the situational signal.
	// Default: 0.25.
	Contextual float64 `json:"contextual"`
}

// WithoutCollaborative returns a copy with the collaborative weight folded
// into the content weight. Used per request for users below the CF
// history threshold.
func (w Weights) WithoutCollaborative() Weights {
	return Weights{
		Collaborative: 0,
		Content:       w.Content + w.Collaborative,
		Contextual:    w.Contextual,
	}
}

// CollaborativeConfig contains parameters for the collaborative scorer.
type CollaborativeConfig struct {
	// TopSimilarUsers is how many nearest neighbors to aggregate over.
	// Default: 30.
	TopSimilarUsers int `json:"top_similar_users"`
}

// ContentConfig contains parameters for the content scorer.
// The four score weights are fixed-sum contributions, not normalized.
type ContentConfig struct {
	// CuisineWeight is awarded for an exact favorite-cuisine match.
	// Default: 0.40.
	CuisineWeight float64 `json:"cuisine_weight"`

	// MostOrderedWeight is awarded when only the most-ordered cuisine
	// matches. Mutually exclusive with CuisineWeight; favorite wins.
	// Default: 0.30.
	MostOrderedWeight float64 `json:"most_ordered_weight"`

	// PriceWeight scales price-tier closeness (linear falloff over
	// MaxPriceDistance tiers). Default: 0.25.
	PriceWeight float64 `json:"price_weight"`

	// RatingWeight scales the normalized rating. Default: 0.20.
	RatingWeight float64 `json:"rating_weight"`

	// DeliveryWeight scales delivery speed normalized against
	// [DeliveryFloorMins, DeliveryFloorMins+DeliveryWindowMins].
	// Default: 0.15.
	DeliveryWeight float64 `json:"delivery_weight"`

	// MaxPriceDistance is the tier distance at which price closeness
	// reaches zero. Default: 3.
	MaxPriceDistance float64 `json:"max_price_distance"`

	// DeliveryFloorMins is the fastest expected delivery. Default: 20.
	DeliveryFloorMins float64 `json:"delivery_floor_mins"`

	// DeliveryWindowMins is the spread of the delivery window. Default: 40.
	DeliveryWindowMins float64 `json:"delivery_window_mins"`

	// MinDietaryCandidates is the pool size below which the dietary
	// hard filter is dropped for the request. Default: 20.
	MinDietaryCandidates int `json:"min_dietary_candidates"`
}

// ColdStartConfig contains parameters for the cold-start scorer.
type ColdStartConfig struct {
	// CuisineWeight is split evenly across declared favorite cuisines.
	// Default: 0.50.
	CuisineWeight float64 `json:"cuisine_weight"`

	// PopularityWeight scales normalized popularity. Default: 0.30.
	PopularityWeight float64 `json:"popularity_weight"`

	// RatingWeight scales normalized rating. Default: 0.20.
	RatingWeight float64 `json:"rating_weight"`

	// MaxPerCuisine caps how many restaurants one cuisine may
	// contribute before backfill. Default: 3.
	MaxPerCuisine int `json:"max_per_cuisine"`

	// ProfileSimilarityThreshold is the minimum profile similarity for
	// the similar-user fallback; matches below or at it are dropped.
	// Default: 0.5.
	ProfileSimilarityThreshold float64 `json:"profile_similarity_threshold"`

	// MaxSimilarProfiles caps how many similar profiles are aggregated.
	// Default: 20.
	MaxSimilarProfiles int `json:"max_similar_profiles"`
}

// budgetTiers maps each budget bracket to its allowed price tiers.
// Unknown brackets fall back to the mid-range [1, 2].
var budgetTiers = map[string][]int{
	"₹0-200":   {1},
	"₹200-400": {1, 2},
	"₹400-600": {2, 3},
	"₹600+":    {3, 4},
}

// AllowedPriceTiers returns the price tiers admitted for a budget bracket.
func AllowedPriceTiers(budget string) []int {
	if tiers, ok := budgetTiers[budget]; ok {
		return tiers
	}
	return []int{1, 2}
}

// ContextualConfig contains parameters for the contextual modulator.
type ContextualConfig struct {
	// DistanceHalfLifeKm controls the exponential distance decay.
	// Default: 3.0.
	DistanceHalfLifeKm float64 `json:"distance_half_life_km"`

	// PopularityBoost is the slope of the mild popularity multiplier
	// (1 + boost*popularity). Default: 0.2.
	PopularityBoost float64 `json:"popularity_boost"`
}

// LimitsConfig contains blending and post-filter parameters.
type LimitsConfig struct {
	// MinOrdersForCF is the minimum nonzero interaction count before
	// the collaborative signal is used. Default: 3.
	MinOrdersForCF int `json:"min_orders_for_cf"`

	// CandidatesPerScorer is how many candidates each scorer
	// contributes to the merge. Default: 50.
	CandidatesPerScorer int `json:"candidates_per_scorer"`

	// MinRating drops restaurants rated below it after blending.
	// Default: 3.0.
	MinRating float64 `json:"min_rating"`

	// MaxDistanceKm drops restaurants farther than this when a user
	// location is supplied. Default: 10.0.
	MaxDistanceKm float64 `json:"max_distance_km"`

	// DefaultN is the default result size. Default: 10.
	DefaultN int `json:"default_n"`

	// MaxN is the maximum allowed result size. Default: 100.
	MaxN int `json:"max_n"`
}

// ExplainConfig contains thresholds for the explainability engine.
type ExplainConfig struct {
	// SimilarUsersK is how many similar users to inspect. Default: 10.
	SimilarUsersK int `json:"similar_users_k"`

	// MinSimilarOrderers is how many of those must have ordered from
	// the restaurant for the collaborative reason. Default: 3.
	MinSimilarOrderers int `json:"min_similar_orderers"`

	// HighRating is the rating threshold for the quality reason.
	// Default: 4.0.
	HighRating float64 `json:"high_rating"`

	// FastDeliveryMins is the threshold for the proximity reason.
	// Default: 30.
	FastDeliveryMins int `json:"fast_delivery_mins"`

	// HighValue is the value-score threshold for the value reason.
	// Default: 1.2.
	HighValue float64 `json:"high_value"`

	// HighPopularity is the popularity threshold for the trending
	// reason. Default: 0.7.
	HighPopularity float64 `json:"high_popularity"`
}

// DefaultConfig returns a Config with the production defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			Collaborative: 0.40,
			Content:       0.35,
			Contextual:    0.25,
		},
		Collaborative: CollaborativeConfig{
			TopSimilarUsers: 30,
		},
		Content: ContentConfig{
			CuisineWeight:        0.40,
			MostOrderedWeight:    0.30,
			PriceWeight:          0.25,
			RatingWeight:         0.20,
			DeliveryWeight:       0.15,
			MaxPriceDistance:     3,
			DeliveryFloorMins:    20,
			DeliveryWindowMins:   40,
			MinDietaryCandidates: 20,
		},
		ColdStart: ColdStartConfig{
			CuisineWeight:              0.50,
			PopularityWeight:           0.30,
			RatingWeight:               0.20,
			MaxPerCuisine:              3,
			ProfileSimilarityThreshold: 0.5,
			MaxSimilarProfiles:         20,
		},
		Contextual: ContextualConfig{
			DistanceHalfLifeKm: 3.0,
			PopularityBoost:    0.2,
		},
		Limits: LimitsConfig{
			MinOrdersForCF:      3,
			CandidatesPerScorer: 50,
			MinRating:           3.0,
			MaxDistanceKm:       10.0,
			DefaultN:            10,
			MaxN:                100,
		},
		Explain: ExplainConfig{
			SimilarUsersK:      10,
			MinSimilarOrderers: 3,
			HighRating:         4.0,
			FastDeliveryMins:   30,
			HighValue:          1.2,
			HighPopularity:     0.7,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Weights.Collaborative < 0 || c.Weights.Content < 0 || c.Weights.Contextual < 0 {
		return fmt.Errorf("weights must be non-negative, got %+v", c.Weights)
	}
	sum := c.Weights.Collaborative + c.Weights.Content + c.Weights.Contextual
	if sum <= 0 {
		return fmt.Errorf("weights must sum to a positive value, got %f", sum)
	}

	if c.Collaborative.TopSimilarUsers < 1 {
		return fmt.Errorf("collaborative.top_similar_users must be positive, got %d", c.Collaborative.TopSimilarUsers)
	}

	if c.Content.MaxPriceDistance <= 0 {
		return fmt.Errorf("content.max_price_distance must be positive, got %f", c.Content.MaxPriceDistance)
	}
	if c.Content.DeliveryWindowMins <= 0 {
		return fmt.Errorf("content.delivery_window_mins must be positive, got %f", c.Content.DeliveryWindowMins)
	}
	if c.Content.MinDietaryCandidates < 0 {
		return fmt.Errorf("content.min_dietary_candidates must be non-negative, got %d", c.Content.MinDietaryCandidates)
	}

	if c.ColdStart.MaxPerCuisine < 1 {
		return fmt.Errorf("cold_start.max_per_cuisine must be positive, got %d", c.ColdStart.MaxPerCuisine)
	}
	if c.ColdStart.ProfileSimilarityThreshold < 0 || c.ColdStart.ProfileSimilarityThreshold > 1 {
		return fmt.Errorf("cold_start.profile_similarity_threshold must be in [0, 1], got %f", c.ColdStart.ProfileSimilarityThreshold)
	}

	if c.Contextual.DistanceHalfLifeKm <= 0 {
		return fmt.Errorf("contextual.distance_half_life_km must be positive, got %f", c.Contextual.DistanceHalfLifeKm)
	}

	if c.Limits.MinOrdersForCF < 0 {
		return fmt.Errorf("limits.min_orders_for_cf must be non-negative, got %d", c.Limits.MinOrdersForCF)
	}
	if c.Limits.CandidatesPerScorer < 1 {
		return fmt.Errorf("limits.candidates_per_scorer must be positive, got %d", c.Limits.CandidatesPerScorer)
	}
	if c.Limits.DefaultN < 1 {
		return fmt.Errorf("limits.default_n must be positive, got %d", c.Limits.DefaultN)
	}
	if c.Limits.MaxN < c.Limits.DefaultN {
		return fmt.Errorf("limits.max_n must be >= limits.default_n, got %d < %d", c.Limits.MaxN, c.Limits.DefaultN)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested structs contain only value types.
	out := *c
	return &out
}
