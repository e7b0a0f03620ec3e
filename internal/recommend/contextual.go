// ML-Restaurant-Recommendations - Hybrid Restaurant Recommendation Engine
// Copyright 2026 Ayush Saxena (iamAyushSaxena)
// SPDX-License-Identifier: MIT
// https://github.com/iamAyushSaxena/ML-Restaurant-Recommendations

package recommend

import "math"

// timeBoosts multiplies cuisines that fit the meal slot.
var timeBoosts = map[string]map[string]float64{
	TimeBreakfast: {
		"South Indian": 1.3,
		"Cafe":         1.4,
		"Fast Food":    1.2,
		"Beverages":    1.3,
	},
	TimeLunch: {
		"North Indian": 1.2,
		"South Indian": 1.2,
		"Biryani":      1.3,
		"Chinese":      1.1,
	},
	TimeDinner: {
		"North Indian": 1.3,
		"Biryani":      1.4,
		"Chinese":      1.2,
		"Continental":  1.1,
	},
	TimeLateNight: {
		"Fast Food":   1.5,
		"Street Food": 1.4,
		"Chinese":     1.2,
	},
}

// weatherBoosts adjusts for conditions; rain suppresses street food.
var weatherBoosts = map[string]map[string]float64{
	WeatherRainy: {
		"Street Food": 0.6,
		"Fast Food":   1.3,
		"Chinese":     1.2,
	},
	WeatherHot: {
		"Beverages":    1.5,
		"Desserts":     1.3,
		"South Indian": 1.1,
	},
}

// contextualScorer modulates by time of day, weather, distance, and
// popularity. Every restaurant starts at 1.0 and the result is
// max-normalized, so context reorders rather than gates.
type contextualScorer struct {
	restaurants []Restaurant
	cfg         ContextualConfig
}

func newContextualScorer(restaurants []Restaurant, cfg ContextualConfig) *contextualScorer {
	return &contextualScorer{restaurants: restaurants, cfg: cfg}
}

// Score returns contextual multipliers for the candidate restaurants,
// normalized to [0, 1] over that set; a nil candidate set means the
// whole catalog. Context is a modulator, not a source: it rescales
// restaurants other signals surfaced, so the normalization basin is the
// candidate set, never the full catalog. ctx fields and loc may be
// zero; absent signals are skipped.
func (s *contextualScorer) Score(ctx Context, loc *Location, candidates map[string]struct{}) map[string]float64 {
	scores := make(map[string]float64, len(candidates))
	for _, rest := range s.restaurants {
		if candidates != nil {
			if _, ok := candidates[rest.ID]; !ok {
				continue
			}
		}
		score := 1.0
		if boosts, ok := timeBoosts[ctx.TimeOfDay]; ok {
			if b, ok := boosts[rest.Cuisine]; ok {
				score *= b
			}
		}
		if boosts, ok := weatherBoosts[ctx.Weather]; ok {
			if b, ok := boosts[rest.Cuisine]; ok {
				score *= b
			}
		}
		if loc != nil && rest.Location != nil {
			d := DistanceKm(*loc, *rest.Location)
			score *= math.Exp(-d / s.cfg.DistanceHalfLifeKm)
		}
		score *= 1 + s.cfg.PopularityBoost*rest.PopularityScore
		scores[rest.ID] = score
	}
	maxNormalize(scores)
	return scores
}

// DistanceKm approximates ground distance with an equirectangular
// projection. Fine at city scale; do not use across latitudes.
func DistanceKm(a, b Location) float64 {
	latKm := (b.Lat - a.Lat) * 111.0
	lonKm := (b.Lon - a.Lon) * 111.0 * math.Cos(a.Lat*math.Pi/180)
	return math.Sqrt(latKm*latKm + lonKm*lonKm)
}
