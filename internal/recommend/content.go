// ML-Restaurant-Recommendations - Hybrid Restaurant Recommendation Engine
// Copyright 2026 Ayush Saxena (iamAyushSaxena)
// SPDX-License-Identifier: MIT
// https://github.com/iamAyushSaxena/ML-Restaurant-Recommendations

package recommend

import "sort"

// contentScorer matches restaurant attributes against a user's static
// profile: cuisine, price tier, rating, and delivery speed.
type contentScorer struct {
	restaurants []Restaurant
	users       map[string]User
	cfg         ContentConfig
}

func newContentScorer(restaurants []Restaurant, users map[string]User, cfg ContentConfig) *contentScorer {
	return &contentScorer{restaurants: restaurants, users: users, cfg: cfg}
}

// ScoreForUser returns up to n restaurant scores in [0, 1] for a user.
// Unknown users fall back to a popularity ranking with synthetic scores.
// Restaurants in exclude are dropped before scoring.
func (s *contentScorer) ScoreForUser(userID string, exclude map[string]struct{}, n int) map[string]float64 {
	user, known := s.users[userID]
	if !known {
		return s.popularityFallback(exclude, n)
	}

	candidates := s.dietaryCandidates(user)

	type scored struct {
		id    string
		score float64
	}
	results := make([]scored, 0, len(candidates))
	for _, rest := range candidates {
		if _, skip := exclude[rest.ID]; skip {
			continue
		}
		results = append(results, scored{id: rest.ID, score: s.score(user, rest)})
	}

	// Truncate to the n best before normalizing; ties break on id so
	// the candidate pool is reproducible.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return results[i].id < results[j].id
	})
	if n > 0 && len(results) > n {
		results = results[:n]
	}

	scores := make(map[string]float64, len(results))
	for _, r := range results {
		scores[r.id] = r.score
	}
	maxNormalize(scores)
	return scores
}

// dietaryCandidates applies the veg-only hard filter. If the filter
// leaves too small a pool, availability wins and the filter is dropped
// for this request.
func (s *contentScorer) dietaryCandidates(user User) []Restaurant {
	if !user.DietaryPreference.Restricts() {
		return s.restaurants
	}

	filtered := make([]Restaurant, 0, len(s.restaurants))
	for _, rest := range s.restaurants {
		if rest.IsVegOnly {
			filtered = append(filtered, rest)
		}
	}
	if len(filtered) < s.cfg.MinDietaryCandidates {
		return s.restaurants
	}
	return filtered
}

// score computes the fixed-weight attribute match for one restaurant.
func (s *contentScorer) score(user User, rest Restaurant) float64 {
	var score float64

	// Cuisine: stated favorite beats the observed most-ordered cuisine;
	// the two never stack.
	switch {
	case rest.Cuisine == user.FavoriteCuisine:
		score += s.cfg.CuisineWeight
	case user.MostOrderedCuisine != "" && rest.Cuisine == user.MostOrderedCuisine:
		score += s.cfg.MostOrderedWeight
	}

	// Price-tier closeness with linear falloff.
	priceDiff := float64(rest.PriceRange) - user.priceTierPreference()
	if priceDiff < 0 {
		priceDiff = -priceDiff
	}
	priceScore := 1 - priceDiff/s.cfg.MaxPriceDistance
	if priceScore < 0 {
		priceScore = 0
	}
	score += s.cfg.PriceWeight * priceScore

	score += s.cfg.RatingWeight * (rest.AvgRating / 5.0)

	// Delivery speed normalized against the expected window; faster is
	// better, clipped to [0, 1].
	deliveryScore := 1 - (float64(rest.AvgDeliveryMins)-s.cfg.DeliveryFloorMins)/s.cfg.DeliveryWindowMins
	if deliveryScore < 0 {
		deliveryScore = 0
	} else if deliveryScore > 1 {
		deliveryScore = 1
	}
	score += s.cfg.DeliveryWeight * deliveryScore

	return score
}

// priceTierPreference maps the sensitivity tier onto the 1-4 price scale.
func (u User) priceTierPreference() float64 {
	switch u.PriceSensitivity {
	case "low":
		return 1.5
	case "high":
		return 3.5
	default:
		return 2.5
	}
}

// popularityFallback ranks by popularity and hands out linearly
// decreasing synthetic scores from 1.0 down to 0.5, so a true cold-start
// user still receives a usable content signal.
func (s *contentScorer) popularityFallback(exclude map[string]struct{}, n int) map[string]float64 {
	ranked := make([]Restaurant, 0, len(s.restaurants))
	for _, rest := range s.restaurants {
		if _, skip := exclude[rest.ID]; skip {
			continue
		}
		ranked = append(ranked, rest)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].PopularityScore != ranked[j].PopularityScore {
			return ranked[i].PopularityScore > ranked[j].PopularityScore
		}
		if ranked[i].AvgRating != ranked[j].AvgRating {
			return ranked[i].AvgRating > ranked[j].AvgRating
		}
		return ranked[i].ID < ranked[j].ID
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}

	scores := make(map[string]float64, len(ranked))
	for i, rest := range ranked {
		if len(ranked) == 1 {
			scores[rest.ID] = 1.0
			continue
		}
		scores[rest.ID] = 1.0 - 0.5*float64(i)/float64(len(ranked)-1)
	}
	return scores
}
