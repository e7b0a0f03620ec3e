// ML-Restaurant-Recommendations - Hybrid Restaurant Recommendation Engine
// Copyright 2026 Ayush Saxena (iamAyushSaxena)
// SPDX-License-Identifier: MIT
// https://github.com/iamAyushSaxena/ML-Restaurant-Recommendations

package recommend

import "sort"

// coldStart serves users the interaction matrix knows nothing about:
// onboarding questionnaires, raw popularity, and profile lookalikes.
type coldStart struct {
	restaurants []Restaurant
	users       map[string]User
	matrix      *Matrix
	cfg         ColdStartConfig
}

func newColdStart(restaurants []Restaurant, users map[string]User, matrix *Matrix, cfg ColdStartConfig) *coldStart {
	return &coldStart{restaurants: restaurants, users: users, matrix: matrix, cfg: cfg}
}

// Onboard scores restaurants against questionnaire answers and returns
// up to n picks with cuisine diversity enforced.
func (c *coldStart) Onboard(prefs Preferences, n int) []ScoredRestaurant {
	tiers := AllowedPriceTiers(prefs.Budget)
	allowed := make(map[int]struct{}, len(tiers))
	for _, t := range tiers {
		allowed[t] = struct{}{}
	}

	cuisines := make(map[string]struct{}, len(prefs.FavoriteCuisines))
	for _, cu := range prefs.FavoriteCuisines {
		cuisines[cu] = struct{}{}
	}

	candidates := make([]Restaurant, 0, len(c.restaurants))
	for _, rest := range c.restaurants {
		if prefs.DietaryPreference.Restricts() && !rest.IsVegOnly {
			continue
		}
		if _, ok := allowed[rest.PriceRange]; !ok {
			continue
		}
		candidates = append(candidates, rest)
	}

	// Popularity is normalized within the filtered pool, so the most
	// popular candidate the answers allow sets the scale even when the
	// catalog-wide maximum was filtered out.
	var maxPop float64
	for _, rest := range candidates {
		if rest.PopularityScore > maxPop {
			maxPop = rest.PopularityScore
		}
	}

	scored := make([]ScoredRestaurant, 0, len(candidates))
	for _, rest := range candidates {
		var score float64
		if len(prefs.FavoriteCuisines) > 0 {
			if _, ok := cuisines[rest.Cuisine]; ok {
				score += c.cfg.CuisineWeight / float64(len(prefs.FavoriteCuisines))
			}
		}
		if maxPop > 0 {
			score += c.cfg.PopularityWeight * (rest.PopularityScore / maxPop)
		}
		score += c.cfg.RatingWeight * (rest.AvgRating / 5.0)

		scored = append(scored, ScoredRestaurant{Restaurant: rest, FinalScore: score})
	}

	sortScored(scored)
	return c.diversify(scored, n)
}

// diversify caps picks per cuisine, then backfills from the top of the
// ranking when the cap leaves the list short. No restaurant repeats.
func (c *coldStart) diversify(ranked []ScoredRestaurant, n int) []ScoredRestaurant {
	perCuisine := make(map[string]int)
	picked := make(map[string]struct{}, n)
	out := make([]ScoredRestaurant, 0, n)

	for _, sr := range ranked {
		if len(out) >= n {
			break
		}
		if perCuisine[sr.Restaurant.Cuisine] >= c.cfg.MaxPerCuisine {
			continue
		}
		perCuisine[sr.Restaurant.Cuisine]++
		picked[sr.Restaurant.ID] = struct{}{}
		out = append(out, sr)
	}
	for _, sr := range ranked {
		if len(out) >= n {
			break
		}
		if _, ok := picked[sr.Restaurant.ID]; ok {
			continue
		}
		picked[sr.Restaurant.ID] = struct{}{}
		out = append(out, sr)
	}

	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// Popular returns the n most popular restaurants, breaking ties on
// rating and then review volume.
func (c *coldStart) Popular(n int) []ScoredRestaurant {
	ranked := make([]Restaurant, len(c.restaurants))
	copy(ranked, c.restaurants)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.PopularityScore != b.PopularityScore {
			return a.PopularityScore > b.PopularityScore
		}
		if a.AvgRating != b.AvgRating {
			return a.AvgRating > b.AvgRating
		}
		if a.TotalReviews != b.TotalReviews {
			return a.TotalReviews > b.TotalReviews
		}
		return a.ID < b.ID
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}

	out := make([]ScoredRestaurant, len(ranked))
	for i, rest := range ranked {
		out[i] = ScoredRestaurant{Rank: i + 1, Restaurant: rest, FinalScore: rest.PopularityScore}
	}
	return out
}

// SimilarProfile recommends by borrowing the order history of users
// whose static profiles resemble the target's. Falls back to Popular
// when no profile clears the similarity threshold.
func (c *coldStart) SimilarProfile(target User, n int) []ScoredRestaurant {
	type match struct {
		id  string
		sim float64
	}
	matches := make([]match, 0, len(c.users))
	for id, other := range c.users {
		if id == target.ID {
			continue
		}
		if sim := profileSimilarity(target, other); sim > c.cfg.ProfileSimilarityThreshold {
			matches = append(matches, match{id: id, sim: sim})
		}
	}
	if len(matches) == 0 {
		return c.Popular(n)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].sim != matches[j].sim {
			return matches[i].sim > matches[j].sim
		}
		return matches[i].id < matches[j].id
	})
	if len(matches) > c.cfg.MaxSimilarProfiles {
		matches = matches[:c.cfg.MaxSimilarProfiles]
	}

	scores := make(map[string]float64)
	for _, m := range matches {
		for restID, strength := range c.matrix.Row(m.id) {
			scores[restID] += strength * m.sim
		}
	}
	if len(scores) == 0 {
		return c.Popular(n)
	}
	maxNormalize(scores)

	byID := make(map[string]Restaurant, len(c.restaurants))
	for _, rest := range c.restaurants {
		byID[rest.ID] = rest
	}
	out := make([]ScoredRestaurant, 0, len(scores))
	for restID, score := range scores {
		rest, ok := byID[restID]
		if !ok {
			continue
		}
		out = append(out, ScoredRestaurant{Restaurant: rest, FinalScore: score})
	}
	sortScored(out)
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// profileSimilarity blends cuisine, dietary, and price-sensitivity
// agreement into a single [0, 1] value.
func profileSimilarity(a, b User) float64 {
	var sim float64
	if a.FavoriteCuisine != "" && a.FavoriteCuisine == b.FavoriteCuisine {
		sim += 0.5
	}
	if a.DietaryPreference == b.DietaryPreference {
		sim += 0.3
	}
	if a.PriceSensitivity == b.PriceSensitivity {
		sim += 0.2
	}
	return sim
}

// sortScored orders by score descending with restaurant id as the
// deterministic tie-break.
func sortScored(s []ScoredRestaurant) {
	sort.SliceStable(s, func(i, j int) bool {
		if s[i].FinalScore != s[j].FinalScore {
			return s[i].FinalScore > s[j].FinalScore
		}
		return s[i].Restaurant.ID < s[j].Restaurant.ID
	})
}
