// ML-Restaurant-Recommendations - Hybrid Restaurant Recommendation Engine
// Copyright 2026 Ayush Saxena (iamAyushSaxena)
// SPDX-License-Identifier: MIT
// https://github.com/iamAyushSaxena/ML-Restaurant-Recommendations

package recommend

import (
	"fmt"
	"sort"
	"strings"
)

// contextualMatches lists cuisines considered a natural fit for each
// meal slot when explaining a pick. Narrower than the boost tables on
// purpose: a reason has to be obviously true to the reader.
var contextualMatches = map[string][]string{
	TimeBreakfast: {"South Indian", "Cafe", "Beverages"},
	TimeLunch:     {"North Indian", "South Indian", "Biryani"},
	TimeDinner:    {"North Indian", "Biryani", "Chinese", "Continental"},
	TimeLateNight: {"Fast Food", "Street Food", "Chinese"},
}

// explainer turns a (user, restaurant) pair into human-readable reasons.
type explainer struct {
	users  map[string]User
	byID   map[string]Restaurant
	matrix *Matrix
	cfg    ExplainConfig
}

func newExplainer(users map[string]User, restaurants []Restaurant, matrix *Matrix, cfg ExplainConfig) *explainer {
	byID := make(map[string]Restaurant, len(restaurants))
	for _, rest := range restaurants {
		byID[rest.ID] = rest
	}
	return &explainer{users: users, byID: byID, matrix: matrix, cfg: cfg}
}

// Explain collects every reason that holds for the pair, ordered by
// weight class, and renders the combined text.
func (e *explainer) Explain(userID, restaurantID string, ctx Context) (Explanation, error) {
	rest, ok := e.byID[restaurantID]
	if !ok {
		return Explanation{}, fmt.Errorf("restaurant %q: %w", restaurantID, ErrRestaurantNotFound)
	}
	user := e.users[userID]
	visited := e.matrix.Row(userID)

	var reasons []Reason
	add := func(kind ReasonKind, weight ReasonWeight, text string) {
		reasons = append(reasons, Reason{Kind: kind, Weight: weight, Text: text})
	}

	if cuisine, count := e.topCuisine(visited); cuisine != "" && cuisine == rest.Cuisine {
		add(ReasonUserHistory, WeightHigh,
			fmt.Sprintf("You've ordered %s %d times", cuisine, count))
	}

	if n := e.similarOrderers(userID, restaurantID); n >= e.cfg.MinSimilarOrderers {
		add(ReasonCollaborative, WeightHigh,
			fmt.Sprintf("Popular among users with similar taste (%d similar users love this)", n))
	}

	if rest.AvgRating >= e.cfg.HighRating {
		add(ReasonQuality, WeightMedium,
			fmt.Sprintf("Rated %.1f/5 by %d customers", rest.AvgRating, rest.TotalReviews))
	}

	if ctx.TimeOfDay != "" && containsString(contextualMatches[ctx.TimeOfDay], rest.Cuisine) {
		add(ReasonContextual, WeightMedium,
			fmt.Sprintf("Perfect for %s", mealName(ctx.TimeOfDay)))
	}

	if _, ordered := visited[restaurantID]; !ordered && user.FavoriteCuisine != "" && rest.Cuisine == user.FavoriteCuisine {
		add(ReasonDiscovery, WeightMedium, "New restaurant that matches your taste")
	}

	if rest.AvgDeliveryMins <= e.cfg.FastDeliveryMins {
		add(ReasonProximity, WeightLow,
			fmt.Sprintf("Quick delivery in ~%d minutes", rest.AvgDeliveryMins))
	}

	if rest.ValueScore >= e.cfg.HighValue {
		add(ReasonValue, WeightLow,
			fmt.Sprintf("Great value for money (₹%d with %.1f★ rating)", int(rest.AvgOrderValue), rest.AvgRating))
	}

	if rest.PopularityScore >= e.cfg.HighPopularity {
		add(ReasonTrending, WeightLow, "Trending in your area this week")
	}

	sort.SliceStable(reasons, func(i, j int) bool {
		return reasons[i].Weight < reasons[j].Weight
	})

	return buildExplanation(rest, reasons), nil
}

func buildExplanation(rest Restaurant, reasons []Reason) Explanation {
	exp := Explanation{
		RestaurantID:   rest.ID,
		RestaurantName: rest.Name,
		Reasons:        reasons,
	}
	if len(reasons) == 0 {
		exp.PrimaryReason = "Recommended for you"
		exp.Text = exp.PrimaryReason
		return exp
	}

	exp.PrimaryReason = reasons[0].Text
	switch len(reasons) {
	case 1:
		exp.Text = exp.PrimaryReason
	case 2:
		exp.Text = fmt.Sprintf("%s. Also, %s", exp.PrimaryReason, strings.ToLower(reasons[1].Text))
	default:
		exp.Text = fmt.Sprintf("%s. %s • %s", exp.PrimaryReason, reasons[1].Text, reasons[2].Text)
	}

	end := len(reasons)
	if end > 4 {
		end = 4
	}
	for _, r := range reasons[1:end] {
		exp.SupportingReasons = append(exp.SupportingReasons, r.Text)
	}
	return exp
}

// topCuisine returns the cuisine the user has visited most restaurants
// of, with its visit count. Alphabetical tie-break keeps it stable.
func (e *explainer) topCuisine(visited map[string]float64) (string, int) {
	counts := make(map[string]int)
	for restID := range visited {
		if rest, ok := e.byID[restID]; ok {
			counts[rest.Cuisine]++
		}
	}
	var top string
	var best int
	for cuisine, n := range counts {
		if n > best || (n == best && (top == "" || cuisine < top)) {
			top, best = cuisine, n
		}
	}
	return top, best
}

// similarOrderers counts how many of the user's nearest neighbors have
// ordered from the restaurant.
func (e *explainer) similarOrderers(userID, restaurantID string) int {
	var n int
	for _, su := range e.matrix.SimilarUsers(userID, e.cfg.SimilarUsersK) {
		if _, ok := e.matrix.Row(su.UserID)[restaurantID]; ok {
			n++
		}
	}
	return n
}

// mealName turns a time slot constant into display form,
// "late_night" becomes "Late Night".
func mealName(timeOfDay string) string {
	parts := strings.Split(timeOfDay, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
