// ML-Restaurant-Recommendations - Hybrid Restaurant Recommendation Engine
// Copyright 2026 Ayush Saxena (iamAyushSaxena)
// SPDX-License-Identifier: MIT
// https://github.com/iamAyushSaxena/ML-Restaurant-Recommendations

package recommend

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
)

func testDataset() Dataset {
	var restaurants []Restaurant
	cuisines := []string{"Biryani", "Chinese", "North Indian", "Cafe", "Healthy"}
	for i := 0; i < 25; i++ {
		r := testRestaurant(fmt.Sprintf("r%02d", i), cuisines[i%len(cuisines)], i%3 == 0, 3.5+float64(i%4)*0.4, 1+i%4, 20+i%40)
		r.PopularityScore = float64(i%10) / 10
		r.ValueScore = r.AvgRating / float64(r.PriceRange)
		restaurants = append(restaurants, r)
	}

	users := []User{
		{ID: "regular", FavoriteCuisine: "Biryani", MostOrderedCuisine: "Chinese", PriceSensitivity: "medium", AvgRatingGiven: 4.2},
		{ID: "peer", FavoriteCuisine: "Biryani", PriceSensitivity: "medium", AvgRatingGiven: 4.0},
		{ID: "fresh", FavoriteCuisine: "Cafe", PriceSensitivity: "medium", AvgRatingGiven: 4.0},
	}

	interactions := []Interaction{
		{UserID: "regular", RestaurantID: "r00", Strength: 1.2},
		{UserID: "regular", RestaurantID: "r05", Strength: 0.9},
		{UserID: "regular", RestaurantID: "r10", Strength: 1.5},
		{UserID: "peer", RestaurantID: "r00", Strength: 1.0},
		{UserID: "peer", RestaurantID: "r05", Strength: 1.1},
		{UserID: "peer", RestaurantID: "r15", Strength: 1.4},
	}

	return Dataset{Users: users, Restaurants: restaurants, Interactions: interactions}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Fit(testDataset()); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestEngineNotFitted(t *testing.T) {
	e, err := NewEngine(DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.Recommend(Request{UserID: "u"}); !errors.Is(err, ErrNotFitted) {
		t.Errorf("Recommend before Fit: err = %v, want ErrNotFitted", err)
	}
	if _, err := e.Popular(5); !errors.Is(err, ErrNotFitted) {
		t.Errorf("Popular before Fit: err = %v, want ErrNotFitted", err)
	}
}

func TestEngineInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights.Collaborative = -0.4
	if _, err := NewEngine(cfg, zerolog.Nop()); err == nil {
		t.Error("expected validation error for a negative weight")
	}
}

func TestRecommendRanksAndScores(t *testing.T) {
	e := newTestEngine(t)

	resp, err := e.Recommend(Request{UserID: "regular", N: 10})
	if err != nil {
		t.Fatal(err)
	}
	if !resp.HasHistory {
		t.Error("regular has 3 interactions, HasHistory should be true")
	}
	if len(resp.Restaurants) == 0 {
		t.Fatal("expected recommendations")
	}
	for i, sr := range resp.Restaurants {
		if sr.Rank != i+1 {
			t.Errorf("rank[%d] = %d, want %d", i, sr.Rank, i+1)
		}
		if i > 0 && sr.FinalScore > resp.Restaurants[i-1].FinalScore {
			t.Error("final scores must be non-increasing")
		}
		if sr.FinalScore < 0 || sr.FinalScore > 1+1e-9 {
			t.Errorf("final score %v out of [0, 1]", sr.FinalScore)
		}
		if sr.Restaurant.AvgRating < 3.0 {
			t.Errorf("restaurant %s below the minimum rating filter", sr.Restaurant.ID)
		}
	}
}

func TestRecommendDeterminism(t *testing.T) {
	e := newTestEngine(t)
	req := Request{UserID: "regular", N: 10}

	first, err := e.Recommend(req)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := e.Recommend(req)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(first.Restaurants, again.Restaurants) {
			t.Fatal("identical requests must produce identical rankings")
		}
	}
}

func TestRecommendColdUserDropsCollaborative(t *testing.T) {
	e := newTestEngine(t)

	// fresh has zero interactions: below the history threshold, the
	// collaborative component must be zero everywhere.
	resp, err := e.Recommend(Request{UserID: "fresh", N: 10})
	if err != nil {
		t.Fatal(err)
	}
	if resp.HasHistory {
		t.Error("fresh should not count as having history")
	}
	for _, sr := range resp.Restaurants {
		if sr.CollaborativeScore != 0 {
			t.Errorf("restaurant %s has cf score %v for a cold user", sr.Restaurant.ID, sr.CollaborativeScore)
		}
	}
}

func TestRecommendUnknownUserStillServed(t *testing.T) {
	e := newTestEngine(t)

	resp, err := e.Recommend(Request{UserID: "total-stranger", N: 5})
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Restaurants) == 0 {
		t.Error("unknown users must still get recommendations")
	}
}

func TestRecommendExcludeOrdered(t *testing.T) {
	e := newTestEngine(t)

	resp, err := e.Recommend(Request{UserID: "regular", N: 25, ExcludeOrdered: true})
	if err != nil {
		t.Fatal(err)
	}
	for _, sr := range resp.Restaurants {
		switch sr.Restaurant.ID {
		case "r00", "r05", "r10":
			t.Errorf("already-ordered restaurant %s in results", sr.Restaurant.ID)
		}
	}
}

func TestRecommendDistanceFilter(t *testing.T) {
	ds := testDataset()
	for i := range ds.Restaurants {
		ds.Restaurants[i].Location = &Location{Lat: 28.5, Lon: 77.1}
	}
	// One outlier well beyond the 10 km cutoff.
	ds.Restaurants[0].Location = &Location{Lat: 28.9, Lon: 77.1}

	e, err := NewEngine(DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Fit(ds); err != nil {
		t.Fatal(err)
	}

	loc := &Location{Lat: 28.5, Lon: 77.1}
	resp, err := e.Recommend(Request{UserID: "regular", N: 25, Location: loc})
	if err != nil {
		t.Fatal(err)
	}
	for _, sr := range resp.Restaurants {
		if sr.Restaurant.ID == ds.Restaurants[0].ID {
			t.Error("restaurant beyond the distance cutoff in results")
		}
	}
}

func TestRecommendCandidateUniverse(t *testing.T) {
	// Context modulates the pool the collaborative and content scorers
	// surfaced; it must never add restaurants of its own. With 60
	// restaurants and an unknown user, content contributes its top 50
	// and nothing else may appear, even when a time boost favors
	// restaurants outside that pool.
	var restaurants []Restaurant
	for i := 0; i < 60; i++ {
		cuisine := "Healthy"
		if i%6 == 0 {
			cuisine = "Fast Food"
		}
		r := testRestaurant(fmt.Sprintf("r%02d", i), cuisine, false, 4.0, 2, 30)
		r.PopularityScore = float64(59-i) / 59
		restaurants = append(restaurants, r)
	}

	e, err := NewEngine(DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Fit(Dataset{Restaurants: restaurants}); err != nil {
		t.Fatal(err)
	}

	resp, err := e.Recommend(Request{
		UserID:  "stranger",
		N:       60,
		Context: Context{TimeOfDay: TimeLateNight},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Restaurants) > 50 {
		t.Errorf("got %d results, candidate pool is capped at 50 per scorer", len(resp.Restaurants))
	}
	for _, sr := range resp.Restaurants {
		if sr.CollaborativeScore == 0 && sr.ContentScore == 0 {
			t.Errorf("restaurant %s entered the ranking on context alone", sr.Restaurant.ID)
		}
	}
}

func TestRecommendContextNormalizedOverPool(t *testing.T) {
	// The contextual maximum lives inside the candidate pool, so some
	// candidate always carries a contextual score of exactly 1.0.
	e := newTestEngine(t)

	resp, err := e.Recommend(Request{UserID: "regular", N: 25, Context: Context{TimeOfDay: TimeDinner}})
	if err != nil {
		t.Fatal(err)
	}
	var max float64
	for _, sr := range resp.Restaurants {
		if sr.ContextScore > max {
			max = sr.ContextScore
		}
	}
	if math.Abs(max-1.0) > 1e-9 {
		t.Errorf("max contextual score = %v, want 1.0 within the pool", max)
	}
}

func TestRecommendNClamped(t *testing.T) {
	e := newTestEngine(t)

	resp, err := e.Recommend(Request{UserID: "regular"})
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Restaurants) > DefaultConfig().Limits.DefaultN {
		t.Errorf("got %d results, default cap is %d", len(resp.Restaurants), DefaultConfig().Limits.DefaultN)
	}
}

func TestEngineRefit(t *testing.T) {
	e := newTestEngine(t)

	ds := Dataset{Restaurants: []Restaurant{testRestaurant("only", "Cafe", false, 4.5, 2, 25)}}
	if err := e.Fit(ds); err != nil {
		t.Fatal(err)
	}

	resp, err := e.Recommend(Request{UserID: "anyone", N: 5})
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Restaurants) != 1 || resp.Restaurants[0].Restaurant.ID != "only" {
		t.Errorf("refit dataset not in effect: %v", resp.Restaurants)
	}
}

func TestEngineFitEmpty(t *testing.T) {
	e, err := NewEngine(DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Fit(Dataset{}); err == nil {
		t.Error("fitting an empty dataset should fail")
	}
}

func TestExplainAllSkipsUnknown(t *testing.T) {
	e := newTestEngine(t)

	exps, err := e.ExplainAll("regular", []string{"r00", "ghost", "r05"}, Context{})
	if err != nil {
		t.Fatal(err)
	}
	if len(exps) != 2 {
		t.Errorf("got %d explanations, want 2 with the unknown id skipped", len(exps))
	}
}

func TestSimilarProfileUnknownUser(t *testing.T) {
	e := newTestEngine(t)
	if _, err := e.SimilarProfile("ghost", 5); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestTopN(t *testing.T) {
	scores := map[string]float64{"a": 0.9, "b": 0.5, "c": 0.9, "d": 0.1}
	got := topN(scores, 2)
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	// Ties on 0.9 break on id ascending: a kept, c kept, b dropped.
	if _, ok := got["a"]; !ok {
		t.Error("a missing from top 2")
	}
	if _, ok := got["c"]; !ok {
		t.Error("c missing from top 2")
	}
}
