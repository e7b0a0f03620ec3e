// ML-Restaurant-Recommendations - Hybrid Restaurant Recommendation Engine
// Copyright 2026 Ayush Saxena (iamAyushSaxena)
// SPDX-License-Identifier: MIT
// https://github.com/iamAyushSaxena/ML-Restaurant-Recommendations

package recommend

import (
	"errors"
	"strings"
	"testing"
)

func newTestExplainer(users map[string]User, restaurants []Restaurant, entries []Interaction) *explainer {
	return newExplainer(users, restaurants, NewMatrix(entries), DefaultConfig().Explain)
}

func TestExplainUnknownRestaurant(t *testing.T) {
	e := newTestExplainer(nil, nil, nil)
	_, err := e.Explain("u1", "ghost", Context{})
	if !errors.Is(err, ErrRestaurantNotFound) {
		t.Errorf("err = %v, want ErrRestaurantNotFound", err)
	}
}

func TestExplainNoReasons(t *testing.T) {
	// Low rating, slow delivery, no history, nothing to say.
	r := testRestaurant("r1", "Healthy", false, 3.2, 2, 55)
	e := newTestExplainer(nil, []Restaurant{r}, nil)

	exp, err := e.Explain("u1", "r1", Context{})
	if err != nil {
		t.Fatal(err)
	}
	if exp.PrimaryReason != "Recommended for you" {
		t.Errorf("primary = %q, want the generic fallback", exp.PrimaryReason)
	}
	if exp.Text != "Recommended for you" {
		t.Errorf("text = %q, want the generic fallback", exp.Text)
	}
	if len(exp.Reasons) != 0 {
		t.Errorf("got %d reasons, want 0", len(exp.Reasons))
	}
}

func TestExplainQualityReason(t *testing.T) {
	r := testRestaurant("r1", "Healthy", false, 4.3, 2, 55)
	r.TotalReviews = 812
	e := newTestExplainer(nil, []Restaurant{r}, nil)

	exp, err := e.Explain("u1", "r1", Context{})
	if err != nil {
		t.Fatal(err)
	}
	if exp.PrimaryReason != "Rated 4.3/5 by 812 customers" {
		t.Errorf("primary = %q", exp.PrimaryReason)
	}
}

func TestExplainHighWeightLeads(t *testing.T) {
	// History (high weight) must outrank quality (medium) regardless of
	// detection order.
	r := testRestaurant("r1", "Biryani", false, 4.5, 2, 25)
	r.ValueScore = 2.0
	users := map[string]User{"u1": {ID: "u1"}}
	entries := []Interaction{
		{UserID: "u1", RestaurantID: "r1", Strength: 2},
	}
	e := newTestExplainer(users, []Restaurant{r}, entries)

	exp, err := e.Explain("u1", "r1", Context{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(exp.PrimaryReason, "You've ordered Biryani") {
		t.Errorf("primary = %q, want the history reason first", exp.PrimaryReason)
	}
	for i := 1; i < len(exp.Reasons); i++ {
		if exp.Reasons[i].Weight < exp.Reasons[i-1].Weight {
			t.Error("reasons must be ordered high to low weight")
		}
	}
}

func TestExplainCollaborativeReason(t *testing.T) {
	r := testRestaurant("hot", "Chinese", false, 3.5, 2, 55)
	users := map[string]User{"u1": {ID: "u1"}}
	entries := []Interaction{
		{UserID: "u1", RestaurantID: "shared", Strength: 1},
	}
	// Three similar users who all ordered from "hot".
	for _, id := range []string{"a", "b", "c"} {
		entries = append(entries,
			Interaction{UserID: id, RestaurantID: "shared", Strength: 1},
			Interaction{UserID: id, RestaurantID: "hot", Strength: 2},
		)
	}
	shared := testRestaurant("shared", "Healthy", false, 3.2, 2, 55)
	e := newTestExplainer(users, []Restaurant{r, shared}, entries)

	exp, err := e.Explain("u1", "hot", Context{})
	if err != nil {
		t.Fatal(err)
	}
	want := "Popular among users with similar taste (3 similar users love this)"
	if exp.PrimaryReason != want {
		t.Errorf("primary = %q, want %q", exp.PrimaryReason, want)
	}
}

func TestExplainTextComposition(t *testing.T) {
	// Quality + proximity: two reasons join with "Also," and the second
	// is lowercased.
	r := testRestaurant("r1", "Healthy", false, 4.5, 2, 25)
	r.TotalReviews = 100
	e := newTestExplainer(nil, []Restaurant{r}, nil)

	exp, err := e.Explain("u1", "r1", Context{})
	if err != nil {
		t.Fatal(err)
	}
	if len(exp.Reasons) != 2 {
		t.Fatalf("got %d reasons, want 2", len(exp.Reasons))
	}
	want := "Rated 4.5/5 by 100 customers. Also, quick delivery in ~25 minutes"
	if exp.Text != want {
		t.Errorf("text = %q, want %q", exp.Text, want)
	}
	if len(exp.SupportingReasons) != 1 {
		t.Errorf("supporting = %v, want the single runner-up", exp.SupportingReasons)
	}
}

func TestExplainSecondReasonFullyLowercased(t *testing.T) {
	// The Also-clause lowercases the whole reason, not just its first
	// rune, so interior capitals like "Late Night" flatten too.
	r := testRestaurant("r1", "Street Food", false, 4.2, 2, 45)
	r.TotalReviews = 88
	e := newTestExplainer(nil, []Restaurant{r}, nil)

	exp, err := e.Explain("u1", "r1", Context{TimeOfDay: TimeLateNight})
	if err != nil {
		t.Fatal(err)
	}
	if len(exp.Reasons) != 2 {
		t.Fatalf("got %d reasons, want 2", len(exp.Reasons))
	}
	want := "Rated 4.2/5 by 88 customers. Also, perfect for late night"
	if exp.Text != want {
		t.Errorf("text = %q, want %q", exp.Text, want)
	}
}

func TestExplainThreeReasonsBullets(t *testing.T) {
	r := testRestaurant("r1", "Biryani", false, 4.5, 2, 25)
	r.PopularityScore = 0.9
	e := newTestExplainer(nil, []Restaurant{r}, nil)

	exp, err := e.Explain("u1", "r1", Context{TimeOfDay: TimeDinner})
	if err != nil {
		t.Fatal(err)
	}
	if len(exp.Reasons) < 3 {
		t.Fatalf("got %d reasons, want at least 3", len(exp.Reasons))
	}
	if !strings.Contains(exp.Text, " • ") {
		t.Errorf("text = %q, want bullet-joined supporting reasons", exp.Text)
	}
}

func TestExplainContextualReason(t *testing.T) {
	r := testRestaurant("r1", "Street Food", false, 3.4, 2, 55)
	e := newTestExplainer(nil, []Restaurant{r}, nil)

	exp, err := e.Explain("u1", "r1", Context{TimeOfDay: TimeLateNight})
	if err != nil {
		t.Fatal(err)
	}
	if exp.PrimaryReason != "Perfect for Late Night" {
		t.Errorf("primary = %q, want %q", exp.PrimaryReason, "Perfect for Late Night")
	}
}

func TestExplainDiscoveryReason(t *testing.T) {
	r := testRestaurant("new", "Biryani", false, 3.5, 2, 55)
	users := map[string]User{"u1": {ID: "u1", FavoriteCuisine: "Biryani"}}
	e := newTestExplainer(users, []Restaurant{r}, nil)

	exp, err := e.Explain("u1", "new", Context{})
	if err != nil {
		t.Fatal(err)
	}
	if exp.PrimaryReason != "New restaurant that matches your taste" {
		t.Errorf("primary = %q", exp.PrimaryReason)
	}
}

func TestMealName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"late_night", "Late Night"},
		{"dinner", "Dinner"},
		{"evening_snack", "Evening Snack"},
	}
	for _, tt := range tests {
		if got := mealName(tt.in); got != tt.want {
			t.Errorf("mealName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
