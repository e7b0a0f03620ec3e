// ML-Restaurant-Recommendations - Hybrid Restaurant Recommendation Engine
// Copyright 2026 Ayush Saxena (iamAyushSaxena)
// SPDX-License-Identifier: MIT
// https://github.com/iamAyushSaxena/ML-Restaurant-Recommendations

package recommend

import (
	"math"
	"testing"
)

func TestInteractionStrength(t *testing.T) {
	tests := []struct {
		name       string
		orderCount int
		avgRating  float64
		daysSince  float64
		want       float64
	}{
		{
			name:       "single fresh five-star order",
			orderCount: 1,
			avgRating:  5.0,
			daysSince:  0,
			want:       0.4*math.Ln2 + 0.3 + 0.3,
		},
		{
			name:       "zero orders still carries rating and recency",
			orderCount: 0,
			avgRating:  4.0,
			daysSince:  30,
			want:       0.3*0.8 + 0.3*math.Exp(-1),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InteractionStrength(tt.orderCount, tt.avgRating, tt.daysSince)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("InteractionStrength() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInteractionStrengthMonotonicity(t *testing.T) {
	// More orders, higher ratings, and fresher activity must never
	// decrease the strength.
	base := InteractionStrength(5, 4.0, 10)
	if InteractionStrength(10, 4.0, 10) <= base {
		t.Error("more orders should increase strength")
	}
	if InteractionStrength(5, 5.0, 10) <= base {
		t.Error("higher rating should increase strength")
	}
	if InteractionStrength(5, 4.0, 60) >= base {
		t.Error("staler activity should decrease strength")
	}
}

func TestNewMatrixDropsNonPositive(t *testing.T) {
	m := NewMatrix([]Interaction{
		{UserID: "u1", RestaurantID: "r1", Strength: 1.5},
		{UserID: "u1", RestaurantID: "r2", Strength: 0},
		{UserID: "u2", RestaurantID: "r1", Strength: -0.1},
	})

	if m.Users() != 1 {
		t.Fatalf("Users() = %d, want 1", m.Users())
	}
	if m.NonzeroCount("u1") != 1 {
		t.Errorf("NonzeroCount(u1) = %d, want 1", m.NonzeroCount("u1"))
	}
	if m.HasUser("u2") {
		t.Error("u2 should not have a row: only entry was non-positive")
	}
}

func TestSimilarUsers(t *testing.T) {
	// twin has the same taste as target; stranger shares nothing.
	m := NewMatrix([]Interaction{
		{UserID: "target", RestaurantID: "r1", Strength: 2},
		{UserID: "target", RestaurantID: "r2", Strength: 1},
		{UserID: "twin", RestaurantID: "r1", Strength: 2},
		{UserID: "twin", RestaurantID: "r2", Strength: 1},
		{UserID: "partial", RestaurantID: "r1", Strength: 1},
		{UserID: "partial", RestaurantID: "r9", Strength: 3},
		{UserID: "stranger", RestaurantID: "r7", Strength: 5},
	})

	got := m.SimilarUsers("target", 10)
	if len(got) != 2 {
		t.Fatalf("SimilarUsers() returned %d users, want 2", len(got))
	}
	if got[0].UserID != "twin" {
		t.Errorf("most similar = %s, want twin", got[0].UserID)
	}
	if math.Abs(got[0].Similarity-1.0) > 1e-9 {
		t.Errorf("twin similarity = %v, want 1.0", got[0].Similarity)
	}
	if got[1].UserID != "partial" {
		t.Errorf("second similar = %s, want partial", got[1].UserID)
	}
	for _, su := range got {
		if su.UserID == "target" {
			t.Error("target must not appear in its own neighborhood")
		}
		if su.Similarity <= 0 || su.Similarity > 1+1e-9 {
			t.Errorf("similarity %v out of (0, 1]", su.Similarity)
		}
	}
}

func TestSimilarUsersTruncation(t *testing.T) {
	entries := []Interaction{{UserID: "target", RestaurantID: "shared", Strength: 1}}
	for i := 0; i < 5; i++ {
		entries = append(entries, Interaction{
			UserID:       string(rune('a' + i)),
			RestaurantID: "shared",
			Strength:     float64(i + 1),
		})
	}
	m := NewMatrix(entries)

	got := m.SimilarUsers("target", 3)
	if len(got) != 3 {
		t.Fatalf("SimilarUsers(k=3) returned %d, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Similarity > got[i-1].Similarity {
			t.Error("similarities must be non-increasing")
		}
	}
}

func TestSimilarUsersUnknownTarget(t *testing.T) {
	m := NewMatrix([]Interaction{{UserID: "u1", RestaurantID: "r1", Strength: 1}})
	if got := m.SimilarUsers("ghost", 5); len(got) != 0 {
		t.Errorf("unknown target should yield empty result, got %d", len(got))
	}
}
