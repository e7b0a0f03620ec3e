// ML-Restaurant-Recommendations - Hybrid Restaurant Recommendation Engine
// Copyright 2026 Ayush Saxena (iamAyushSaxena)
// SPDX-License-Identifier: MIT
// https://github.com/iamAyushSaxena/ML-Restaurant-Recommendations

package recommend

import (
	"math"
	"sort"
)

// Interaction is one sparse entry of the user-restaurant matrix.
type Interaction struct {
	// UserID is the opaque user identifier.
	UserID string `json:"user_id"`

	// RestaurantID is the opaque restaurant identifier.
	RestaurantID string `json:"restaurant_id"`

	// Strength is the non-negative interaction strength.
	Strength float64 `json:"strength"`
}

// InteractionStrength derives the matrix entry for one (user, restaurant)
// pair from raw order aggregates: log-scaled order frequency, the mean
// rating given, and exponential recency decay with a 30-day half-life.
func InteractionStrength(orderCount int, avgRating float64, daysSinceLast float64) float64 {
	recency := math.Exp(-daysSinceLast / 30.0)
	return 0.4*math.Log1p(float64(orderCount)) + 0.3*(avgRating/5.0) + 0.3*recency
}

// Matrix is the sparse user-restaurant interaction matrix. Rows are users,
// columns restaurants; an absent entry means strength 0. All values are
// non-negative. The matrix is immutable once built and safe for concurrent
// reads.
//
// Similarity is computed on demand — one row against all rows — rather
// than from a precomputed user-user matrix, keeping per-query memory at
// O(users) instead of O(users²).
type Matrix struct {
	// userIDs preserves row insertion order; ties in similarity retain
	// this order.
	userIDs []string

	rows  map[string]map[string]float64
	norms map[string]float64
}

// SimilarUser pairs a user with their cosine similarity to a target.
type SimilarUser struct {
	UserID     string  `json:"user_id"`
	Similarity float64 `json:"similarity"`
}

// NewMatrix builds the matrix from sparse entries. Entries with
// non-positive strength are dropped; later duplicates overwrite earlier
// ones. Row order follows first appearance of each user.
func NewMatrix(entries []Interaction) *Matrix {
	m := &Matrix{
		rows:  make(map[string]map[string]float64),
		norms: make(map[string]float64),
	}

	for _, e := range entries {
		if e.Strength <= 0 {
			continue
		}
		row, ok := m.rows[e.UserID]
		if !ok {
			row = make(map[string]float64)
			m.rows[e.UserID] = row
			m.userIDs = append(m.userIDs, e.UserID)
		}
		row[e.RestaurantID] = e.Strength
	}

	for userID, row := range m.rows {
		var sq float64
		for _, v := range row {
			sq += v * v
		}
		m.norms[userID] = math.Sqrt(sq)
	}

	return m
}

// Users returns the number of rows.
func (m *Matrix) Users() int {
	return len(m.userIDs)
}

// HasUser reports whether the user has a row in the matrix.
func (m *Matrix) HasUser(userID string) bool {
	_, ok := m.rows[userID]
	return ok
}

// Row returns the user's sparse interaction row. The returned map is
// shared and must not be mutated; nil for unknown users.
func (m *Matrix) Row(userID string) map[string]float64 {
	return m.rows[userID]
}

// NonzeroCount returns how many restaurants the user has interacted with.
func (m *Matrix) NonzeroCount(userID string) int {
	return len(m.rows[userID])
}

// VisitedRestaurants returns the ids of restaurants the user has a
// nonzero entry for, in unspecified order.
func (m *Matrix) VisitedRestaurants(userID string) []string {
	row := m.rows[userID]
	if len(row) == 0 {
		return nil
	}
	ids := make([]string, 0, len(row))
	for id := range row {
		ids = append(ids, id)
	}
	return ids
}

// SimilarUsers returns the k users most similar to the target by cosine
// similarity, descending, excluding the target itself and any user with
// similarity <= 0. An unknown target yields an empty result, which
// callers must treat as "no collaborative signal", not an error.
func (m *Matrix) SimilarUsers(targetID string, k int) []SimilarUser {
	target, ok := m.rows[targetID]
	if !ok || k <= 0 {
		return nil
	}
	targetNorm := m.norms[targetID]
	if targetNorm == 0 {
		return nil
	}

	// One pass of the target row against every other row. The target
	// row is the smaller operand, so the dot product iterates it.
	similar := make([]SimilarUser, 0, len(m.userIDs)-1)
	for _, otherID := range m.userIDs {
		if otherID == targetID {
			continue
		}
		otherNorm := m.norms[otherID]
		if otherNorm == 0 {
			continue
		}

		other := m.rows[otherID]
		var dot float64
		for restID, v := range target {
			if w, ok := other[restID]; ok {
				dot += v * w
			}
		}
		if dot <= 0 {
			continue
		}

		similar = append(similar, SimilarUser{
			UserID:     otherID,
			Similarity: dot / (targetNorm * otherNorm),
		})
	}

	// Stable sort keeps matrix row order for floating-point ties.
	sort.SliceStable(similar, func(i, j int) bool {
		return similar[i].Similarity > similar[j].Similarity
	})

	if len(similar) > k {
		similar = similar[:k]
	}
	return similar
}
