// ML-Restaurant-Recommendations - Hybrid Restaurant Recommendation Engine
// Copyright 2026 Ayush Saxena (iamAyushSaxena)
// SPDX-License-Identifier: MIT
// https://github.com/iamAyushSaxena/ML-Restaurant-Recommendations

package recommend

// collaborativeScorer aggregates restaurant scores from a target user's
// nearest neighbors in the interaction matrix.
//
// For a target user u and restaurant r:
//
//	score(u, r) = sum_{v in N(u)} strength(v, r) * sim(u, v) / sum_{v in N(u)} sim(u, v)
//
// where N(u) is the top-k most similar users. Scores are then max-normalized
// so a nonempty result always spans (0, 1].
type collaborativeScorer struct {
	matrix *Matrix
	cfg    CollaborativeConfig
}

func newCollaborativeScorer(matrix *Matrix, cfg CollaborativeConfig) *collaborativeScorer {
	return &collaborativeScorer{matrix: matrix, cfg: cfg}
}

// ScoreForUser returns restaurant scores in [0, 1] for a known user. An
// unknown user or a user with no positive-similarity neighbors yields an
// empty map: no collaborative signal, not an error.
func (s *collaborativeScorer) ScoreForUser(userID string, excludeVisited bool) map[string]float64 {
	if !s.matrix.HasUser(userID) {
		return map[string]float64{}
	}

	neighbors := s.matrix.SimilarUsers(userID, s.cfg.TopSimilarUsers)
	if len(neighbors) == 0 {
		return map[string]float64{}
	}

	var totalSim float64
	for _, n := range neighbors {
		totalSim += n.Similarity
	}

	scores := make(map[string]float64)
	for _, n := range neighbors {
		for restID, strength := range s.matrix.Row(n.UserID) {
			scores[restID] += strength * n.Similarity
		}
	}

	if totalSim > 0 {
		for restID := range scores {
			scores[restID] /= totalSim
		}
	}

	if excludeVisited {
		for restID := range s.matrix.Row(userID) {
			delete(scores, restID)
		}
	}

	maxNormalize(scores)
	return scores
}

// maxNormalize divides every score by the maximum, mapping the result set
// onto (0, 1]. Empty maps are left untouched.
func maxNormalize(scores map[string]float64) {
	var max float64
	for _, v := range scores {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return
	}
	for k := range scores {
		scores[k] /= max
	}
}
