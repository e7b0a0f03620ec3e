// ML-Restaurant-Recommendations - Hybrid Restaurant Recommendation Engine
// Copyright 2026 Ayush Saxena (iamAyushSaxena)
// SPDX-License-Identifier: MIT
// https://github.com/iamAyushSaxena/ML-Restaurant-Recommendations

package recommend

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	// ErrNotFitted is returned by query methods before Fit has run.
	ErrNotFitted = errors.New("engine not fitted")
	// ErrUserNotFound is returned when an operation requires a known user.
	ErrUserNotFound = errors.New("user not found")
	// ErrRestaurantNotFound is returned for unknown restaurant ids.
	ErrRestaurantNotFound = errors.New("restaurant not found")
)

// Dataset is everything Fit needs: user profiles, the restaurant
// catalog, and the interaction log the matrix is built from.
type Dataset struct {
	Users        []User        `json:"users"`
	Restaurants  []Restaurant  `json:"restaurants"`
	Interactions []Interaction `json:"interactions"`
}

// Engine blends collaborative, content, and contextual signals into a
// single ranking. All query methods are safe for concurrent use; Fit
// swaps the fitted state atomically under a write lock.
type Engine struct {
	cfg *Config
	log zerolog.Logger

	mu    sync.RWMutex
	state *fittedState
}

type fittedState struct {
	users       map[string]User
	restaurants []Restaurant
	matrix      *Matrix

	collaborative *collaborativeScorer
	content       *contentScorer
	contextual    *contextualScorer
	cold          *coldStart
	explain       *explainer

	fittedAt time.Time
}

// NewEngine validates cfg and returns an unfitted engine. The config
// is cloned, so later mutation by the caller has no effect.
func NewEngine(cfg *Config, log zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg: cfg.Clone(),
		log: log.With().Str("component", "recommend").Logger(),
	}, nil
}

// Fit builds the interaction matrix and per-signal scorers from ds.
// Safe to call again with fresh data; queries in flight finish against
// the old state.
func (e *Engine) Fit(ds Dataset) error {
	if len(ds.Restaurants) == 0 {
		return errors.New("fit: no restaurants")
	}

	start := time.Now()
	users := make(map[string]User, len(ds.Users))
	for _, u := range ds.Users {
		users[u.ID] = u
	}
	restaurants := make([]Restaurant, len(ds.Restaurants))
	copy(restaurants, ds.Restaurants)

	matrix := NewMatrix(ds.Interactions)
	st := &fittedState{
		users:         users,
		restaurants:   restaurants,
		matrix:        matrix,
		collaborative: newCollaborativeScorer(matrix, e.cfg.Collaborative),
		content:       newContentScorer(restaurants, users, e.cfg.Content),
		contextual:    newContextualScorer(restaurants, e.cfg.Contextual),
		cold:          newColdStart(restaurants, users, matrix, e.cfg.ColdStart),
		explain:       newExplainer(users, restaurants, matrix, e.cfg.Explain),
		fittedAt:      start,
	}

	e.mu.Lock()
	e.state = st
	e.mu.Unlock()

	e.log.Info().
		Int("users", len(users)).
		Int("restaurants", len(restaurants)).
		Int("interactions", len(ds.Interactions)).
		Dur("elapsed", time.Since(start)).
		Msg("engine fitted")
	return nil
}

// Fitted reports whether the engine has data to serve from, and when
// it was last fitted.
func (e *Engine) Fitted() (bool, time.Time) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.state == nil {
		return false, time.Time{}
	}
	return true, e.state.fittedAt
}

func (e *Engine) snapshot() (*fittedState, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.state == nil {
		return nil, ErrNotFitted
	}
	return e.state, nil
}

// Recommend produces the hybrid ranking for one user. Users below the
// history threshold get the collaborative weight redistributed to the
// remaining signals; unknown users flow through the content scorer's
// popularity fallback, so every request gets an answer.
func (e *Engine) Recommend(req Request) (Response, error) {
	st, err := e.snapshot()
	if err != nil {
		return Response{}, err
	}

	n := req.N
	if n <= 0 {
		n = e.cfg.Limits.DefaultN
	}
	if n > e.cfg.Limits.MaxN {
		n = e.cfg.Limits.MaxN
	}

	hasHistory := st.matrix.NonzeroCount(req.UserID) >= e.cfg.Limits.MinOrdersForCF
	weights := e.cfg.Weights
	if !hasHistory {
		weights = weights.WithoutCollaborative()
	}

	exclude := make(map[string]struct{})
	if req.ExcludeOrdered {
		for restID := range st.matrix.Row(req.UserID) {
			exclude[restID] = struct{}{}
		}
	}

	perScorer := e.cfg.Limits.CandidatesPerScorer
	var cfScores map[string]float64
	if hasHistory {
		cfScores = topN(st.collaborative.ScoreForUser(req.UserID, req.ExcludeOrdered), perScorer)
	}
	contentScores := st.content.ScoreForUser(req.UserID, exclude, perScorer)

	// The candidate universe is what the collaborative and content
	// scorers surfaced. Context only modulates those candidates and is
	// normalized over them, so it can reorder the pool but never grow it.
	candidates := make(map[string]struct{}, len(cfScores)+len(contentScores))
	for id := range cfScores {
		candidates[id] = struct{}{}
	}
	for id := range contentScores {
		candidates[id] = struct{}{}
	}

	ctxScores := st.contextual.Score(req.Context, req.Location, candidates)

	byID := make(map[string]Restaurant, len(st.restaurants))
	for _, rest := range st.restaurants {
		byID[rest.ID] = rest
	}

	scored := make([]ScoredRestaurant, 0, len(candidates))
	for id := range candidates {
		rest, ok := byID[id]
		if !ok {
			continue
		}
		if _, skip := exclude[id]; skip {
			continue
		}
		if rest.AvgRating < e.cfg.Limits.MinRating {
			continue
		}
		if req.Location != nil && rest.Location != nil &&
			DistanceKm(*req.Location, *rest.Location) > e.cfg.Limits.MaxDistanceKm {
			continue
		}

		cf := cfScores[id]
		content := contentScores[id]
		contextual := ctxScores[id]
		scored = append(scored, ScoredRestaurant{
			Restaurant:         rest,
			CollaborativeScore: cf,
			ContentScore:       content,
			ContextScore:       contextual,
			FinalScore:         weights.Collaborative*cf + weights.Content*content + weights.Contextual*contextual,
		})
	}

	sortScored(scored)
	total := len(scored)
	if len(scored) > n {
		scored = scored[:n]
	}
	for i := range scored {
		scored[i].Rank = i + 1
	}

	e.log.Debug().
		Str("user_id", req.UserID).
		Bool("has_history", hasHistory).
		Int("candidates", total).
		Int("returned", len(scored)).
		Msg("recommendations ranked")

	return Response{
		Restaurants:     scored,
		TotalCandidates: total,
		HasHistory:      hasHistory,
		RequestID:       req.RequestID,
	}, nil
}

// Onboard ranks restaurants for a brand-new user from questionnaire
// answers alone.
func (e *Engine) Onboard(prefs Preferences, n int) ([]ScoredRestaurant, error) {
	st, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = e.cfg.Limits.DefaultN
	}
	if n > e.cfg.Limits.MaxN {
		n = e.cfg.Limits.MaxN
	}
	return st.cold.Onboard(prefs, n), nil
}

// Popular returns the globally most popular restaurants.
func (e *Engine) Popular(n int) ([]ScoredRestaurant, error) {
	st, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = e.cfg.Limits.DefaultN
	}
	if n > e.cfg.Limits.MaxN {
		n = e.cfg.Limits.MaxN
	}
	return st.cold.Popular(n), nil
}

// SimilarProfile recommends for a known user with little or no order
// history by borrowing from users with lookalike profiles.
func (e *Engine) SimilarProfile(userID string, n int) ([]ScoredRestaurant, error) {
	st, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	user, ok := st.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	if n <= 0 {
		n = e.cfg.Limits.DefaultN
	}
	if n > e.cfg.Limits.MaxN {
		n = e.cfg.Limits.MaxN
	}
	return st.cold.SimilarProfile(user, n), nil
}

// Explain renders why a restaurant suits a user in the given context.
func (e *Engine) Explain(userID, restaurantID string, ctx Context) (Explanation, error) {
	st, err := e.snapshot()
	if err != nil {
		return Explanation{}, err
	}
	return st.explain.Explain(userID, restaurantID, ctx)
}

// ExplainAll explains a batch of restaurants for one user, silently
// skipping ids the catalog does not know.
func (e *Engine) ExplainAll(userID string, restaurantIDs []string, ctx Context) ([]Explanation, error) {
	st, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	out := make([]Explanation, 0, len(restaurantIDs))
	for _, restID := range restaurantIDs {
		exp, err := st.explain.Explain(userID, restID, ctx)
		if err != nil {
			if errors.Is(err, ErrRestaurantNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, exp)
	}
	return out, nil
}

// topN keeps the n highest-scoring entries of scores, ties broken on
// id ascending so candidate pools are reproducible.
func topN(scores map[string]float64, n int) map[string]float64 {
	if n <= 0 || len(scores) <= n {
		return scores
	}
	type kv struct {
		id    string
		score float64
	}
	entries := make([]kv, 0, len(scores))
	for id, score := range scores {
		entries = append(entries, kv{id, score})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].score != entries[j].score {
			return entries[i].score > entries[j].score
		}
		return entries[i].id < entries[j].id
	})
	out := make(map[string]float64, n)
	for _, e := range entries[:n] {
		out[e.id] = e.score
	}
	return out
}
