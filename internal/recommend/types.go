// ML-Restaurant-Recommendations - Hybrid Restaurant Recommendation Engine
// Copyright 2026 Ayush Saxena (iamAyushSaxena)
// SPDX-License-Identifier: MIT
// https://github.com/iamAyushSaxena/ML-Restaurant-Recommendations

package recommend

// DietaryPreference classifies a user's declared dietary restriction.
type DietaryPreference string

const (
	// DietVeg restricts candidates to vegetarian-only restaurants.
	DietVeg DietaryPreference = "veg"
	// DietNonVeg places no restriction on candidates.
	DietNonVeg DietaryPreference = "non_veg"
	// DietVegan restricts candidates to vegetarian-only restaurants.
	DietVegan DietaryPreference = "vegan"
	// DietNone means the user declared no preference.
	DietNone DietaryPreference = "no_preference"
)

// Restricts reports whether the preference requires veg-only restaurants.
func (d DietaryPreference) Restricts() bool {
	return d == DietVeg || d == DietVegan
}

// Location is a geographic point.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// User is a read-only user profile produced by feature engineering.
// The engine never mutates it.
type User struct {
	// ID is the opaque user identifier (e.g. "user_000123").
	ID string `json:"user_id"`

	// TotalOrders is the user's lifetime order count.
	TotalOrders int `json:"total_orders"`

	// AvgOrderValue is the mean order value in rupees.
	AvgOrderValue float64 `json:"avg_order_value"`

	// FavoriteCuisine is the user's stated favorite cuisine.
	FavoriteCuisine string `json:"favorite_cuisine"`

	// MostOrderedCuisine is the cuisine the user orders most often.
	// May be empty for users with no orders; treated as "no match".
	MostOrderedCuisine string `json:"most_ordered_cuisine,omitempty"`

	// PriceSensitivity is one of "low", "medium", "high".
	PriceSensitivity string `json:"price_sensitivity"`

	// AvgRatingGiven is the mean rating this user gives (1-5).
	AvgRatingGiven float64 `json:"avg_rating_given"`

	// DietaryPreference is the user's dietary restriction.
	DietaryPreference DietaryPreference `json:"dietary_preference"`

	// Location is the user's home location, if known.
	Location *Location `json:"location,omitempty"`
}

// Restaurant is a read-only restaurant profile produced by feature engineering.
type Restaurant struct {
	// ID is the opaque restaurant identifier (e.g. "rest_0042").
	ID string `json:"restaurant_id"`

	// Name is the display name.
	Name string `json:"name"`

	// Cuisine is the cuisine category (e.g. "North Indian", "Fast Food").
	Cuisine string `json:"cuisine_type"`

	// AvgRating is the average customer rating, bounded to [1.0, 5.0].
	AvgRating float64 `json:"avg_rating"`

	// TotalReviews is the review count.
	TotalReviews int `json:"total_reviews"`

	// PriceRange is the ordinal price tier, 1 (cheapest) to 4.
	PriceRange int `json:"price_range"`

	// AvgDeliveryMins is the average delivery time in minutes.
	AvgDeliveryMins int `json:"avg_delivery_time"`

	// IsVegOnly reports whether the restaurant serves only vegetarian food.
	IsVegOnly bool `json:"is_veg_only"`

	// Location is the restaurant's coordinates, if known.
	Location *Location `json:"location,omitempty"`

	// AvgOrderValue is the mean order value in rupees.
	AvgOrderValue float64 `json:"avg_order_value"`

	// PopularityScore is the precomputed popularity blend, in [0, 1].
	PopularityScore float64 `json:"popularity_score"`

	// ValueScore is avg rating divided by price tier.
	ValueScore float64 `json:"value_score"`
}

// PopularityScore blends normalized orders, reviews, and rating into [0, 1].
// Callers whose feature pipeline has not precomputed it can derive it here;
// maxOrders and maxReviews are the maxima over the restaurant pool.
func PopularityScore(totalOrders, totalReviews, maxOrders, maxReviews int, avgRating float64) float64 {
	if maxOrders == 0 {
		maxOrders = 1
	}
	if maxReviews == 0 {
		maxReviews = 1
	}
	return 0.4*(float64(totalOrders)/float64(maxOrders)) +
		0.3*(float64(totalReviews)/float64(maxReviews)) +
		0.3*(avgRating/5.0)
}

// ValueScore is the rating-per-price-tier proxy for value for money.
func ValueScore(avgRating float64, priceRange int) float64 {
	if priceRange <= 0 {
		return 0
	}
	return avgRating / float64(priceRange)
}

// Recognized time-of-day values. Unrecognized values apply no boost.
const (
	TimeBreakfast    = "breakfast"
	TimeLunch        = "lunch"
	TimeEveningSnack = "evening_snack"
	TimeDinner       = "dinner"
	TimeLateNight    = "late_night"
)

// Recognized weather values. Unrecognized values apply no boost.
const (
	WeatherClear = "clear"
	WeatherRainy = "rainy"
	WeatherHot   = "hot"
)

// Context carries situational signals for a single recommendation request.
// Missing or unrecognized values default to neutral behavior, never an error.
type Context struct {
	// TimeOfDay is one of breakfast, lunch, evening_snack, dinner, late_night.
	TimeOfDay string `json:"time_of_day,omitempty"`

	// DayOfWeek is "weekday" or "weekend".
	DayOfWeek string `json:"day_of_week,omitempty"`

	// Weather is one of clear, rainy, hot.
	Weather string `json:"weather,omitempty"`
}

// Preferences are the onboarding questionnaire answers for a user with no
// identity in the system.
type Preferences struct {
	// DietaryPreference is the declared dietary restriction.
	DietaryPreference DietaryPreference `json:"dietary_preference"`

	// FavoriteCuisines holds up to three declared cuisines.
	FavoriteCuisines []string `json:"favorite_cuisines"`

	// Budget is the declared per-meal budget bracket, e.g. "₹200-400".
	Budget string `json:"budget"`
}

// Request is one recommendation request.
type Request struct {
	// UserID is the user to recommend for.
	UserID string `json:"user_id"`

	// N is the number of recommendations to return.
	// Defaults to Config.Limits.DefaultN if zero.
	N int `json:"n,omitempty"`

	// Context provides situational signals; the zero value is neutral.
	Context Context `json:"context"`

	// Location is the user's current location; nil skips distance
	// decay and the distance filter.
	Location *Location `json:"location,omitempty"`

	// ExcludeOrdered drops restaurants the user has already ordered from.
	ExcludeOrdered bool `json:"exclude_ordered"`

	// RequestID is a unique identifier for tracing.
	RequestID string `json:"request_id,omitempty"`
}

// ScoredRestaurant is one ranked entry in a recommendation response.
// It exists only for the duration of one request.
type ScoredRestaurant struct {
	// Rank is the 1-based position after filtering and sorting.
	Rank int `json:"rank"`

	// Restaurant is the full restaurant profile.
	Restaurant Restaurant `json:"restaurant"`

	// FinalScore is the weight-blended score, in [0, 1].
	FinalScore float64 `json:"final_score"`

	// CollaborativeScore is the CF component, 0 if unavailable.
	CollaborativeScore float64 `json:"cf_score"`

	// ContentScore is the content-match component, 0 if unavailable.
	ContentScore float64 `json:"content_score"`

	// ContextScore is the contextual modulation component.
	ContextScore float64 `json:"contextual_score"`
}

// Response is one recommendation result.
type Response struct {
	// Restaurants is the ranked list, capped at Request.N.
	Restaurants []ScoredRestaurant `json:"restaurants"`

	// TotalCandidates is the size of the merged candidate pool before
	// post-blend filtering.
	TotalCandidates int `json:"total_candidates"`

	// HasHistory reports whether the collaborative signal contributed.
	HasHistory bool `json:"has_history"`

	// RequestID echoes the request identifier.
	RequestID string `json:"request_id,omitempty"`
}

// ReasonWeight classifies how strongly a reason supports a recommendation.
type ReasonWeight int

const (
	// WeightHigh reasons lead the explanation.
	WeightHigh ReasonWeight = iota
	// WeightMedium reasons support it.
	WeightMedium
	// WeightLow reasons round it out.
	WeightLow
)

// String returns the lowercase weight name.
func (w ReasonWeight) String() string {
	switch w {
	case WeightHigh:
		return "high"
	case WeightMedium:
		return "medium"
	case WeightLow:
		return "low"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the weight as its string name.
func (w ReasonWeight) MarshalJSON() ([]byte, error) {
	return []byte(`"` + w.String() + `"`), nil
}

// ReasonKind identifies the signal a reason was derived from.
type ReasonKind string

// Reason kinds, in no particular order.
const (
	ReasonUserHistory   ReasonKind = "user_history"
	ReasonCollaborative ReasonKind = "collaborative"
	ReasonQuality       ReasonKind = "quality"
	ReasonContextual    ReasonKind = "contextual"
	ReasonProximity     ReasonKind = "proximity"
	ReasonValue         ReasonKind = "value"
	ReasonDiscovery     ReasonKind = "discovery"
	ReasonTrending      ReasonKind = "trending"
)

// Reason is one typed justification for a recommendation.
type Reason struct {
	Kind   ReasonKind   `json:"type"`
	Weight ReasonWeight `json:"weight"`
	Text   string       `json:"text"`
}

// Explanation is the derived justification for one (user, restaurant, context)
// triple. It is regenerated per request and never persisted.
type Explanation struct {
	RestaurantID   string `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`

	// PrimaryReason is the strongest reason's text, or a generic
	// fallback when no reason qualifies.
	PrimaryReason string `json:"primary_reason"`

	// SupportingReasons holds up to three additional reason texts.
	SupportingReasons []string `json:"supporting_reasons"`

	// Text is the full human-readable explanation.
	Text string `json:"explanation_text"`

	// Reasons is every qualifying reason, sorted by weight class.
	Reasons []Reason `json:"all_reasons"`
}
