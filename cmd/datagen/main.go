// ML-Restaurant-Recommendations - Hybrid Restaurant Recommendation Engine
// Copyright 2026 Ayush Saxena (iamAyushSaxena)
// SPDX-License-Identifier: MIT
// https://github.com/iamAyushSaxena/ML-Restaurant-Recommendations

// Command datagen writes a synthetic dataset snapshot for local
// development and benchmarking. Distributions mimic a metro food
// delivery market: power users and casual users, ratings skewed high,
// a favorite-cuisine bias in order history.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/iamAyushSaxena/ML-Restaurant-Recommendations/internal/logging"
	"github.com/iamAyushSaxena/ML-Restaurant-Recommendations/internal/recommend"
	"github.com/iamAyushSaxena/ML-Restaurant-Recommendations/internal/store"
)

var cuisines = []string{
	"North Indian", "South Indian", "Chinese", "Italian", "Continental",
	"Fast Food", "Street Food", "Biryani", "Desserts", "Beverages",
	"Healthy", "Cafe",
}

// cuisineWeights skews the catalog toward the popular cuisines.
var cuisineWeights = []float64{
	0.20, 0.18, 0.15, 0.12, 0.08, 0.10, 0.05, 0.04, 0.03, 0.02, 0.02, 0.01,
}

var namePrefixes = []string{
	"Tasty", "Spicy", "Royal", "Golden", "Fresh",
	"Express", "Paradise", "Corner", "Deluxe", "Classic",
}

var nameSuffixes = []string{
	"Kitchen", "Bites", "Hub", "Palace", "Point",
	"Cafe", "Restaurant", "Grill", "House", "Eatery",
}

func main() {
	var (
		users       = flag.Int("users", 1000, "number of users")
		restaurants = flag.Int("restaurants", 200, "number of restaurants")
		seed        = flag.Int64("seed", 42, "random seed")
		out         = flag.String("out", "data/snapshot.json", "output snapshot path")
	)
	flag.Parse()

	logging.Init(logging.Config{Format: "console"})
	log := logging.WithComponent("datagen")

	rng := rand.New(rand.NewSource(*seed))
	ds := generate(rng, *users, *restaurants)

	if err := store.SaveSnapshot(*out, ds); err != nil {
		log.Error().Err(err).Msg("write snapshot")
		os.Exit(1)
	}
	log.Info().
		Str("path", *out).
		Int("users", len(ds.Users)).
		Int("restaurants", len(ds.Restaurants)).
		Int("interactions", len(ds.Interactions)).
		Msg("snapshot written")
}

func generate(rng *rand.Rand, nUsers, nRestaurants int) recommend.Dataset {
	restaurants := generateRestaurants(rng, nRestaurants)
	users := generateUsers(rng, nUsers)
	interactions, ordersPerRestaurant := generateInteractions(rng, users, restaurants)

	// Popularity and value need the full order counts, so they come last.
	var maxOrders, maxReviews int
	for i := range restaurants {
		if o := ordersPerRestaurant[restaurants[i].ID]; o > maxOrders {
			maxOrders = o
		}
		if restaurants[i].TotalReviews > maxReviews {
			maxReviews = restaurants[i].TotalReviews
		}
	}
	for i := range restaurants {
		r := &restaurants[i]
		r.PopularityScore = recommend.PopularityScore(
			ordersPerRestaurant[r.ID], r.TotalReviews, maxOrders, maxReviews, r.AvgRating)
		r.ValueScore = recommend.ValueScore(r.AvgRating, r.PriceRange)
	}

	return recommend.Dataset{
		Users:        users,
		Restaurants:  restaurants,
		Interactions: interactions,
	}
}

func generateRestaurants(rng *rand.Rand, n int) []recommend.Restaurant {
	out := make([]recommend.Restaurant, n)
	priceTiers := []int{1, 2, 3, 4}
	priceWeights := []float64{0.15, 0.45, 0.30, 0.10}

	for i := range out {
		// Ratings skew high, 3.0-5.0.
		rating := math.Round((3.0+2.0*math.Pow(rng.Float64(), 0.4))*10) / 10
		if rating > 5.0 {
			rating = 5.0
		}
		reviews := int(math.Exp(5 + 1.5*rng.NormFloat64()))
		if reviews < 10 {
			reviews = 10
		} else if reviews > 10000 {
			reviews = 10000
		}
		delivery := int(35 + 10*rng.NormFloat64())
		if delivery < 20 {
			delivery = 20
		} else if delivery > 60 {
			delivery = 60
		}

		out[i] = recommend.Restaurant{
			ID:              fmt.Sprintf("rest_%04d", i),
			Name:            namePrefixes[rng.Intn(len(namePrefixes))] + " " + nameSuffixes[rng.Intn(len(nameSuffixes))],
			Cuisine:         weightedChoice(rng, cuisines, cuisineWeights),
			AvgRating:       rating,
			TotalReviews:    reviews,
			PriceRange:      weightedChoiceInt(rng, priceTiers, priceWeights),
			AvgDeliveryMins: delivery,
			IsVegOnly:       rng.Float64() < 0.30,
			AvgOrderValue:   150 + rng.Float64()*850,
			Location: &recommend.Location{
				Lat: 28.4 + rng.Float64()*0.3,
				Lon: 77.0 + rng.Float64()*0.3,
			},
		}
	}
	return out
}

func generateUsers(rng *rand.Rand, n int) []recommend.User {
	sensitivities := []string{"low", "medium", "high"}
	sensWeights := []float64{0.25, 0.50, 0.25}
	diets := []recommend.DietaryPreference{
		recommend.DietVeg, recommend.DietNonVeg, recommend.DietVegan, recommend.DietNone,
	}
	dietWeights := []float64{0.30, 0.50, 0.05, 0.15}

	out := make([]recommend.User, n)
	for i := range out {
		orders := int(math.Exp(1.5 + 1.2*rng.NormFloat64()))
		if orders < 1 {
			orders = 1
		} else if orders > 200 {
			orders = 200
		}
		avgValue := 150 + rng.Float64()*1350

		dietIdx := weightedIndex(rng, dietWeights)
		out[i] = recommend.User{
			ID:                fmt.Sprintf("user_%06d", i),
			TotalOrders:       orders,
			AvgOrderValue:     avgValue,
			FavoriteCuisine:   cuisines[rng.Intn(len(cuisines))],
			PriceSensitivity:  weightedChoice(rng, sensitivities, sensWeights),
			AvgRatingGiven:    math.Round((3.0+2.0*math.Pow(rng.Float64(), 0.5))*10) / 10,
			DietaryPreference: diets[dietIdx],
			Location: &recommend.Location{
				Lat: 28.4 + rng.Float64()*0.3,
				Lon: 77.0 + rng.Float64()*0.3,
			},
		}
	}
	return out
}

// generateInteractions turns simulated order histories into matrix
// entries. Users order their favorite cuisine three times as often and
// repeat restaurants they liked.
func generateInteractions(rng *rand.Rand, users []recommend.User, restaurants []recommend.Restaurant) ([]recommend.Interaction, map[string]int) {
	ordersPerRestaurant := make(map[string]int)
	var interactions []recommend.Interaction

	for ui := range users {
		user := &users[ui]
		candidates := candidateRestaurants(user, restaurants)
		if len(candidates) == 0 {
			continue
		}

		probs := make([]float64, len(candidates))
		for i, r := range candidates {
			p := r.AvgRating / 5.0
			if r.Cuisine == user.FavoriteCuisine {
				p *= 3.0
			}
			probs[i] = p
		}

		// Aggregate repeat orders per restaurant for this user.
		orderCounts := make(map[string]int)
		mostOrdered := make(map[string]int)
		for i := 0; i < user.TotalOrders; i++ {
			r := candidates[weightedIndex(rng, probs)]
			orderCounts[r.ID]++
			mostOrdered[r.Cuisine]++
		}

		var topCuisine string
		var topCount int
		for cuisine, count := range mostOrdered {
			if count > topCount || (count == topCount && cuisine < topCuisine) {
				topCuisine, topCount = cuisine, count
			}
		}
		user.MostOrderedCuisine = topCuisine

		for restID, count := range orderCounts {
			ordersPerRestaurant[restID] += count
			daysSince := rng.Float64() * 90
			interactions = append(interactions, recommend.Interaction{
				UserID:       user.ID,
				RestaurantID: restID,
				Strength:     recommend.InteractionStrength(count, user.AvgRatingGiven, daysSince),
			})
		}
	}
	return interactions, ordersPerRestaurant
}

func candidateRestaurants(user *recommend.User, restaurants []recommend.Restaurant) []recommend.Restaurant {
	var out []recommend.Restaurant
	for _, r := range restaurants {
		if user.DietaryPreference.Restricts() && !r.IsVegOnly {
			continue
		}
		if user.PriceSensitivity == "high" && r.PriceRange < 3 {
			continue
		}
		if user.PriceSensitivity == "low" && r.PriceRange > 2 {
			continue
		}
		out = append(out, r)
	}
	// Too restrictive a profile falls back to the full catalog.
	if len(out) < 10 {
		return restaurants
	}
	return out
}

func weightedIndex(rng *rand.Rand, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	target := rng.Float64() * total
	for i, w := range weights {
		target -= w
		if target <= 0 {
			return i
		}
	}
	return len(weights) - 1
}

func weightedChoice(rng *rand.Rand, values []string, weights []float64) string {
	return values[weightedIndex(rng, weights)]
}

func weightedChoiceInt(rng *rand.Rand, values []int, weights []float64) int {
	return values[weightedIndex(rng, weights)]
}
