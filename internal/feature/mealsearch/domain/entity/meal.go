// Package entity defines the domain entities for the mealsearch feature.
package entity

// MealSummary is the reshaped search result exposed to clients.
type MealSummary struct {
	ID       string
	Name     string
	ImageURL string
}

// MealIngredient pairs an ingredient with its measure.
type MealIngredient struct {
	Name    string
	Measure string
}

// MealDetail is a full recipe record from the upstream database.
type MealDetail struct {
	ID           string
	Name         string
	Category     string
	Area         string
	Instructions string
	ImageURL     string
	YoutubeURL   string
	Ingredients  []MealIngredient
}
