// Package dto defines data transfer objects for the mealsearch feature's HTTP transport layer.
package dto

// MealRes is one entry of a search response.
type MealRes struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// MealIngredientRes pairs an ingredient with its measure.
type MealIngredientRes struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

// MealDetailRes is the full shape returned by GET /api/recipes/external/:id.
type MealDetailRes struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Category     string              `json:"category"`
	Area         string              `json:"area"`
	Instructions string              `json:"instructions"`
	ImageURL     string              `json:"image_url"`
	YoutubeURL   string              `json:"youtube_url"`
	Ingredients  []MealIngredientRes `json:"ingredients"`
}
