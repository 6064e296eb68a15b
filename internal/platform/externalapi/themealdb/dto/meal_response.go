// Package dto defines data transfer objects for TheMealDB API responses.
package dto

// SearchResponse is the JSON shape of search.php and filter.php.
// The API returns {"meals": null} when nothing matches.
type SearchResponse struct {
	Meals []MealSummaryObject `json:"meals"`
}

// MealSummaryObject carries the fields common to both search endpoints.
type MealSummaryObject struct {
	IDMeal       string `json:"idMeal"`
	StrMeal      string `json:"strMeal"`
	StrMealThumb string `json:"strMealThumb"`
}

// LookupResponse is the JSON shape of lookup.php. Full meal objects carry
// the numbered strIngredientN/strMeasureN columns, so they are decoded as
// maps and folded into a list by the client.
type LookupResponse struct {
	Meals []map[string]any `json:"meals"`
}
