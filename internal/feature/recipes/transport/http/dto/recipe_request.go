// Package dto defines data transfer objects for the recipes feature's HTTP transport layer.
package dto

// CreateRecipeReq represents the request body for POST /api/recipes.
type CreateRecipeReq struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Ingredients  string `json:"ingredients" binding:"required"`
	Instructions string `json:"instructions" binding:"required"`
	ImageURL     string `json:"image_url"`
}

// UpdateRecipeReq represents the request body for PUT /api/recipes/:id.
// All fields are optional; absent fields are left unchanged.
type UpdateRecipeReq struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Ingredients  *string `json:"ingredients"`
	Instructions *string `json:"instructions"`
	ImageURL     *string `json:"image_url"`
}
