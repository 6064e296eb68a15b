package dto

// RecipeRes is the summary shape used by list, create and update responses.
type RecipeRes struct {
	RecipeID    uint   `json:"recipe_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// RecipeDetailRes is the full shape returned by GET /api/recipes/:id.
type RecipeDetailRes struct {
	RecipeID       uint   `json:"recipe_id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Ingredients    string `json:"ingredients"`
	Instructions   string `json:"instructions"`
	ImageURL       string `json:"image_url"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
	AuthorUsername string `json:"author_username"`
}

// RecipeEnvelope wraps a recipe summary with a human-readable message.
type RecipeEnvelope struct {
	Message string    `json:"message"`
	Recipe  RecipeRes `json:"recipe"`
}
