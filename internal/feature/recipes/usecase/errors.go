// Package usecase implements the business logic for the recipes feature.
package usecase

import "errors"

var (
	// ErrRecipeNotFound covers both a missing recipe ID and a recipe owned
	// by someone else. Callers cannot tell the two apart, so one user can
	// never probe for the existence of another user's records.
	ErrRecipeNotFound = errors.New("recipe not found or access denied")

	// ErrMissingRequiredField is returned when title, ingredients or
	// instructions is empty, on create and after applying an update patch.
	ErrMissingRequiredField = errors.New("missing required field")
)
