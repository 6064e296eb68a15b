package usecase

import (
	"context"

	"github.com/Mark1william11/FlavorFind/internal/feature/mealsearch/domain/entity"
)

// MealDirectory abstracts the upstream recipe database client.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (the API client).
type MealDirectory interface {
	// SearchByName searches meals by name. An empty result is an empty slice.
	SearchByName(ctx context.Context, name string) ([]entity.MealSummary, error)

	// FilterByIngredient searches meals containing an ingredient.
	FilterByIngredient(ctx context.Context, ingredient string) ([]entity.MealSummary, error)

	// LookupByID fetches the full record behind an external meal ID.
	LookupByID(ctx context.Context, id string) (*entity.MealDetail, error)
}

// searchUsecase implements the public search and lookup operations.
type searchUsecase struct {
	meals MealDirectory
}

// NewSearchUsecase creates a new instance of searchUsecase.
func NewSearchUsecase(meals MealDirectory) *searchUsecase {
	return &searchUsecase{meals: meals}
}

// Search queries the upstream recipe database. A name query wins when both
// parameters are present; with neither, ErrMissingQuery is returned.
func (u *searchUsecase) Search(ctx context.Context, name, ingredient string) ([]entity.MealSummary, error) {
	switch {
	case name != "":
		return u.meals.SearchByName(ctx, name)
	case ingredient != "":
		return u.meals.FilterByIngredient(ctx, ingredient)
	default:
		return nil, ErrMissingQuery
	}
}

// Lookup fetches the full record behind an external meal ID.
func (u *searchUsecase) Lookup(ctx context.Context, id string) (*entity.MealDetail, error) {
	return u.meals.LookupByID(ctx, id)
}
