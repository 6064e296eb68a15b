package usecase

import (
	"context"
	"fmt"
	"strings"

	authentity "github.com/Mark1william11/FlavorFind/internal/feature/auth/domain/entity"
	"github.com/Mark1william11/FlavorFind/internal/feature/recipes/domain/entity"
)

// RecipeRepository abstracts the persistence layer for recipe entities.
// Every single-record operation takes both the recipe ID and the owner ID;
// the two are combined into one predicate at the storage layer so a lookup
// can never succeed on ID alone.
type RecipeRepository interface {
	// Create persists a new recipe and fills in server-assigned fields.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// FindAllByOwner retrieves the owner's recipes, newest-created first.
	FindAllByOwner(ctx context.Context, ownerID uint) ([]entity.Recipe, error)

	// FindByIDAndOwner retrieves one recipe by the combined id+owner predicate.
	// It returns ErrRecipeNotFound when no row matches.
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*entity.Recipe, error)

	// Update writes the recipe's mutable fields under the combined predicate.
	Update(ctx context.Context, recipe *entity.Recipe) error

	// DeleteByIDAndOwner removes one recipe under the combined predicate.
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uint) error
}

// UserDirectory resolves user IDs to users. It is satisfied by the auth
// feature's user repository and replaces an ORM-level author backref with
// an explicit fetch at the call site.
type UserDirectory interface {
	FindByID(ctx context.Context, id uint) (*authentity.User, error)
}

// CreateRecipeInput carries the fields of a new recipe.
type CreateRecipeInput struct {
	Title        string
	Description  string
	Ingredients  string
	Instructions string
	ImageURL     string
}

// UpdateRecipeInput is a partial patch; nil fields are left unchanged.
type UpdateRecipeInput struct {
	Title        *string
	Description  *string
	Ingredients  *string
	Instructions *string
	ImageURL     *string
}

// RecipeDetail is a recipe together with its author's username.
type RecipeDetail struct {
	Recipe         entity.Recipe
	AuthorUsername string
}

// recipesUsecase implements the owner-scoped recipe operations.
type recipesUsecase struct {
	recipes RecipeRepository
	users   UserDirectory
}

// NewRecipesUsecase creates a new instance of recipesUsecase.
func NewRecipesUsecase(recipes RecipeRepository, users UserDirectory) *recipesUsecase {
	return &recipesUsecase{recipes: recipes, users: users}
}

func missingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingRequiredField, name)
}

// validateRequired checks that the mandatory recipe fields are non-empty.
// It runs on create and again after applying an update patch, so an update
// can never clear a mandatory field.
func validateRequired(title, ingredients, instructions string) error {
	if strings.TrimSpace(title) == "" {
		return missingField("title")
	}
	if strings.TrimSpace(ingredients) == "" {
		return missingField("ingredients")
	}
	if strings.TrimSpace(instructions) == "" {
		return missingField("instructions")
	}
	return nil
}

// CreateRecipe creates a recipe owned by ownerID.
func (u *recipesUsecase) CreateRecipe(ctx context.Context, ownerID uint, in CreateRecipeInput) (*entity.Recipe, error) {
	if err := validateRequired(in.Title, in.Ingredients, in.Instructions); err != nil {
		return nil, err
	}

	recipe := &entity.Recipe{
		UserID:       ownerID,
		Title:        in.Title,
		Description:  in.Description,
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
		ImageURL:     in.ImageURL,
	}
	if err := u.recipes.Create(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// ListRecipes returns all recipes owned by ownerID, newest-created first.
func (u *recipesUsecase) ListRecipes(ctx context.Context, ownerID uint) ([]entity.Recipe, error) {
	return u.recipes.FindAllByOwner(ctx, ownerID)
}

// GetRecipe returns one recipe with its author's username. A recipe owned
// by another user is reported exactly like a missing one.
func (u *recipesUsecase) GetRecipe(ctx context.Context, id, ownerID uint) (*RecipeDetail, error) {
	recipe, err := u.recipes.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	author, err := u.users.FindByID(ctx, recipe.UserID)
	if err != nil {
		return nil, err
	}

	return &RecipeDetail{Recipe: *recipe, AuthorUsername: author.Username}, nil
}

// UpdateRecipe applies a partial patch to one of ownerID's recipes.
// Provided fields overwrite, omitted fields stay, and the mandatory fields
// are re-validated after the patch.
func (u *recipesUsecase) UpdateRecipe(ctx context.Context, id, ownerID uint, in UpdateRecipeInput) (*entity.Recipe, error) {
	recipe, err := u.recipes.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		recipe.Title = *in.Title
	}
	if in.Description != nil {
		recipe.Description = *in.Description
	}
	if in.Ingredients != nil {
		recipe.Ingredients = *in.Ingredients
	}
	if in.Instructions != nil {
		recipe.Instructions = *in.Instructions
	}
	if in.ImageURL != nil {
		recipe.ImageURL = *in.ImageURL
	}

	if err := validateRequired(recipe.Title, recipe.Ingredients, recipe.Instructions); err != nil {
		return nil, err
	}

	if err := u.recipes.Update(ctx, recipe); err != nil {
		return nil, err
	}

	// Re-read so the caller sees the store-assigned UpdatedAt.
	return u.recipes.FindByIDAndOwner(ctx, id, ownerID)
}

// DeleteRecipe removes one of ownerID's recipes and returns its title.
func (u *recipesUsecase) DeleteRecipe(ctx context.Context, id, ownerID uint) (string, error) {
	recipe, err := u.recipes.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return "", err
	}

	if err := u.recipes.DeleteByIDAndOwner(ctx, id, ownerID); err != nil {
		return "", err
	}
	return recipe.Title, nil
}
