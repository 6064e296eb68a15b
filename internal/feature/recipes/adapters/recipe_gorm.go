// Package adapters provides repository implementations for the recipes feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authentity "github.com/Mark1william11/FlavorFind/internal/feature/auth/domain/entity"
	"github.com/Mark1william11/FlavorFind/internal/feature/recipes/domain/entity"
	"github.com/Mark1william11/FlavorFind/internal/feature/recipes/usecase"
)

// recipeGorm is a GORM implementation of the RecipeRepository interface.
type recipeGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure recipeGorm implements RecipeRepository.
var _ usecase.RecipeRepository = (*recipeGorm)(nil)

// NewRecipeGorm creates a new instance of recipeGorm.
func NewRecipeGorm(db *gorm.DB) *recipeGorm {
	return &recipeGorm{db: db}
}

// RecipeModel is the GORM model for the recipes table.
type RecipeModel struct {
	ID           uint   `gorm:"primaryKey"`
	UserID       uint   `gorm:"index;not null"`
	Title        string `gorm:"size:255;not null"`
	Description  string `gorm:"type:text"`
	Ingredients  string `gorm:"type:text;not null"`
	Instructions string `gorm:"type:text;not null"`
	ImageURL     string `gorm:"size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Deleting a user cascades to their recipes.
	User authentity.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}

func toModel(e *entity.Recipe) RecipeModel {
	return RecipeModel{
		ID:           e.ID,
		UserID:       e.UserID,
		Title:        e.Title,
		Description:  e.Description,
		Ingredients:  e.Ingredients,
		Instructions: e.Instructions,
		ImageURL:     e.ImageURL,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func toEntity(m *RecipeModel) entity.Recipe {
	return entity.Recipe{
		ID:           m.ID,
		UserID:       m.UserID,
		Title:        m.Title,
		Description:  m.Description,
		Ingredients:  m.Ingredients,
		Instructions: m.Instructions,
		ImageURL:     m.ImageURL,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// Create inserts the recipe and writes back the server-assigned ID and
// timestamps. The single-statement insert commits or rolls back atomically.
func (r *recipeGorm) Create(ctx context.Context, recipe *entity.Recipe) error {
	m := toModel(recipe)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return err
	}
	recipe.ID = m.ID
	recipe.CreatedAt = m.CreatedAt
	recipe.UpdatedAt = m.UpdatedAt
	return nil
}

// FindAllByOwner retrieves the owner's recipes, newest-created first.
func (r *recipeGorm) FindAllByOwner(ctx context.Context, ownerID uint) ([]entity.Recipe, error) {
	var rows []RecipeModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entity.Recipe, 0, len(rows))
	for i := range rows {
		out = append(out, toEntity(&rows[i]))
	}
	return out, nil
}

// FindByIDAndOwner retrieves one recipe. The ownership filter sits in the
// same predicate as the ID, so an existing-but-foreign recipe is
// indistinguishable from a missing one.
func (r *recipeGorm) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*entity.Recipe, error) {
	var m RecipeModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrRecipeNotFound
		}
		return nil, err
	}
	e := toEntity(&m)
	return &e, nil
}

// Update writes the mutable fields under the combined id+owner predicate.
// GORM bumps updated_at on the same statement; a zero row count means the
// recipe vanished or was never the caller's.
func (r *recipeGorm) Update(ctx context.Context, recipe *entity.Recipe) error {
	result := r.db.WithContext(ctx).
		Model(&RecipeModel{}).
		Where("id = ? AND user_id = ?", recipe.ID, recipe.UserID).
		Updates(map[string]any{
			"title":        recipe.Title,
			"description":  recipe.Description,
			"ingredients":  recipe.Ingredients,
			"instructions": recipe.Instructions,
			"image_url":    recipe.ImageURL,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrRecipeNotFound
	}
	return nil
}

// DeleteByIDAndOwner removes one recipe under the combined predicate.
func (r *recipeGorm) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&RecipeModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrRecipeNotFound
	}
	return nil
}
