// Package handler provides HTTP handlers for the recipes feature.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Mark1william11/FlavorFind/internal/api"
	"github.com/Mark1william11/FlavorFind/internal/feature/recipes/domain/entity"
	"github.com/Mark1william11/FlavorFind/internal/feature/recipes/transport/http/dto"
	"github.com/Mark1william11/FlavorFind/internal/feature/recipes/usecase"
	"github.com/Mark1william11/FlavorFind/internal/platform/session"
)

// RecipesUsecase defines the recipe operations consumed by this handler.
// Every operation takes the owner ID resolved from the session; handlers
// never pass a recipe ID without it.
type RecipesUsecase interface {
	CreateRecipe(ctx context.Context, ownerID uint, in usecase.CreateRecipeInput) (*entity.Recipe, error)
	ListRecipes(ctx context.Context, ownerID uint) ([]entity.Recipe, error)
	GetRecipe(ctx context.Context, id, ownerID uint) (*usecase.RecipeDetail, error)
	UpdateRecipe(ctx context.Context, id, ownerID uint, in usecase.UpdateRecipeInput) (*entity.Recipe, error)
	DeleteRecipe(ctx context.Context, id, ownerID uint) (string, error)
}

// RecipeHandler handles HTTP requests for personal recipes.
type RecipeHandler struct {
	uc RecipesUsecase
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(uc RecipesUsecase) *RecipeHandler {
	return &RecipeHandler{uc: uc}
}

// ownerID reads the identity the session middleware stored on the context.
func ownerID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(session.ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// recipeID parses the :id path parameter. A non-numeric ID gets the same
// 404 as a missing recipe.
func recipeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func iso(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func summary(r *entity.Recipe) dto.RecipeRes {
	return dto.RecipeRes{
		RecipeID:    r.ID,
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		CreatedAt:   iso(r.CreatedAt),
		UpdatedAt:   iso(r.UpdatedAt),
	}
}

// Create handles POST /api/recipes.
func (h *RecipeHandler) Create(c *gin.Context) {
	uid, ok := ownerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	var req dto.CreateRecipeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	recipe, err := h.uc.CreateRecipe(c.Request.Context(), uid, usecase.CreateRecipeInput{
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrMissingRequiredField) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("failed to create recipe", "error", err, "user_id", uid)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create recipe due to a server issue"})
		return
	}

	c.JSON(http.StatusCreated, dto.RecipeEnvelope{Message: "Recipe created successfully!", Recipe: summary(recipe)})
}

// List handles GET /api/recipes.
func (h *RecipeHandler) List(c *gin.Context) {
	uid, ok := ownerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	recipes, err := h.uc.ListRecipes(c.Request.Context(), uid)
	if err != nil {
		slog.Error("failed to list recipes", "error", err, "user_id", uid)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list recipes due to a server issue"})
		return
	}

	out := make([]dto.RecipeRes, 0, len(recipes))
	for i := range recipes {
		out = append(out, summary(&recipes[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /api/recipes/:id.
func (h *RecipeHandler) Get(c *gin.Context) {
	uid, ok := ownerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}
	id, ok := recipeID(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: usecase.ErrRecipeNotFound.Error()})
		return
	}

	detail, err := h.uc.GetRecipe(c.Request.Context(), id, uid)
	if err != nil {
		if errors.Is(err, usecase.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("failed to fetch recipe", "error", err, "user_id", uid)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch recipe due to a server issue"})
		return
	}

	r := detail.Recipe
	c.JSON(http.StatusOK, dto.RecipeDetailRes{
		RecipeID:       r.ID,
		Title:          r.Title,
		Description:    r.Description,
		Ingredients:    r.Ingredients,
		Instructions:   r.Instructions,
		ImageURL:       r.ImageURL,
		CreatedAt:      iso(r.CreatedAt),
		UpdatedAt:      iso(r.UpdatedAt),
		AuthorUsername: detail.AuthorUsername,
	})
}

// Update handles PUT /api/recipes/:id.
func (h *RecipeHandler) Update(c *gin.Context) {
	uid, ok := ownerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}
	id, ok := recipeID(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: usecase.ErrRecipeNotFound.Error()})
		return
	}

	var req dto.UpdateRecipeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	recipe, err := h.uc.UpdateRecipe(c.Request.Context(), id, uid, usecase.UpdateRecipeInput{
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrMissingRequiredField):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("failed to update recipe", "error", err, "user_id", uid)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update recipe due to a server issue"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.RecipeEnvelope{Message: "Recipe updated successfully!", Recipe: summary(recipe)})
}

// Delete handles DELETE /api/recipes/:id.
func (h *RecipeHandler) Delete(c *gin.Context) {
	uid, ok := ownerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}
	id, ok := recipeID(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: usecase.ErrRecipeNotFound.Error()})
		return
	}

	title, err := h.uc.DeleteRecipe(c.Request.Context(), id, uid)
	if err != nil {
		if errors.Is(err, usecase.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("failed to delete recipe", "error", err, "user_id", uid)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete recipe due to a server issue"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: fmt.Sprintf("Recipe '%s' deleted successfully!", title)})
}
