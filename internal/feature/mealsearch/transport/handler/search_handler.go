// Package handler provides HTTP handlers for the mealsearch feature.
// These routes require no session and never touch personal data.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mark1william11/FlavorFind/internal/api"
	"github.com/Mark1william11/FlavorFind/internal/feature/mealsearch/domain/entity"
	"github.com/Mark1william11/FlavorFind/internal/feature/mealsearch/transport/http/dto"
	"github.com/Mark1william11/FlavorFind/internal/feature/mealsearch/usecase"
)

// SearchUsecase defines the upstream search operations consumed by this handler.
type SearchUsecase interface {
	Search(ctx context.Context, name, ingredient string) ([]entity.MealSummary, error)
	Lookup(ctx context.Context, id string) (*entity.MealDetail, error)
}

// SearchHandler handles HTTP requests against the external recipe database.
type SearchHandler struct {
	uc SearchUsecase
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(uc SearchUsecase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// Search handles GET /api/recipes/search?query=...&ingredient=...
// No results is a 200 with an empty list; an unreachable upstream is 503
// and an undecodable upstream response is 500.
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("query")
	ingredient := c.Query("ingredient")

	meals, err := h.uc.Search(c.Request.Context(), query, ingredient)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingQuery):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrUpstreamUnavailable):
			slog.Warn("external recipe search unavailable", "error", err)
			c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "failed to fetch recipes from external source"})
		default:
			slog.Error("external recipe search failed", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to process external recipe data"})
		}
		return
	}

	out := make([]dto.MealRes, 0, len(meals))
	for _, m := range meals {
		out = append(out, dto.MealRes{ID: m.ID, Name: m.Name, ImageURL: m.ImageURL})
	}
	c.JSON(http.StatusOK, out)
}

// Lookup handles GET /api/recipes/external/:id.
func (h *SearchHandler) Lookup(c *gin.Context) {
	detail, err := h.uc.Lookup(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMealNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrUpstreamUnavailable):
			slog.Warn("external recipe lookup unavailable", "error", err)
			c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "failed to fetch recipe details from external source"})
		default:
			slog.Error("external recipe lookup failed", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to process external recipe detail data"})
		}
		return
	}

	ingredients := make([]dto.MealIngredientRes, 0, len(detail.Ingredients))
	for _, ing := range detail.Ingredients {
		ingredients = append(ingredients, dto.MealIngredientRes{Name: ing.Name, Measure: ing.Measure})
	}
	c.JSON(http.StatusOK, dto.MealDetailRes{
		ID:           detail.ID,
		Name:         detail.Name,
		Category:     detail.Category,
		Area:         detail.Area,
		Instructions: detail.Instructions,
		ImageURL:     detail.ImageURL,
		YoutubeURL:   detail.YoutubeURL,
		Ingredients:  ingredients,
	})
}
