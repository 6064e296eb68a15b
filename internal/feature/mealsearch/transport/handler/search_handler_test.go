package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mark1william11/FlavorFind/internal/feature/mealsearch/domain/entity"
	"github.com/Mark1william11/FlavorFind/internal/feature/mealsearch/usecase"
)

// mockSearchUsecase is a mock implementation of the SearchUsecase interface.
type mockSearchUsecase struct {
	SearchFunc func(ctx context.Context, name, ingredient string) ([]entity.MealSummary, error)
	LookupFunc func(ctx context.Context, id string) (*entity.MealDetail, error)
}

func (m *mockSearchUsecase) Search(ctx context.Context, name, ingredient string) ([]entity.MealSummary, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, name, ingredient)
	}
	return nil, usecase.ErrMissingQuery
}

func (m *mockSearchUsecase) Lookup(ctx context.Context, id string) (*entity.MealDetail, error) {
	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, id)
	}
	return nil, usecase.ErrMealNotFound
}

func newSearchRouter(uc *mockSearchUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSearchHandler(uc)

	r := gin.New()
	r.GET("/search", h.Search)
	r.GET("/external/:id", h.Lookup)
	return r
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSearchHandler_Search(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		mockFunc       func(ctx context.Context, name, ingredient string) ([]entity.MealSummary, error)
		expectedStatus int
	}{
		{
			name: "success: results",
			path: "/search?query=chicken",
			mockFunc: func(ctx context.Context, name, ingredient string) ([]entity.MealSummary, error) {
				assert.Equal(t, "chicken", name)
				assert.Equal(t, "", ingredient)
				return []entity.MealSummary{{ID: "52772", Name: "Teriyaki Chicken", ImageURL: "https://example.com/t.jpg"}}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "success: no results is an empty array",
			path: "/search?query=zzzz",
			mockFunc: func(ctx context.Context, name, ingredient string) ([]entity.MealSummary, error) {
				return []entity.MealSummary{}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: missing parameters",
			path:           "/search",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "failure: upstream unavailable",
			path: "/search?query=chicken",
			mockFunc: func(ctx context.Context, name, ingredient string) ([]entity.MealSummary, error) {
				return nil, usecase.ErrUpstreamUnavailable
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name: "failure: malformed upstream response",
			path: "/search?query=chicken",
			mockFunc: func(ctx context.Context, name, ingredient string) ([]entity.MealSummary, error) {
				return nil, usecase.ErrUpstreamMalformed
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newSearchRouter(&mockSearchUsecase{SearchFunc: tt.mockFunc})

			w := get(router, tt.path)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var body []map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				for _, meal := range body {
					assert.Contains(t, meal, "id")
					assert.Contains(t, meal, "name")
					assert.Contains(t, meal, "image_url")
				}
			} else {
				var body gin.H
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}

func TestSearchHandler_Lookup(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockSearchUsecase{
			LookupFunc: func(ctx context.Context, id string) (*entity.MealDetail, error) {
				assert.Equal(t, "52772", id)
				return &entity.MealDetail{
					ID:           "52772",
					Name:         "Teriyaki Chicken",
					Category:     "Chicken",
					Area:         "Japanese",
					Instructions: "Cook it.",
					Ingredients: []entity.MealIngredient{
						{Name: "soy sauce", Measure: "3/4 cup"},
					},
				}, nil
			},
		}
		router := newSearchRouter(uc)

		w := get(router, "/external/52772")

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Teriyaki Chicken", body["name"])

		ingredients, ok := body["ingredients"].([]any)
		require.True(t, ok)
		require.Len(t, ingredients, 1)
		first, ok := ingredients[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "soy sauce", first["name"])
		assert.Equal(t, "3/4 cup", first["measure"])
	})

	t.Run("not found", func(t *testing.T) {
		router := newSearchRouter(&mockSearchUsecase{})

		w := get(router, "/external/99999")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("upstream unavailable", func(t *testing.T) {
		uc := &mockSearchUsecase{
			LookupFunc: func(ctx context.Context, id string) (*entity.MealDetail, error) {
				return nil, usecase.ErrUpstreamUnavailable
			},
		}
		router := newSearchRouter(uc)

		w := get(router, "/external/52772")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
