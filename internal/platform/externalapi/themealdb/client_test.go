package themealdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Mark1william11/FlavorFind/internal/feature/mealsearch/usecase"
)

func newTestClient(serverURL string) *Client {
	cfg := Config{BaseURL: serverURL, Timeout: 2 * time.Second}
	return NewClient(cfg, &http.Client{Timeout: cfg.Timeout})
}

func TestClient_SearchByName_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search.php" {
			t.Errorf("expected path /search.php, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("s") != "chicken" {
			t.Errorf("expected s=chicken, got %s", r.URL.Query().Get("s"))
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"meals": [
				{"idMeal": "52772", "strMeal": "Teriyaki Chicken Casserole", "strMealThumb": "https://example.com/1.jpg"},
				{"idMeal": "52813", "strMeal": "Kung Pao Chicken", "strMealThumb": "https://example.com/2.jpg"}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	meals, err := client.SearchByName(context.Background(), "chicken")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(meals) != 2 {
		t.Fatalf("expected 2 meals, got %d", len(meals))
	}
	if meals[0].ID != "52772" {
		t.Errorf("expected id 52772, got %s", meals[0].ID)
	}
	if meals[0].Name != "Teriyaki Chicken Casserole" {
		t.Errorf("unexpected name: %s", meals[0].Name)
	}
	if meals[0].ImageURL != "https://example.com/1.jpg" {
		t.Errorf("unexpected image url: %s", meals[0].ImageURL)
	}
}

func TestClient_SearchByName_NullMeals(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"meals": null}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	meals, err := client.SearchByName(context.Background(), "zzzz")
	if err != nil {
		t.Fatalf("a null meals body is not an error, got: %v", err)
	}
	if meals == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(meals) != 0 {
		t.Errorf("expected 0 meals, got %d", len(meals))
	}
}

func TestClient_SearchByName_DropsIncompleteEntries(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"meals": [
				{"idMeal": "52772", "strMeal": "Complete Meal", "strMealThumb": "https://example.com/1.jpg"},
				{"idMeal": "", "strMeal": "No ID", "strMealThumb": "https://example.com/2.jpg"},
				{"idMeal": "52813", "strMeal": "", "strMealThumb": "https://example.com/3.jpg"},
				{"idMeal": "52814", "strMeal": "No Thumb", "strMealThumb": ""}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	meals, err := client.SearchByName(context.Background(), "chicken")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meals) != 1 {
		t.Fatalf("expected 1 meal after dropping incomplete entries, got %d", len(meals))
	}
	if meals[0].Name != "Complete Meal" {
		t.Errorf("unexpected survivor: %s", meals[0].Name)
	}
}

func TestClient_FilterByIngredient(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/filter.php" {
			t.Errorf("expected path /filter.php, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("i") != "garlic" {
			t.Errorf("expected i=garlic, got %s", r.URL.Query().Get("i"))
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"meals": [{"idMeal": "52929", "strMeal": "Timbits", "strMealThumb": "https://example.com/t.jpg"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	meals, err := client.FilterByIngredient(context.Background(), "garlic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meals) != 1 {
		t.Fatalf("expected 1 meal, got %d", len(meals))
	}
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
	}{
		{"too many requests", http.StatusTooManyRequests},
		{"internal server error", http.StatusInternalServerError},
		{"bad gateway", http.StatusBadGateway},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			client := newTestClient(server.URL)

			_, err := client.SearchByName(context.Background(), "chicken")
			if !errors.Is(err, usecase.ErrUpstreamUnavailable) {
				t.Errorf("expected ErrUpstreamUnavailable, got: %v", err)
			}
		})
	}
}

func TestClient_Timeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"meals": null}`))
	}))
	defer server.Close()

	cfg := Config{BaseURL: server.URL, Timeout: 50 * time.Millisecond}
	client := NewClient(cfg, &http.Client{Timeout: cfg.Timeout})

	_, err := client.SearchByName(context.Background(), "chicken")
	if !errors.Is(err, usecase.ErrUpstreamUnavailable) {
		t.Errorf("expected ErrUpstreamUnavailable on timeout, got: %v", err)
	}
}

func TestClient_MalformedResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.SearchByName(context.Background(), "chicken")
	if !errors.Is(err, usecase.ErrUpstreamMalformed) {
		t.Errorf("expected ErrUpstreamMalformed, got: %v", err)
	}
}

func TestClient_LookupByID_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/lookup.php" {
			t.Errorf("expected path /lookup.php, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("i") != "52772" {
			t.Errorf("expected i=52772, got %s", r.URL.Query().Get("i"))
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"meals": [{
				"idMeal": "52772",
				"strMeal": "Teriyaki Chicken Casserole",
				"strCategory": "Chicken",
				"strArea": "Japanese",
				"strInstructions": "Preheat oven to 350F.",
				"strMealThumb": "https://example.com/1.jpg",
				"strYoutube": "https://youtube.com/watch?v=abc",
				"strIngredient1": "soy sauce",
				"strMeasure1": "3/4 cup",
				"strIngredient2": "water",
				"strMeasure2": "1/2 cup",
				"strIngredient3": "",
				"strMeasure3": "",
				"strIngredient4": "   ",
				"strMeasure4": " ",
				"strIngredient5": null,
				"strMeasure5": null
			}]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	detail, err := client.LookupByID(context.Background(), "52772")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if detail.Name != "Teriyaki Chicken Casserole" {
		t.Errorf("unexpected name: %s", detail.Name)
	}
	if detail.Category != "Chicken" || detail.Area != "Japanese" {
		t.Errorf("unexpected category/area: %s/%s", detail.Category, detail.Area)
	}
	if len(detail.Ingredients) != 2 {
		t.Fatalf("expected 2 ingredients after folding, got %d", len(detail.Ingredients))
	}
	if detail.Ingredients[0].Name != "soy sauce" || detail.Ingredients[0].Measure != "3/4 cup" {
		t.Errorf("unexpected first ingredient: %+v", detail.Ingredients[0])
	}
	if detail.Ingredients[1].Name != "water" || detail.Ingredients[1].Measure != "1/2 cup" {
		t.Errorf("unexpected second ingredient: %+v", detail.Ingredients[1])
	}
}

func TestClient_LookupByID_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"meals": null}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.LookupByID(context.Background(), "99999")
	if !errors.Is(err, usecase.ErrMealNotFound) {
		t.Errorf("expected ErrMealNotFound, got: %v", err)
	}
}
