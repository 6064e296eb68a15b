package themealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/Mark1william11/FlavorFind/internal/feature/mealsearch/domain/entity"
	"github.com/Mark1william11/FlavorFind/internal/feature/mealsearch/usecase"
	"github.com/Mark1william11/FlavorFind/internal/platform/externalapi/themealdb/dto"
)

// maxIngredients is the fixed number of ingredient columns in the upstream schema.
const maxIngredients = 20

// Client is a MealDirectory implementation backed by TheMealDB HTTP API.
type Client struct {
	cfg    Config
	client *http.Client
}

// Compile-time check to ensure Client implements MealDirectory.
var _ usecase.MealDirectory = (*Client)(nil)

// NewClient creates a new Client with the given configuration and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// get performs one upstream request. Transport failures, timeouts and HTTP
// error statuses all map to ErrUpstreamUnavailable.
func (t *Client) get(ctx context.Context, endpoint string, q url.Values) (*http.Response, error) {
	u := fmt.Sprintf("%s/%s?%s", t.cfg.BaseURL, endpoint, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrUpstreamUnavailable, err)
	}
	if res.StatusCode >= 400 {
		closeBody(res)
		return nil, fmt.Errorf("%w: http %d", usecase.ErrUpstreamUnavailable, res.StatusCode)
	}
	return res, nil
}

func closeBody(res *http.Response) {
	if err := res.Body.Close(); err != nil {
		slog.Warn("failed to close response body", "error", err)
	}
}

// searchMeals runs one of the two summary endpoints and reshapes the result.
// A meals:null body means no results, not an error. Entries missing any of
// id, name or thumbnail are dropped.
func (t *Client) searchMeals(ctx context.Context, endpoint string, q url.Values) ([]entity.MealSummary, error) {
	res, err := t.get(ctx, endpoint, q)
	if err != nil {
		return nil, err
	}
	defer closeBody(res)

	var body dto.SearchResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrUpstreamMalformed, err)
	}

	out := make([]entity.MealSummary, 0, len(body.Meals))
	for _, m := range body.Meals {
		if m.IDMeal == "" || m.StrMeal == "" || m.StrMealThumb == "" {
			continue
		}
		out = append(out, entity.MealSummary{
			ID:       m.IDMeal,
			Name:     m.StrMeal,
			ImageURL: m.StrMealThumb,
		})
	}
	return out, nil
}

// SearchByName searches meals by name via search.php.
func (t *Client) SearchByName(ctx context.Context, name string) ([]entity.MealSummary, error) {
	q := url.Values{}
	q.Set("s", name)
	return t.searchMeals(ctx, "search.php", q)
}

// FilterByIngredient searches meals containing an ingredient via filter.php.
func (t *Client) FilterByIngredient(ctx context.Context, ingredient string) ([]entity.MealSummary, error) {
	q := url.Values{}
	q.Set("i", ingredient)
	return t.searchMeals(ctx, "filter.php", q)
}

// LookupByID fetches the full record behind an external meal ID via lookup.php.
func (t *Client) LookupByID(ctx context.Context, id string) (*entity.MealDetail, error) {
	q := url.Values{}
	q.Set("i", id)

	res, err := t.get(ctx, "lookup.php", q)
	if err != nil {
		return nil, err
	}
	defer closeBody(res)

	var body dto.LookupResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrUpstreamMalformed, err)
	}
	if len(body.Meals) == 0 {
		return nil, usecase.ErrMealNotFound
	}
	return mealDetailFromObject(body.Meals[0]), nil
}

func stringField(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// mealDetailFromObject folds the numbered ingredient columns into a list.
// The upstream pads unused slots with empty strings or whitespace.
func mealDetailFromObject(m map[string]any) *entity.MealDetail {
	d := &entity.MealDetail{
		ID:           stringField(m, "idMeal"),
		Name:         stringField(m, "strMeal"),
		Category:     stringField(m, "strCategory"),
		Area:         stringField(m, "strArea"),
		Instructions: stringField(m, "strInstructions"),
		ImageURL:     stringField(m, "strMealThumb"),
		YoutubeURL:   stringField(m, "strYoutube"),
	}
	for i := 1; i <= maxIngredients; i++ {
		name := strings.TrimSpace(stringField(m, fmt.Sprintf("strIngredient%d", i)))
		if name == "" {
			continue
		}
		measure := strings.TrimSpace(stringField(m, fmt.Sprintf("strMeasure%d", i)))
		d.Ingredients = append(d.Ingredients, entity.MealIngredient{Name: name, Measure: measure})
	}
	return d
}
