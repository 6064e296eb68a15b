// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/Mark1william11/FlavorFind/internal/platform/externalapi/themealdb"
	infrahttp "github.com/Mark1william11/FlavorFind/internal/platform/http"
)

// NewMealDB creates a fully configured TheMealDB client with HTTP client.
func NewMealDB() *themealdb.Client {
	cfg := themealdb.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return themealdb.NewClient(cfg, httpClient)
}
