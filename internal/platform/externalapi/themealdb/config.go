// Package themealdb provides a client for TheMealDB recipe database API.
package themealdb

import (
	"os"
	"time"
)

// DefaultBaseURL is the free v1 endpoint of TheMealDB.
const DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

// Config holds configuration for TheMealDB API client.
type Config struct {
	BaseURL string        // Base URL for the API
	Timeout time.Duration // HTTP request timeout; upstream calls must never block indefinitely
}

// LoadConfig loads TheMealDB configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("MEALDB_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return Config{
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
