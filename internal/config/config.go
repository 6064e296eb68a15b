// Package config loads process-level configuration from the environment.
package config

import (
	"errors"
	"log/slog"
	"os"
)

// defaultSecretKey keeps local development working without a .env file.
const defaultSecretKey = "a_default_fallback_secret_key"

// Config holds the settings required before the server can start.
type Config struct {
	// SecretKey signs session cookies.
	SecretKey string
	// DatabaseURL is the Postgres DSN. The process refuses to start without it.
	DatabaseURL string
}

// Load reads configuration from the environment. A missing DATABASE_URL is
// a startup error; a missing SECRET_KEY falls back with a logged warning.
func Load() (Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return Config{}, errors.New("DATABASE_URL environment variable not set")
	}

	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		slog.Warn("SECRET_KEY is not set. Set a strong secret in production.")
		secret = defaultSecretKey
	}

	return Config{SecretKey: secret, DatabaseURL: dbURL}, nil
}
