// Package usecase implements the business logic for the mealsearch feature.
package usecase

import "errors"

var (
	// ErrMissingQuery is returned when neither a name query nor an
	// ingredient parameter was supplied.
	ErrMissingQuery = errors.New("missing search query or ingredient parameter")

	// ErrMealNotFound is returned when a lookup by external ID matches nothing.
	ErrMealNotFound = errors.New("external recipe not found")

	// ErrUpstreamUnavailable covers connection failures, timeouts and HTTP
	// error statuses from the upstream recipe database. Calls are never retried.
	ErrUpstreamUnavailable = errors.New("recipe database unavailable")

	// ErrUpstreamMalformed is returned when the upstream response cannot be decoded.
	ErrUpstreamMalformed = errors.New("unexpected response from recipe database")
)
