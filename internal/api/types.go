// Package api defines the response envelopes shared by all HTTP handlers.
package api

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of successful requests that carry no data.
type MessageResponse struct {
	Message string `json:"message"`
}
