package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	app_errors "realty-flow/backend/internal/errors"
)

// This file contains shared DTOs for API responses and helper functions for
// sending consistent HTTP responses.

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ChatResponse is the success body of the chat endpoint.
type ChatResponse struct {
	Response  string `json:"response"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// HealthResponse reports process liveness and credential readiness. A missing
// credential is reported here, never thrown.
type HealthResponse struct {
	Status           string `json:"status"`
	OpenAIConfigured bool   `json:"openai_configured"`
	Message          string `json:"message,omitempty"`
}

// respondWithError is the centralized error handling function for the API layer.
// It maps the application's sentinel errors to HTTP status codes and formats a
// standard JSON error response. The detailed error is logged for operators;
// the client receives a stable message.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
		// Validation errors carry a descriptive, user-facing message already.
		message = err.Error()
	case errors.Is(err, app_errors.ErrNotConfigured):
		statusCode = http.StatusInternalServerError
		message = "OpenAI API key not configured"
	case errors.Is(err, app_errors.ErrAuthentication):
		statusCode = http.StatusUnauthorized
		message = "Invalid OpenAI API key"
	case errors.Is(err, app_errors.ErrRateLimited):
		statusCode = http.StatusTooManyRequests
		message = "OpenAI rate limit exceeded"
	case errors.Is(err, app_errors.ErrUpstream), errors.Is(err, app_errors.ErrUnavailable):
		statusCode = http.StatusInternalServerError
		message = "OpenAI API error"
	default:
		// Any unhandled error is an internal server error. The generic message
		// prevents leaking implementation details to the client.
		statusCode = http.StatusInternalServerError
		message = "An unexpected internal server error occurred"
	}

	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondWithJSON is a low-level helper for marshaling a payload to JSON
// and writing it to the http.ResponseWriter with a given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}
