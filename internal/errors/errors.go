package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Using sentinel errors allows services to return specific, recognizable error types
// without coupling them to implementation details like HTTP status codes. The API
// layer can then use `errors.Is()` to check for these specific errors and map
// them to the correct HTTP responses.

var (
	// ErrValidation signifies that input data provided by a client failed
	// validation (a required field was missing or empty).
	// This is mapped to a 400 Bad Request HTTP status.
	ErrValidation = errors.New("validation failed")

	// ErrNotConfigured signifies that the OpenAI credential is absent, so no
	// completion call can be attempted. Startup proceeds without the credential;
	// only completion-dependent requests fail.
	// This is mapped to a 500 Internal Server Error with an explicit message.
	ErrNotConfigured = errors.New("openai api key not configured")

	// ErrAuthentication signifies that the upstream completion service
	// rejected our credential.
	// This is mapped to a 401 Unauthorized HTTP status.
	ErrAuthentication = errors.New("openai authentication failed")

	// ErrRateLimited signifies that the upstream completion service throttled
	// the request.
	// This is mapped to a 429 Too Many Requests HTTP status.
	ErrRateLimited = errors.New("openai rate limit exceeded")

	// ErrUpstream signifies a fault reported by the completion service itself,
	// i.e. a non-2xx response that is neither an authentication nor a
	// rate-limit failure, or a 2xx response with no usable choice.
	// This is mapped to a 500 Internal Server Error HTTP status.
	ErrUpstream = errors.New("openai api error")

	// ErrUnavailable signifies a network-level failure reaching the
	// completion service.
	// This is mapped to a 500 Internal Server Error HTTP status.
	ErrUnavailable = errors.New("openai service unavailable")

	// ErrInternal signifies an unexpected error on the server. This is a generic
	// error used to prevent leaking sensitive implementation details to the client.
	// This is mapped to a 500 Internal Server Error HTTP status.
	ErrInternal = errors.New("internal server error")
)
