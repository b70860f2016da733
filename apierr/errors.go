// Package apierr defines the error values returned by the League of Legends
// API client. Every failure a call can produce is one of:
//
//   - a transport error (wraps ErrTransport and the underlying net/http error),
//   - a parse error (wraps ErrParse and the JSON error),
//   - an *APIError built from the server's status envelope,
//   - a *RateLimitError, the 429 specialization of *APIError.
//
// Callers check with errors.Is(err, apierr.ErrNotFound) or
// errors.As(err, &rateLimitErr) as needed.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Sentinel errors for API interaction failures.
var (
	// ErrRateLimit indicates the API rate limit was exceeded (temporary, retryable).
	ErrRateLimit = errors.New("rate limit exceeded")

	// ErrTimeout indicates the server reported a request or gateway timeout.
	ErrTimeout = errors.New("request timeout")

	// ErrAuthFailed indicates the API key was rejected (401 or 403).
	ErrAuthFailed = errors.New("authentication failed")

	// ErrBadRequest indicates a client error (4xx) that is not otherwise classified.
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound indicates the requested resource does not exist (404).
	ErrNotFound = errors.New("not found")

	// ErrUnavailable indicates a server-side failure (5xx).
	ErrUnavailable = errors.New("service unavailable")

	// ErrTransport indicates the request never produced a response.
	ErrTransport = errors.New("transport failed")

	// ErrParse indicates the response body was not valid JSON.
	ErrParse = errors.New("invalid response body")
)

// LimitType tells whether a rate limit applies to the caller's key or to the
// upstream service as a whole. Values come from the x-rate-limit-type header.
type LimitType string

// Known rate limit scopes.
const (
	LimitUser    LimitType = "user"
	LimitService LimitType = "service"
)

// APIError is a failure reported by the server through its status envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("riot api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("riot api: status %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps the status code to a sentinel so errors.Is works without
// inspecting codes.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusTooManyRequests:
		return ErrRateLimit
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrAuthFailed
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return ErrTimeout
	}
	switch {
	case e.StatusCode >= 500:
		return ErrUnavailable
	case e.StatusCode >= 400:
		return ErrBadRequest
	}
	return nil
}

// RateLimitError is an APIError for status 429. It carries the server's
// advice on when to try again.
type RateLimitError struct {
	APIError
	RetryAfter time.Duration
	LimitType  LimitType
}

func (e *RateLimitError) Error() string {
	msg := e.APIError.Error()
	if e.LimitType != "" {
		msg += fmt.Sprintf(" (limit: %s)", e.LimitType)
	}
	if e.RetryAfter > 0 {
		msg += fmt.Sprintf(" (retry after %s)", e.RetryAfter)
	}
	return msg
}

// Unwrap exposes the embedded APIError, so callers that only look for
// *APIError still match.
func (e *RateLimitError) Unwrap() error {
	return &e.APIError
}

// AsAPIError attempts to unwrap an error into an APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}
