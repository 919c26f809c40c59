// Package llm is the AI client adapter: a small interface over remote
// completion endpoints plus the typed failures the UI needs to tell apart.
// Clients are plain net/http; no vendor SDKs, no automatic retries.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Client defines the interface for completion providers.
type Client interface {
	// Complete sends one prompt with a system message and returns the reply.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ErrorKind classifies adapter failures for inline display.
type ErrorKind int

const (
	ErrorNetwork ErrorKind = iota
	ErrorAuth
	ErrorRateLimit
	ErrorAPI
)

// APIError is a failure reported by the remote endpoint.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	switch e.Kind {
	case ErrorNetwork:
		return "network error: " + e.Message
	case ErrorAuth:
		return fmt.Sprintf("authentication failed (status %d): check your API key", e.StatusCode)
	case ErrorRateLimit:
		return fmt.Sprintf("rate limited (status %d): slow down a little", e.StatusCode)
	default:
		return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Message)
	}
}

// classifyStatus wraps a non-200 response in a typed error.
func classifyStatus(status int, body string) *APIError {
	kind := ErrorAPI
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = ErrorAuth
	case status == http.StatusTooManyRequests:
		kind = ErrorRateLimit
	}
	return &APIError{Kind: kind, StatusCode: status, Message: body}
}

// IsAuth reports whether err is an authentication failure.
func IsAuth(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == ErrorAuth
}

// IsRateLimit reports whether err is a rate-limit failure.
func IsRateLimit(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == ErrorRateLimit
}
