package api

import "errors"

// Sentinel errors for the backend client. Callers match them with
// errors.Is; the concrete transport wraps them with request detail.
var (
	// ErrUnavailable means the request could not complete at the
	// transport level (connection refused, timeout, torn connection).
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized covers 401 responses: expired token, invalid
	// credentials, missing authentication.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound covers 404 responses for quizzes and results.
	ErrNotFound = errors.New("not found")

	// ErrServer covers any other non-success response from the backend.
	ErrServer = errors.New("server error")
)
