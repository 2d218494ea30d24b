package api

import "errors"

var (
	// ErrUnavailable: the backend could not be reached or answered with a
	// server error. The session itself may still be valid.
	ErrUnavailable = errors.New("backend unavailable")
	// ErrUnauthorized: the backend rejected the bearer token. Treated
	// uniformly as "session invalid" regardless of which call produced it.
	ErrUnauthorized = errors.New("unauthorized")
)
