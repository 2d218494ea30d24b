// Package common defines shared sentinel errors used across the client layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Credential errors.
	ErrMalformedCredential = errors.New("malformed credential")

	// Hydration errors (backend unreachable while resolving a profile).
	ErrHydrationFailure = errors.New("profile hydration failed")

	// Session errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrNoSession      = errors.New("no active session")

	// Storage errors (persisted session entry unparsable).
	ErrStorageCorrupt = errors.New("persisted session corrupt")
)
