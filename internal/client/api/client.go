// Package api talks to the nutrition backend's REST surface. It defines a
// transport-agnostic contract (Client) plus an HTTP implementation that
// injects the bearer token and maps response codes to sentinel errors.
package api

import (
	"context"

	"github.com/mkalinina/nutritrack/internal/client/models"
)

// Client is the backend API contract used by the session and goal services.
//
// Every call carries the session's bearer token. Implementations map a 401
// response to ErrUnauthorized and transport-level failures to ErrUnavailable,
// so callers can distinguish "session invalid" from "backend unreachable"
// with errors.Is.
type Client interface {
	// GetProfile fetches the authoritative profile (GET /users/me).
	GetProfile(ctx context.Context, token string) (*models.Profile, error)
	// UpdateProfile merges partial fields server-side (PUT /users/me) and
	// returns the updated profile.
	UpdateProfile(ctx context.Context, token string, update models.ProfileUpdate) (*models.Profile, error)
	// ListMeals returns the most recent meals, newest first (GET /meals/?limit=N).
	ListMeals(ctx context.Context, token string, limit int) ([]models.Meal, error)
}
