// Package session persists the active session across process restarts.
// The store is a two-entry key/value table: the raw bearer token and the
// serialized profile.
package session

import (
	"context"

	"github.com/mkalinina/nutritrack/internal/client/models"
)

// Persisted is the on-disk mirror of the in-memory session state.
type Persisted struct {
	Token   string
	Flow    models.Flow
	Profile *models.Profile
}

// Repository loads and saves the persisted session.
//
// Load never fails the caller for bad on-disk state: a missing entry, a
// token without a profile, or an unparsable profile all load as (nil, nil).
// Save is last-write-wins; a profile update racing a logout is not
// reconciled, the later call simply overwrites.
type Repository interface {
	Load(ctx context.Context) (*Persisted, error)
	Save(ctx context.Context, p *Persisted) error
	Clear(ctx context.Context) error
}
