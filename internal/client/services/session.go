// Package services contains the application services of the client: session
// management (login flows, hydration, profile updates, logout) and the goal
// progress poller.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mkalinina/nutritrack/internal/client/api"
	"github.com/mkalinina/nutritrack/internal/client/auth"
	"github.com/mkalinina/nutritrack/internal/client/models"
	"github.com/mkalinina/nutritrack/internal/client/repositories/session"
	"github.com/mkalinina/nutritrack/internal/common"
	"github.com/mkalinina/nutritrack/internal/logging"
)

// ClaimsFetcher resolves claims for an opaque access token.
// *auth.UserinfoClient is the production implementation.
type ClaimsFetcher interface {
	Fetch(ctx context.Context, accessToken string) (*auth.Claims, error)
}

// SessionService owns the process-wide session: at most one active session,
// created by a login flow and destroyed by Logout or a backend rejection.
//
// Contract:
//   - Restore: read the persisted session once at startup.
//   - LoginWithIdentityToken / LoginWithAccessToken: the two mutually
//     exclusive entry points; a session only becomes usable once a profile
//     exists, and it is persisted before either method returns.
//   - UpdateProfile: merge partial fields via the backend and re-persist.
//   - Logout: clear persisted and in-memory state.
//
// Accessors (Session, Profile, Loading) expose the state the route guard
// evaluates. They are safe for concurrent use; the goal watcher reads the
// session from its own goroutine.
type SessionService interface {
	Restore(ctx context.Context) error
	LoginWithIdentityToken(ctx context.Context, credential string) error
	LoginWithAccessToken(ctx context.Context, accessToken string) error
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) error
	Logout(ctx context.Context) error

	Session() *models.Session
	Profile() *models.Profile
	Loading() bool
}

type sessionService struct {
	api      api.Client
	userinfo ClaimsFetcher
	repo     session.Repository
	log      logging.Logger

	// mu guards the fields below. The goal watcher goroutine reads the
	// session through the accessors while login and logout rewrite it on
	// the REPL goroutine.
	mu      sync.RWMutex
	loading bool
	session *models.Session
	profile *models.Profile
}

// NewSessionService constructs a SessionService. The service starts in the
// loading state until Restore has run.
func NewSessionService(apiClient api.Client, userinfo ClaimsFetcher, repo session.Repository, log logging.Logger) SessionService {
	return &sessionService{
		api:      apiClient,
		userinfo: userinfo,
		repo:     repo,
		log:      log,
		loading:  true,
	}
}

func (s *sessionService) Session() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *sessionService) Profile() *models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

func (s *sessionService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Restore loads the persisted session into memory. Bad or half-written state
// loads as no session; the loading flag drops only after the load finished,
// so the guard never evaluates against an absent profile mid-load.
func (s *sessionService) Restore(ctx context.Context) error {
	persisted, err := s.repo.Load(ctx)

	s.mu.Lock()
	s.loading = false
	if err == nil && persisted != nil {
		s.session = &models.Session{Token: persisted.Token, Flow: persisted.Flow}
		s.profile = persisted.Profile
	}
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("restoring session: %w", err)
	}
	if persisted != nil {
		s.log.Info(ctx, "session restored", "email", persisted.Profile.Email)
	}
	return nil
}

// LoginWithIdentityToken runs the identity-token flow: decode display claims
// locally, then hydrate the authoritative profile from the backend. If the
// backend is unreachable the provisional profile is kept, which leaves the
// user un-onboarded until the backend confirms otherwise.
func (s *sessionService) LoginWithIdentityToken(ctx context.Context, credential string) error {
	claims, err := auth.DecodeIdentityToken(credential)
	if err != nil {
		// Abort: no partially populated session.
		return err
	}

	profile := claims.ProvisionalProfile()

	backend, err := s.api.GetProfile(ctx, credential)
	switch {
	case err == nil:
		profile.Merge(backend)
	case errors.Is(err, api.ErrUnauthorized):
		return fmt.Errorf("%w: backend rejected credential", common.ErrorUnauthorized)
	default:
		// Accepted degradation: keep the decoded claims, route to onboarding.
		s.log.Warn(ctx, "profile hydration failed, using decoded claims", "error", err)
	}

	return s.establish(ctx, &models.Session{Token: credential, Flow: models.FlowIdentityToken}, profile)
}

// LoginWithAccessToken runs the access-token flow: resolve claims through the
// provider's userinfo endpoint, then hydrate from the backend. This flow has
// no local fallback; any failure aborts the attempt with nothing persisted.
func (s *sessionService) LoginWithAccessToken(ctx context.Context, accessToken string) error {
	claims, err := s.userinfo.Fetch(ctx, accessToken)
	if err != nil {
		return err
	}

	profile := claims.ProvisionalProfile()

	backend, err := s.api.GetProfile(ctx, accessToken)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return fmt.Errorf("%w: backend rejected credential", common.ErrorUnauthorized)
		}
		return fmt.Errorf("%w: %v", common.ErrHydrationFailure, err)
	}
	profile.Merge(backend)

	return s.establish(ctx, &models.Session{Token: accessToken, Flow: models.FlowAccessToken}, profile)
}

// establish persists the session before exposing it in memory, so any
// redirect issued after login sees durable state.
func (s *sessionService) establish(ctx context.Context, sess *models.Session, profile *models.Profile) error {
	err := s.repo.Save(ctx, &session.Persisted{Token: sess.Token, Flow: sess.Flow, Profile: profile})
	if err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}

	s.mu.Lock()
	s.session = sess
	s.profile = profile
	s.mu.Unlock()

	s.log.Info(ctx, "session established", "flow", string(sess.Flow), "email", profile.Email)
	return nil
}

// UpdateProfile sends the partial update to the backend, merges the returned
// profile into the current one and re-persists. Fields absent from the update
// are never dropped.
func (s *sessionService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) error {
	sess := s.Session()
	if sess == nil {
		return common.ErrNoSession
	}

	updated, err := s.api.UpdateProfile(ctx, sess.Token, update)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			s.forceLogout(ctx)
			return fmt.Errorf("%w: session invalid", common.ErrorUnauthorized)
		}
		return fmt.Errorf("updating profile: %w", err)
	}

	s.mu.Lock()
	s.profile.Merge(updated)
	profile := s.profile
	s.mu.Unlock()

	err = s.repo.Save(ctx, &session.Persisted{Token: sess.Token, Flow: sess.Flow, Profile: profile})
	if err != nil {
		return fmt.Errorf("persisting profile update: %w", err)
	}
	return nil
}

// Logout clears the persisted session and drops in-memory state.
func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	s.drop()
	return nil
}

// forceLogout is the uniform reaction to a 401: the session is gone no
// matter which call observed it.
func (s *sessionService) forceLogout(ctx context.Context) {
	if err := s.repo.Clear(ctx); err != nil {
		s.log.Error(ctx, "clearing rejected session", "error", err)
	}
	s.drop()
	s.log.Info(ctx, "session invalidated by backend")
}

func (s *sessionService) drop() {
	s.mu.Lock()
	s.session = nil
	s.profile = nil
	s.mu.Unlock()
}
