package cli

import (
	"context"
	"errors"
	"os"

	"github.com/mkalinina/nutritrack/internal/client/guard"
	"github.com/mkalinina/nutritrack/internal/common"
)

// getSimpleText and getSecret are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getSecret = GetSecret

// Login runs the identity-token flow: the user pastes the signed credential
// the provider handed to them, the service decodes its display claims and
// hydrates the profile from the backend.
//
// On any failure nothing is persisted and a generic message is shown; partial
// sessions are never created.
func (a *App) Login(ctx context.Context) error {
	credential, err := getSecret("Paste identity token", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.LoginWithIdentityToken(ctx, credential); err != nil {
		a.reportLoginFailure(ctx, err)
		return err
	}

	printlnFn("Signed in as", a.session.Profile().Email)
	a.startGoalWatcher(ctx)
	return a.Open(ctx, guard.PathLanding)
}

// LoginToken runs the access-token flow: the pasted opaque token is resolved
// through the provider's userinfo endpoint, then hydrated from the backend.
// This flow has no fallback; any failure aborts the attempt.
func (a *App) LoginToken(ctx context.Context) error {
	accessToken, err := getSecret("Paste access token", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.LoginWithAccessToken(ctx, accessToken); err != nil {
		a.reportLoginFailure(ctx, err)
		return err
	}

	printlnFn("Signed in as", a.session.Profile().Email)
	a.startGoalWatcher(ctx)
	return a.Open(ctx, guard.PathLanding)
}

func (a *App) reportLoginFailure(ctx context.Context, err error) {
	switch {
	case errors.Is(err, common.ErrMalformedCredential):
		printlnFn("That credential could not be read. Please try again.")
	case errors.Is(err, common.ErrorUnauthorized):
		printlnFn("The provider rejected the credential. Please try again.")
	default:
		printlnFn("Sign-in failed. Please try again.")
	}
	a.log.Warn(ctx, "login failed", "error", err)
}

// Logout clears the persisted session, stops the goal watcher and returns
// to the landing view.
func (a *App) Logout(ctx context.Context) error {
	a.stopGoalWatcher()
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Signed out.")
	return a.Open(ctx, guard.PathLanding)
}

// expireSession is the CLI-side reaction to a backend 401 observed outside
// the session service: the store is emptied and the user lands on the login
// view.
func (a *App) expireSession(ctx context.Context) error {
	a.stopGoalWatcher()
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Your session is no longer valid. Please sign in again.")
	return a.Open(ctx, guard.PathLogin)
}
