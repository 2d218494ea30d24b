package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkalinina/nutritrack/internal/client/guard"
)

// Open navigates to path. The route guard is consulted on every hop; redirect
// decisions are followed until a view renders. The guard state is re-derived
// each time, so an onboarding completed a moment ago is already visible here.
func (a *App) Open(ctx context.Context, path string) error {
	const maxRedirects = 4

	for i := 0; i < maxRedirects; i++ {
		state := guard.StateOf(a.session.Loading(), a.session.Session(), a.session.Profile())
		decision := guard.Evaluate(state, path)

		switch decision.Action {
		case guard.ActionWait:
			// Session still loading: no redirect may be issued yet.
			printlnFn("Loading...")
			return nil

		case guard.ActionRender:
			a.current = path
			a.render(ctx, path)
			return nil

		case guard.ActionRedirect:
			printlnFn("->", decision.Target)
			path = decision.Target
		}
	}

	return errors.New("redirect loop while navigating")
}

// render prints the view placeholder. Rich rendering (charts, chat, upload)
// lives outside this client; the views here only prove the gate let us in.
func (a *App) render(ctx context.Context, path string) {
	switch path {
	case guard.PathLanding:
		printlnFn("NutriTrack — AI-powered nutrition tracking.")
		printlnFn("Use 'login' or 'logintoken' to sign in.")

	case guard.PathLogin:
		printlnFn("[login] Paste a credential with 'login' (identity token) or 'logintoken' (access token).")

	case guard.PathOnboarding:
		printlnFn("[onboarding] Run 'onboard' to set up your plan.")

	case guard.PathHome:
		p := a.session.Profile()
		printlnFn(fmt.Sprintf("[home] Welcome back, %s!", p.Name))
		a.printProgress()

	default:
		printlnFn(fmt.Sprintf("[%s]", path))
	}
}
