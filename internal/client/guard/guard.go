// Package guard decides, for every route request, whether to render the
// requested view, wait, or redirect. It is a pure function of the current
// session state and the requested path; it holds no state of its own, so the
// onboarding predicate can never be evaluated stale.
package guard

import "github.com/mkalinina/nutritrack/internal/client/models"

// Well-known routes.
const (
	PathLanding    = "/"
	PathLogin      = "/login"
	PathOnboarding = "/onboarding"
	PathHome       = "/home"
	PathDashboard  = "/dashboard"
	PathUpload     = "/upload"
	PathChat       = "/chat"
)

// State classifies the session for routing purposes.
type State int

const (
	// StateLoading: the persisted session has not finished loading.
	// No redirect may be issued yet; doing so would bounce an
	// authenticated user through the anonymous landing page.
	StateLoading State = iota
	// StateAnonymous: no session.
	StateAnonymous
	// StateIncomplete: session present, profile not onboarded.
	StateIncomplete
	// StateComplete: session present, profile onboarded.
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAnonymous:
		return "anonymous"
	case StateIncomplete:
		return "incomplete"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// StateOf derives the guard state from the session context. The onboarded
// predicate is recomputed here on every evaluation.
func StateOf(loading bool, sess *models.Session, profile *models.Profile) State {
	switch {
	case loading:
		return StateLoading
	case sess == nil || sess.Token == "" || profile == nil:
		// A token without a profile is not a usable session.
		return StateAnonymous
	case profile.Onboarded():
		return StateComplete
	default:
		return StateIncomplete
	}
}

// Action is the kind of decision taken for a navigation.
type Action int

const (
	ActionWait Action = iota
	ActionRender
	ActionRedirect
)

// Decision is the terminal per-navigation outcome. Target is set only for
// ActionRedirect.
type Decision struct {
	Action Action
	Target string
}

func render() Decision            { return Decision{Action: ActionRender} }
func redirect(to string) Decision { return Decision{Action: ActionRedirect, Target: to} }

func isPublic(path string) bool {
	return path == PathLanding || path == PathLogin
}

// Evaluate applies the routing table to one requested path.
func Evaluate(state State, path string) Decision {
	switch state {
	case StateLoading:
		return Decision{Action: ActionWait}

	case StateAnonymous:
		if isPublic(path) {
			return render()
		}
		return redirect(PathLogin)

	case StateIncomplete:
		if isPublic(path) || path == PathOnboarding {
			return render()
		}
		return redirect(PathOnboarding)

	case StateComplete:
		if isPublic(path) {
			// Entry paths bounce straight to the authenticated home.
			return redirect(PathHome)
		}
		return render()

	default:
		return redirect(PathLogin)
	}
}
