package models

// Flow identifies which identity-provider flow produced the session token.
type Flow string

const (
	// FlowIdentityToken: the provider handed over a signed token whose claims
	// can be decoded locally for a provisional profile.
	FlowIdentityToken Flow = "identity_token"
	// FlowAccessToken: the token is opaque; claims require a userinfo call.
	FlowAccessToken Flow = "access_token"
)

// Session holds the bearer credential for backend calls. At most one session
// is active per process; it is created by a successful login and destroyed on
// logout or on a backend 401.
type Session struct {
	Token string
	Flow  Flow
}
