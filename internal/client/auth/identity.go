// Package auth acquires credentials from the identity provider: it decodes
// identity tokens locally and resolves opaque access tokens through the
// provider's userinfo endpoint.
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mkalinina/nutritrack/internal/client/models"
	"github.com/mkalinina/nutritrack/internal/common"
)

// Claims is the subset of provider claims the client uses. Only name, email
// and picture influence anything, and only for display; authorization is
// always re-derived from the backend.
type Claims struct {
	Name    string
	Email   string
	Picture string
	Subject string
}

// DecodeIdentityToken extracts display claims from a signed identity token
// without verifying its signature. The decoded claims are trusted only for a
// provisional profile, never for authorization decisions.
//
// Returns common.ErrMalformedCredential if the token is not a well-formed
// three-part JWT.
func DecodeIdentityToken(credential string) (*Claims, error) {
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(credential, mc); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedCredential, err)
	}

	return &Claims{
		Name:    stringClaim(mc, "name"),
		Email:   stringClaim(mc, "email"),
		Picture: stringClaim(mc, "picture"),
		Subject: stringClaim(mc, "sub"),
	}, nil
}

func stringClaim(mc jwt.MapClaims, key string) string {
	if v, ok := mc[key].(string); ok {
		return v
	}
	return ""
}

// ProvisionalProfile builds a display-only profile from decoded claims.
// It carries no onboarding fields, so Onboarded() is false until the backend
// supersedes it.
func (c *Claims) ProvisionalProfile() *models.Profile {
	return &models.Profile{
		Name:       c.Name,
		Email:      c.Email,
		PictureURL: c.Picture,
		Language:   models.DefaultLanguage,
	}
}
