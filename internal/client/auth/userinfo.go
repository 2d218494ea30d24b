package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/mkalinina/nutritrack/internal/common"
)

// GoogleUserinfoEndpoint is the default provider userinfo URL.
const GoogleUserinfoEndpoint = "https://www.googleapis.com/oauth2/v3/userinfo"

const userinfoTimeout = 10 * time.Second

// UserinfoClient resolves claims for an opaque access token by calling the
// provider's userinfo endpoint. Unlike the identity-token flow there is no
// local fallback: if this call fails, the access token yields no claims.
type UserinfoClient struct {
	endpoint string
}

func NewUserinfoClient(endpoint string) *UserinfoClient {
	if endpoint == "" {
		endpoint = GoogleUserinfoEndpoint
	}
	return &UserinfoClient{endpoint: endpoint}
}

// Fetch calls the userinfo endpoint with the access token as a bearer
// credential. Failures are reported as common.ErrHydrationFailure so the
// caller can abort the login attempt.
func (c *UserinfoClient) Fetch(ctx context.Context, accessToken string) (*Claims, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
	httpClient := oauth2.NewClient(ctx, ts)
	httpClient.Timeout = userinfoTimeout

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building userinfo request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrHydrationFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: userinfo status %d", common.ErrHydrationFailure, resp.StatusCode)
	}

	var payload struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Picture string `json:"picture"`
		Sub     string `json:"sub"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding userinfo: %v", common.ErrHydrationFailure, err)
	}

	return &Claims{
		Name:    payload.Name,
		Email:   payload.Email,
		Picture: payload.Picture,
		Subject: payload.Sub,
	}, nil
}
