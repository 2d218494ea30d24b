package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkalinina/nutritrack/internal/common"
)

func TestUserinfoClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer ya29.access", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]string{
			"name":    "Ada Lovelace",
			"email":   "ada@example.com",
			"picture": "https://example.com/ada.png",
			"sub":     "google-sub-1",
		})
	}))
	defer srv.Close()

	c := NewUserinfoClient(srv.URL)
	claims, err := c.Fetch(context.Background(), "ya29.access")
	require.NoError(t, err)
	require.Equal(t, "Ada Lovelace", claims.Name)
	require.Equal(t, "google-sub-1", claims.Subject)
}

func TestUserinfoClient_NonOKStatusIsHydrationFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewUserinfoClient(srv.URL)
	_, err := c.Fetch(context.Background(), "bad")
	require.ErrorIs(t, err, common.ErrHydrationFailure)
}

func TestUserinfoClient_UnreachableIsHydrationFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewUserinfoClient(srv.URL)
	_, err := c.Fetch(context.Background(), "tok")
	require.ErrorIs(t, err, common.ErrHydrationFailure)
}

func TestNewUserinfoClient_DefaultsToGoogle(t *testing.T) {
	c := NewUserinfoClient("")
	require.Equal(t, GoogleUserinfoEndpoint, c.endpoint)
}
