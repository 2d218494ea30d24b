package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mkalinina/nutritrack/internal/client/models"
)

func TestHTTPClient_GetProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/users/me", r.URL.Path)
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		require.NotEmpty(t, r.Header.Get("X-Request-Id"))

		json.NewEncoder(w).Encode(map[string]any{
			"id": "7", "name": "Ada", "email": "ada@example.com",
			"age": 36, "target_calories": 1900,
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL + "/") // trailing slash must not produce "//users/me"
	p, err := c.GetProfile(context.Background(), "tok-123")
	require.NoError(t, err)
	require.Equal(t, "Ada", p.Name)
	require.Equal(t, 36, *p.Age)
	require.Equal(t, 1900.0, *p.TargetCalories)
	require.True(t, p.Onboarded())
}

func TestHTTPClient_UpdateProfile_SendsOnlySetFields(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/users/me", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]any{
			"name": "Ada", "email": "ada@example.com",
			"age": 36, "target_calories": 1850,
		})
	}))
	defer srv.Close()

	age := 36
	goal := models.GoalLose
	c := NewHTTPClient(srv.URL)
	p, err := c.UpdateProfile(context.Background(), "tok", models.ProfileUpdate{Age: &age, Goal: &goal})
	require.NoError(t, err)

	require.Equal(t, map[string]any{"age": 36.0, "goal": "lose"}, gotBody)
	require.Equal(t, 1850.0, *p.TargetCalories)
}

func TestHTTPClient_ListMeals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/meals/", r.URL.Path)
		require.Equal(t, "50", r.URL.Query().Get("limit"))

		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "food_name": "oatmeal", "calories": 310, "created_at": time.Now().UTC().Format(time.RFC3339)},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	meals, err := c.ListMeals(context.Background(), "tok", 50)
	require.NoError(t, err)
	require.Len(t, meals, 1)
	require.Equal(t, "oatmeal", meals[0].FoodName)
	require.Equal(t, 310.0, meals[0].Calories)
}

func TestHTTPClient_ListMeals_NonPositiveLimitFallsBackToDefault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "50", r.URL.Query().Get("limit"))
		json.NewEncoder(w).Encode([]map[string]any{})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)

	// A negative limit can arrive straight from the -l flag.
	meals, err := c.ListMeals(context.Background(), "tok", -1)
	require.NoError(t, err)
	require.Empty(t, meals)

	meals, err = c.ListMeals(context.Background(), "tok", 0)
	require.NoError(t, err)
	require.Empty(t, meals)
}

func TestHTTPClient_401MapsToErrUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)

	_, err := c.GetProfile(context.Background(), "expired")
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = c.ListMeals(context.Background(), "expired", 10)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestHTTPClient_ServerErrorMapsToErrUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	_, err := c.GetProfile(context.Background(), "tok")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_ConnectionRefusedMapsToErrUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // listener gone

	c := NewHTTPClient(srv.URL)
	_, err := c.GetProfile(context.Background(), "tok")
	require.True(t, errors.Is(err, ErrUnavailable))
}
