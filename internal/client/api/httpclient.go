package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/mkalinina/nutritrack/internal/client/models"
)

const defaultTimeout = 10 * time.Second

// defaultMealLimit is used when a caller passes a non-positive limit,
// which can arrive unvalidated from flags or a config file.
const defaultMealLimit = 50

// HTTPClient implements Client over the backend's REST API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns a client for the backend rooted at baseURL
// (e.g. "http://localhost:8000/api/v1"). The trailing slash is optional.
func NewHTTPClient(baseURL string) *HTTPClient {
	for len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// do executes one request and decodes a JSON response body into out (unless
// out is nil). Each request carries the bearer token and a fresh X-Request-Id
// so client and backend logs can be correlated.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	case resp.StatusCode >= 400:
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *HTTPClient) GetProfile(ctx context.Context, token string) (*models.Profile, error) {
	var p models.Profile
	if err := c.do(ctx, http.MethodGet, "/users/me", token, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, token string, update models.ProfileUpdate) (*models.Profile, error) {
	var p models.Profile
	if err := c.do(ctx, http.MethodPut, "/users/me", token, update, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) ListMeals(ctx context.Context, token string, limit int) ([]models.Meal, error) {
	if limit <= 0 {
		limit = defaultMealLimit
	}
	meals := make([]models.Meal, 0, limit)
	path := "/meals/?limit=" + strconv.Itoa(limit)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}
