package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// HeaderSource supplies the headers for an outgoing request. It is called
// once per request so headers always reflect the caller's current state.
type HeaderSource func() http.Header

// Client is the data room platform API client
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	headers HeaderSource
	limiter *rate.Limiter
}

// NewClient creates a new platform API client
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		// Allow short bursts but keep background pollers from hammering
		// the backend.
		limiter: rate.NewLimiter(rate.Limit(10), 20),
	}
}

// SetHeaderSource installs the function used to build request headers.
// The session manager owns auth state; the client never caches it.
func (c *Client) SetHeaderSource(src HeaderSource) {
	c.headers = src
}

// APIError is a non-2xx response from the platform
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsAuthError reports whether the response indicates a stale or revoked
// credential (401/403)
func (e *APIError) IsAuthError() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// errorBody is the error envelope returned by the platform
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// doRequest performs an HTTP request with the current auth headers
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if c.headers != nil {
		for key, values := range c.headers() {
			for _, v := range values {
				req.Header.Add(key, v)
			}
		}
	}
	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}

	return resp, nil
}

// parseResponse parses the response body into the target struct
func parseResponse(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)

		apiErr := &APIError{Status: resp.StatusCode}

		// Prefer the server-provided detail when the body is the JSON
		// error envelope.
		var errResp errorBody
		if err := json.Unmarshal(body, &errResp); err == nil {
			if errResp.Error != "" {
				apiErr.Message = errResp.Error
				return apiErr
			}
			if errResp.Message != "" {
				apiErr.Message = errResp.Message
				return apiErr
			}
		}

		apiErr.Message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		return apiErr
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
