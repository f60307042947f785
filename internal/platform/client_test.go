package platform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderSourceAppliedPerRequest(t *testing.T) {
	var seen []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"user":{"id":"u1"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	token := "first"
	client.SetHeaderSource(func() http.Header {
		h := http.Header{}
		h.Set("Content-Type", "application/json")
		h.Set("Authorization", "Bearer "+token)
		return h
	})

	_, err := client.Profile(context.Background())
	require.NoError(t, err)

	// The source must be re-evaluated on every request, not cached.
	token = "second"
	_, err = client.Profile(context.Background())
	require.NoError(t, err)

	require.Equal(t, []string{"Bearer first", "Bearer second"}, seen)
}

func TestParseResponseUsesServerErrorDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid credentials"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Login(context.Background(), LoginRequest{Email: "a@b.test", Password: "x"})
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "invalid credentials", apiErr.Message)
	assert.False(t, apiErr.IsAuthError())
}

func TestParseResponseFallsBackToGenericMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>boom</html>`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.CurrentTenant(context.Background())
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "request failed with status 500", apiErr.Message)
}

func TestIsAuthError(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{http.StatusUnauthorized, true},
		{http.StatusForbidden, true},
		{http.StatusNotFound, false},
		{http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		err := &APIError{Status: tt.status, Message: "x"}
		assert.Equal(t, tt.want, err.IsAuthError(), "status %d", tt.status)
	}
}

func TestTransportErrorIsNotAPIError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1") // nothing listens here
	_, err := client.Health(context.Background())
	require.Error(t, err)

	_, ok := err.(*APIError)
	assert.False(t, ok)
}
