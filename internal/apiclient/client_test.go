package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospitrack/ncs-console/internal/session"
)

func TestAuthHeadersWithoutCredential(t *testing.T) {
	c := New("http://example.com/api", session.NewMemoryStore())

	h := c.AuthHeaders()
	assert.Equal(t, "application/json", h.Get("Content-Type"))
	assert.Empty(t, h.Get("Authorization"))
}

func TestAuthHeadersWithCredential(t *testing.T) {
	store := session.NewMemoryStore()
	store.SetCredential(session.Credential{Access: "tok"})
	c := New("http://example.com/api", store)

	h := c.AuthHeaders()
	assert.Equal(t, "Bearer tok", h.Get("Authorization"))
}

func TestNewNormalizesBaseURL(t *testing.T) {
	c := New("http://example.com/api", session.NewMemoryStore())
	assert.Equal(t, "http://example.com/api/", c.BaseURL())

	c = New("", session.NewMemoryStore())
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
}

func TestDoReturnsNetworkErrorWhenServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing is listening anymore

	c := New(srv.URL, session.NewMemoryStore())
	_, err := c.FetchHospitals(context.Background())

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.NotNil(t, netErr.Err)
}

func TestDoReturnsNetworkErrorOnMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	c := New(srv.URL, session.NewMemoryStore())
	_, err := c.FetchHospitals(context.Background())

	var netErr *NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestDoSurfacesAPIErrorWithStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Authentication credentials were not provided."}`))
	}))
	defer srv.Close()

	c := New(srv.URL, session.NewMemoryStore())
	_, err := c.FetchHospitals(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Authentication credentials were not provided.", apiErr.Message)
}
