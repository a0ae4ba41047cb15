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

func TestFetchHospitals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/hospitals/", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": "0a8ddd1c-4c2b-4b2e-8f50-0a51c1a5ce01", "name": "General", "address": "1 Main St", "admin": null},
			{"id": "0a8ddd1c-4c2b-4b2e-8f50-0a51c1a5ce02", "name": "Mercy", "address": "2 Oak Ave", "admin": "6f1c1a52-9f6e-4a43-9db1-0ff0a72f5a61"}
		]`))
	}))
	defer srv.Close()

	store := session.NewMemoryStore()
	store.SetCredential(session.Credential{Access: "tok"})
	c := New(srv.URL, store)

	hospitals, err := c.FetchHospitals(context.Background())
	require.NoError(t, err)
	require.Len(t, hospitals, 2)
	assert.Equal(t, "General", hospitals[0].Name)
	assert.Nil(t, hospitals[0].Admin)
	require.NotNil(t, hospitals[1].Admin)
	assert.Equal(t, "6f1c1a52-9f6e-4a43-9db1-0ff0a72f5a61", hospitals[1].Admin.String())
}

// A missing credential still issues the request, just without the
// Authorization header; the 401 comes back as a plain APIError.
func TestFetchWithoutCredentialGetsNoAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Authentication credentials were not provided."}`))
	}))
	defer srv.Close()

	c := New(srv.URL, session.NewMemoryStore())
	_, err := c.FetchWards(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.True(t, IsUnauthorized(err))
}

func TestFetchCalls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/calls/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{
			"id": "0a8ddd1c-4c2b-4b2e-8f50-0a51c1a5ce03",
			"device": "0a8ddd1c-4c2b-4b2e-8f50-0a51c1a5ce04",
			"bed": "0a8ddd1c-4c2b-4b2e-8f50-0a51c1a5ce05",
			"call_time": "2025-03-14T09:26:00Z",
			"status": "pending",
			"response_time": null,
			"nurse": null
		}]`))
	}))
	defer srv.Close()

	store := session.NewMemoryStore()
	store.SetCredential(session.Credential{Access: "tok"})
	c := New(srv.URL, store)

	calls, err := c.FetchCalls(context.Background())
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, "pending", calls[0].Status)
	assert.Nil(t, calls[0].ResponseTime)
	assert.Nil(t, calls[0].Nurse)
	assert.Equal(t, 2025, calls[0].CallTime.Year())
}

func TestFetchCurrentUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/me/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "6f1c1a52-9f6e-4a43-9db1-0ff0a72f5a61", "username": "boss", "email": "boss@hospital.org", "role": "admin"}`))
	}))
	defer srv.Close()

	store := session.NewMemoryStore()
	store.SetCredential(session.Credential{Access: "tok"})
	c := New(srv.URL, store)

	user, err := c.FetchCurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "boss", user.Username)
	assert.Equal(t, "admin", user.Role)
}
