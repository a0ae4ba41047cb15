package stub

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospitrack/ncs-console/internal/apiclient"
	"github.com/hospitrack/ncs-console/internal/model"
	"github.com/hospitrack/ncs-console/internal/session"
)

func testServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	cfg := &Config{
		JWTSecret:  "test-secret",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
		RateLimit:  1000,
		RateBurst:  1000,
	}
	srv := NewServer(cfg, zerolog.Nop())
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return srv, ts
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestLoginIssuesTokenPair(t *testing.T) {
	_, ts := testServer(t)

	resp := postJSON(t, ts.URL+"/api/login/", `{"username": "nurse1", "password": "Nurse1234"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	assert.NotEmpty(t, body["access"])
	assert.NotEmpty(t, body["refresh"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	_, ts := testServer(t)

	resp := postJSON(t, ts.URL+"/api/login/", `{"username": "nurse1", "password": "wrong"}`)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "No active account found with the given credentials", body["detail"])
}

func TestCollectionsRequireAuthentication(t *testing.T) {
	_, ts := testServer(t)

	resp, err := http.Get(ts.URL + "/api/hospitals/")
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "Authentication credentials were not provided.", body["detail"])
}

func TestRejectsGarbageToken(t *testing.T) {
	_, ts := testServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/wards/", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer garbage")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "Token is invalid or expired", body["detail"])
}

func TestRefreshTokenDoesNotAuthorizeRequests(t *testing.T) {
	srv, ts := testServer(t)

	user, err := srv.store.UserByName("nurse1")
	require.NoError(t, err)
	tokens, err := srv.issuer.Issue(user)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/wards/", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+tokens.Refresh)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestRegisterDuplicateUsername(t *testing.T) {
	_, ts := testServer(t)

	resp := postJSON(t, ts.URL+"/api/register/", `{"username": "nurse1", "email": "other@ncs.local", "password": "Secret123"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	defer resp.Body.Close()
	var body map[string][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"A user with that username already exists."}, body["username"])
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	_, ts := testServer(t)

	resp := postJSON(t, ts.URL+"/api/forgot-password/", `{"email": "ghost@ncs.local"}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "User not found.", body["email"])
}

func TestResetPasswordFlow(t *testing.T) {
	srv, ts := testServer(t)

	resp := postJSON(t, ts.URL+"/api/forgot-password/", `{"email": "nurse1@ncs.local"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// grab a token the way the mailed one would be used
	token := srv.resets.Issue("nurse1")

	resp = postJSON(t, ts.URL+"/api/reset-password/", `{"token": "`+token+`", "new_password": "Fresh1234"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "Password reset successful.", body["detail"])

	// token is single-use
	resp = postJSON(t, ts.URL+"/api/reset-password/", `{"token": "`+token+`", "new_password": "Again1234"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body = decode(t, resp)
	assert.Equal(t, "Invalid token.", body["token"])

	// old password no longer works, the new one does
	resp = postJSON(t, ts.URL+"/api/login/", `{"username": "nurse1", "password": "Nurse1234"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
	resp = postJSON(t, ts.URL+"/api/login/", `{"username": "nurse1", "password": "Fresh1234"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestMetricsEndpoint(t *testing.T) {
	_, ts := testServer(t)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// The SDK against the stub, end to end.
func TestClientAgainstStub(t *testing.T) {
	_, ts := testServer(t)

	store := session.NewMemoryStore()
	client := apiclient.New(ts.URL+"/api/", store)
	ctx := context.Background()

	user, err := client.Login(ctx, "admin", "Admin1234")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, user.Role)
	assert.Equal(t, model.RoleAdmin, store.Role())
	require.NotNil(t, store.Credential())

	hospitals, err := client.FetchHospitals(ctx)
	require.NoError(t, err)
	require.Len(t, hospitals, 1)
	assert.Equal(t, "St. Camillus General", hospitals[0].Name)

	beds, err := client.FetchBeds(ctx)
	require.NoError(t, err)
	assert.Len(t, beds, 2)

	calls, err := client.FetchCalls(ctx)
	require.NoError(t, err)
	require.Len(t, calls, 2)

	require.NoError(t, client.ChangePassword(ctx, "Admin1234", "Better1234"))
	assert.Nil(t, store.Credential(), "password change must clear the session")

	_, err = client.Login(ctx, "admin", "Better1234")
	require.NoError(t, err)
}
