// Package apiclient is the typed access layer for the hospital
// management API. It attaches the stored credential to every request,
// separates transport failures from server-reported ones, and exposes
// one accessor per resource collection.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hospitrack/ncs-console/internal/session"
)

// DefaultBaseURL matches the local development server.
const DefaultBaseURL = "http://127.0.0.1:5000/api/"

// Client issues authenticated requests against the API. It holds no
// state of its own beyond configuration; the session store it is
// handed owns the credential.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      session.Store
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient substitutes the transport, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New builds a Client rooted at baseURL. An empty baseURL falls back
// to DefaultBaseURL; endpoint paths are joined onto it, so it always
// gets a trailing slash.
func New(baseURL string, store session.Store, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		store:      store,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL reports the normalized base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// AuthHeaders builds the header set for an outgoing request. The
// Authorization entry is present only when a credential is stored;
// requests without one still go out, just unauthenticated.
func (c *Client) AuthHeaders() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	if cred := c.store.Credential(); cred != nil {
		h.Set("Authorization", "Bearer "+cred.Access)
	}
	return h
}

// do issues method against baseURL+endpoint with an optional JSON body
// and decodes a 2xx response into out (skipped when out is nil).
// Non-2xx responses come back as *APIError; anything that prevents a
// usable response is a *NetworkError.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header = c.AuthHeaders()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("method", method).Str("endpoint", endpoint).Msg("request failed in transport")
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	c.logger.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Msg("api request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &NetworkError{Err: fmt.Errorf("failed to decode response body: %w", err)}
	}
	return nil
}
