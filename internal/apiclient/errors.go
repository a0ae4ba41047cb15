package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
)

// ServerErrorKind tags the decoded shape of an upstream error body.
type ServerErrorKind string

const (
	// ServerErrorField means the body carried a per-field error array,
	// e.g. {"old_password": ["Wrong password."]}.
	ServerErrorField ServerErrorKind = "field"
	// ServerErrorDetail means the body carried a generic detail
	// string, e.g. {"detail": "Invalid credentials"}.
	ServerErrorDetail ServerErrorKind = "detail"
	// ServerErrorUnknown means the body was empty or unrecognized.
	ServerErrorUnknown ServerErrorKind = "unknown"
)

// ServerError is the defensively decoded upstream error body. The
// server's shapes are not guaranteed, so nothing here is assumed.
type ServerError struct {
	Kind    ServerErrorKind
	Field   string
	Message string
}

// decodeServerError picks the most specific message out of an error
// body: a field-level message wins over detail, which wins over
// nothing. Field keys are scanned in sorted order so the result is
// deterministic when the server reports several fields.
func decodeServerError(body []byte) ServerError {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return ServerError{Kind: ServerErrorUnknown}
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		if k != "detail" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		var msgs []string
		if err := json.Unmarshal(raw[k], &msgs); err == nil && len(msgs) > 0 {
			return ServerError{Kind: ServerErrorField, Field: k, Message: msgs[0]}
		}
		// some endpoints return a bare string instead of an array
		var msg string
		if err := json.Unmarshal(raw[k], &msg); err == nil && msg != "" {
			return ServerError{Kind: ServerErrorField, Field: k, Message: msg}
		}
	}

	var detail string
	if d, ok := raw["detail"]; ok {
		if err := json.Unmarshal(d, &detail); err == nil && detail != "" {
			return ServerError{Kind: ServerErrorDetail, Message: detail}
		}
	}

	return ServerError{Kind: ServerErrorUnknown}
}

// APIError is a response the server produced with a non-2xx status.
type APIError struct {
	Status int
	// Message is the best available text: a field message, then
	// detail, then a generic fallback.
	Message string
	Server  ServerError
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func newAPIError(status int, body []byte) *APIError {
	srv := decodeServerError(body)
	msg := srv.Message
	if msg == "" {
		msg = fmt.Sprintf("request failed with status %d", status)
	}
	return &APIError{Status: status, Message: msg, Server: srv}
}

// NetworkError is a request that never produced a usable response:
// connection failure, cancellation, or an unparseable body.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// AuthError is a nominally successful response missing a field the
// auth flow depends on, such as the access token.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// IsUnauthorized reports whether err is an APIError with status 401.
// The client never clears the session itself on 401; callers use this
// to decide whether to treat the session as expired.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}
