package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hospitrack/ncs-console/internal/model"
	"github.com/hospitrack/ncs-console/internal/session"
)

// Login exchanges credentials for a token pair, stores it, then
// resolves the caller's role through the identity endpoint. The server
// is expected to always include the access token on success, but a
// response without one is surfaced as *AuthError rather than a panic
// further down. A failed login leaves the session untouched.
func (c *Client) Login(ctx context.Context, username, password string) (*model.User, error) {
	var tokens model.TokenResponse
	err := c.do(ctx, http.MethodPost, "login/", model.LoginRequest{
		Username: username,
		Password: password,
	}, &tokens)
	if err != nil {
		return nil, err
	}

	if tokens.Access == "" {
		return nil, &AuthError{Message: "access token missing in response"}
	}

	c.store.SetCredential(session.Credential{
		Access:  tokens.Access,
		Refresh: tokens.Refresh,
	})

	user, err := c.FetchCurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}

	role := user.Role
	if role == "" {
		role = "unknown"
	}
	c.store.SetRole(role)

	c.logger.Info().Str("username", username).Str("role", role).Msg("logged in")
	return user, nil
}

// Register creates an account. Registration does not authenticate:
// no session is created and the caller navigates to login separately.
// Role defaults to nurse.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	if req.Role == "" {
		req.Role = model.RoleNurse
	}

	var user model.User
	if err := c.do(ctx, http.MethodPost, "register/", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword replaces the current password. Success invalidates
// the session entirely; the caller must authenticate again.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	err := c.do(ctx, http.MethodPut, "change-password/", model.ChangePasswordRequest{
		OldPassword: oldPassword,
		NewPassword: newPassword,
	}, nil)
	if err != nil {
		return err
	}

	c.store.Clear()
	c.logger.Info().Msg("password changed, session cleared")
	return nil
}

// RequestPasswordReset asks the server to mail a reset token. The
// endpoint is intentionally unauthenticated and the session is never
// touched.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "forgot-password/", model.ForgotPasswordRequest{
		Email: email,
	}, nil)
}

// ResetPassword redeems a reset token for a new password.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	return c.do(ctx, http.MethodPost, "reset-password/", model.ResetPasswordRequest{
		Token:       token,
		NewPassword: newPassword,
	}, nil)
}

// Logout drops the local session. The server keeps no session state
// for bearer tokens, so nothing is sent over the wire.
func (c *Client) Logout() {
	c.store.Clear()
	c.logger.Info().Msg("logged out")
}
