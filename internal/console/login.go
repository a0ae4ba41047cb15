package console

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/hospitrack/ncs-console/internal/apiclient"
	"github.com/hospitrack/ncs-console/internal/form"
)

// LoginScreen handles the sign-in flow: authenticate, then route to
// the role's dashboard.
type LoginScreen struct {
	client *apiclient.Client
	form   form.Machine
	logger zerolog.Logger
}

func NewLoginScreen(client *apiclient.Client, logger zerolog.Logger) *LoginScreen {
	return &LoginScreen{client: client, logger: logger}
}

// State exposes the form machine for rendering (spinner, disabled
// button).
func (s *LoginScreen) State() form.State { return s.form.State() }

// Submit attempts a login. On success the session store holds the
// credential and role, and the outcome navigates to the role's
// dashboard.
func (s *LoginScreen) Submit(ctx context.Context, username, password string) Outcome {
	if err := s.form.Begin(); err != nil {
		return Outcome{Busy: true}
	}

	user, err := s.client.Login(ctx, username, password)
	s.form.Finish(err)
	if err != nil {
		s.logger.Debug().Err(err).Msg("login failed")
		return failure(serverField, loginErrorMessage(err))
	}

	role := user.Role
	if role == "" {
		role = "unknown"
	}
	return Outcome{Nav: &Navigation{Path: "/" + role + "/dashboard"}}
}

func loginErrorMessage(err error) string {
	var authErr *apiclient.AuthError
	if errors.As(err, &authErr) {
		return authErr.Message
	}

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Server.Kind == apiclient.ServerErrorUnknown {
			return "Login failed. Please check your credentials."
		}
		return apiErr.Message
	}

	return "Something went wrong. Try again."
}
