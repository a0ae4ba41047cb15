package console

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/hospitrack/ncs-console/internal/apiclient"
	"github.com/hospitrack/ncs-console/internal/form"
	"github.com/hospitrack/ncs-console/internal/validate"
)

// redirectDelay is how long the change-password screen shows its
// success message before moving to login.
const redirectDelay = 1500 * time.Millisecond

// ChangePasswordScreen handles the password change flow. A successful
// change invalidates the whole session, so the only place to go
// afterwards is login.
type ChangePasswordScreen struct {
	client *apiclient.Client
	form   form.Machine
	logger zerolog.Logger
}

func NewChangePasswordScreen(client *apiclient.Client, logger zerolog.Logger) *ChangePasswordScreen {
	return &ChangePasswordScreen{client: client, logger: logger}
}

func (s *ChangePasswordScreen) State() form.State { return s.form.State() }

// Submit checks the confirmation locally; a mismatch never reaches the
// network.
func (s *ChangePasswordScreen) Submit(ctx context.Context, old, newPassword, confirm string) Outcome {
	draft := validate.ChangePasswordForm{Old: old, New: newPassword, Confirm: confirm}
	if errs := validate.ChangePassword(draft); len(errs) > 0 {
		return Outcome{Errors: errs}
	}

	if err := s.form.Begin(); err != nil {
		return Outcome{Busy: true}
	}

	err := s.client.ChangePassword(ctx, old, newPassword)
	s.form.Finish(err)
	if err != nil {
		s.logger.Debug().Err(err).Msg("password change failed")
		return failure(serverField, changePasswordErrorMessage(err))
	}

	return Outcome{
		Message: "Password changed! Redirecting to login…",
		Nav:     &Navigation{Path: loginPath, Delay: redirectDelay},
	}
}

func changePasswordErrorMessage(err error) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Server.Kind == apiclient.ServerErrorUnknown {
			return "Failed to change password"
		}
		return apiErr.Message
	}
	return "Network error"
}

// ForgotPasswordScreen asks the server to mail a reset token.
type ForgotPasswordScreen struct {
	client *apiclient.Client
	form   form.Machine
	logger zerolog.Logger
}

func NewForgotPasswordScreen(client *apiclient.Client, logger zerolog.Logger) *ForgotPasswordScreen {
	return &ForgotPasswordScreen{client: client, logger: logger}
}

func (s *ForgotPasswordScreen) State() form.State { return s.form.State() }

func (s *ForgotPasswordScreen) Submit(ctx context.Context, email string) Outcome {
	if errs := validate.Email(email); len(errs) > 0 {
		return Outcome{Errors: errs}
	}

	if err := s.form.Begin(); err != nil {
		return Outcome{Busy: true}
	}

	err := s.client.RequestPasswordReset(ctx, email)
	s.form.Finish(err)
	if err != nil {
		s.logger.Debug().Err(err).Msg("password reset request failed")
		return failure(serverField, forgotPasswordErrorMessage(err))
	}

	return Outcome{Message: "Password reset instructions have been sent to your email."}
}

func forgotPasswordErrorMessage(err error) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Server.Kind == apiclient.ServerErrorUnknown {
			return "Failed to send reset instructions. Please try again."
		}
		return apiErr.Message
	}
	return "Network error. Please check your connection and try again."
}
