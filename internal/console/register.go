package console

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/hospitrack/ncs-console/internal/apiclient"
	"github.com/hospitrack/ncs-console/internal/form"
	"github.com/hospitrack/ncs-console/internal/model"
	"github.com/hospitrack/ncs-console/internal/validate"
)

// RegisterScreen handles account creation. A successful registration
// navigates to login; it never authenticates by itself.
type RegisterScreen struct {
	client *apiclient.Client
	form   form.Machine
	logger zerolog.Logger
}

func NewRegisterScreen(client *apiclient.Client, logger zerolog.Logger) *RegisterScreen {
	return &RegisterScreen{client: client, logger: logger}
}

func (s *RegisterScreen) State() form.State { return s.form.State() }

// Submit validates the draft locally first; the request is only issued
// when every field passes.
func (s *RegisterScreen) Submit(ctx context.Context, draft validate.RegisterForm) Outcome {
	if errs := validate.Register(draft); len(errs) > 0 {
		return Outcome{Errors: errs}
	}

	if err := s.form.Begin(); err != nil {
		return Outcome{Busy: true}
	}

	_, err := s.client.Register(ctx, model.RegisterRequest{
		Username: draft.Username,
		Email:    draft.Email,
		Password: draft.Password,
	})
	s.form.Finish(err)
	if err != nil {
		s.logger.Debug().Err(err).Msg("registration failed")
		return failure(serverField, registerErrorMessage(err))
	}

	return Outcome{Nav: &Navigation{Path: loginPath + "?registered=true"}}
}

func registerErrorMessage(err error) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Server.Kind == apiclient.ServerErrorUnknown {
			return "Registration failed. Please try again."
		}
		return apiErr.Message
	}
	return "An unexpected error occurred"
}
