package stub

import (
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// Mailer delivers the password-reset token.
type Mailer interface {
	SendResetToken(to, token string) error
}

// NewMailer returns an SMTP mailer when a host is configured, and a
// logging one otherwise, mirroring a dev console mail backend.
func NewMailer(cfg *Config, logger zerolog.Logger) Mailer {
	if cfg.SMTPHost == "" {
		return &logMailer{logger: logger}
	}
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   cfg.MailFrom,
	}
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

func (m *smtpMailer) SendResetToken(to, token string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Password Reset Token")
	msg.SetBody("text/plain", fmt.Sprintf("Use this token to reset your password: %s", token))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}
	return nil
}

type logMailer struct {
	logger zerolog.Logger
}

func (m *logMailer) SendResetToken(to, token string) error {
	m.logger.Info().Str("to", to).Str("token", token).Msg("reset token (no SMTP configured)")
	return nil
}
