package stub

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the stub server's configuration, taken from STUB_-prefixed
// environment variables.
type Config struct {
	Port       int           `envconfig:"PORT" default:"5000"`
	JWTSecret  string        `envconfig:"JWT_SECRET" default:"dev-only-secret"`
	AccessTTL  time.Duration `envconfig:"ACCESS_TTL" default:"1h"`
	RefreshTTL time.Duration `envconfig:"REFRESH_TTL" default:"24h"`

	RateLimit float64 `envconfig:"RATE_LIMIT" default:"50"`
	RateBurst int     `envconfig:"RATE_BURST" default:"100"`

	// SMTP settings for the reset-token mail-out. With no host the
	// token is logged instead, like a dev mail backend.
	SMTPHost     string `envconfig:"SMTP_HOST"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername string `envconfig:"SMTP_USERNAME"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
	MailFrom     string `envconfig:"MAIL_FROM" default:"noreply@ncs.local"`
}

// LoadConfig reads the environment.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("STUB", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process stub config: %w", err)
	}
	return &cfg, nil
}
