package config

import (
	"errors"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	DatabaseURL string `envconfig:"DATABASE_URL"`
	DBHost      string `envconfig:"DB_HOST" default:"localhost"`
	DBPort      string `envconfig:"DB_PORT" default:"5432"`
	DBUser      string `envconfig:"DB_USER" default:"postgres"`
	DBPassword  string `envconfig:"DB_PASSWORD"`
	DBName      string `envconfig:"DB_NAME" default:"vitafood"`

	// Public base URL of the deployment, used to build payment callback URLs.
	AppURL string `envconfig:"APP_URL" default:"http://localhost:8080"`

	MonimeAccessToken   string `envconfig:"MONIME_ACCESS_TOKEN"`
	MonimeAPIKey        string `envconfig:"MONIME_API_KEY"` // legacy name, still honoured
	MonimeSpaceID       string `envconfig:"MONIME_SPACE_ID"`
	MonimeEndpoint      string `envconfig:"MONIME_ENDPOINT" default:"https://api.monime.io/v1/checkout-sessions"`
	MonimeWebhookSecret string `envconfig:"MONIME_WEBHOOK_SECRET"`

	JWTSecret   string `envconfig:"JWT_SECRET"`
	AdminAPIKey string `envconfig:"ADMIN_API_KEY"`

	ResendAPIKey    string `envconfig:"RESEND_API_KEY"`
	ResendFromEmail string `envconfig:"RESEND_FROM_EMAIL"`
	ContactToEmail  string `envconfig:"CONTACT_TO_EMAIL"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MonimeToken prefers MONIME_ACCESS_TOKEN and falls back to the legacy key.
func (c *Config) MonimeToken() string {
	if c.MonimeAccessToken != "" {
		return c.MonimeAccessToken
	}
	return c.MonimeAPIKey
}

// CheckMonime verifies the payment credentials are present. Missing
// credentials must surface as an explicit error, never a silent bypass.
func (c *Config) CheckMonime() error {
	if c.MonimeToken() == "" || c.MonimeSpaceID == "" {
		return errors.New("monime credentials not configured")
	}
	return nil
}
