package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds the configuration for the profile API service.
type Config struct {
	ServerHost string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	ServerPort int    `env:"SERVER_PORT" envDefault:"8080"`

	MongoURI      string `env:"MONGO_URI"      envDefault:"mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"health_profile"`

	Token TokenConfig

	// GoogleClientID enables Google ID token sign-in on /backend-login when set.
	GoogleClientID string `env:"GOOGLE_CLIENT_ID"`

	// ConsulAddr enables service registration when set.
	ConsulAddr  string `env:"CONSUL_ADDR"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"health-profile-api"`

	// SMTPEnabled toggles the welcome email after registration. The mailer
	// parses its own SMTP_* environment variables.
	SMTPEnabled bool `env:"SMTP_ENABLED" envDefault:"false"`
}

// TokenConfig holds the settings for tokens issued by the hosted identity provider.
type TokenConfig struct {
	Secret    string        `env:"TOKEN_SECRET,notEmpty"`
	Issuer    string        `env:"TOKEN_ISSUER"     envDefault:"health-profile-api"`
	ExpiresIn time.Duration `env:"TOKEN_EXPIRES_IN" envDefault:"1h"`
}

// New creates a Config instance from environment variables.
func New(logger *zerolog.Logger) *Config {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse environment variables")
	}

	return &cfg
}
