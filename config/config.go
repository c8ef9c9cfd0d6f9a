package config

import (
	"errors"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

// ErrMissingSecret is returned when no JWT signing secret is configured.
// The server refuses to start without one rather than signing tokens with
// an empty key.
var ErrMissingSecret = errors.New("JWT_SECRET is required")

type Config struct {
	Server struct {
		Port              string `envconfig:"PORT" default:"8080"`
		JWTSecret         string `envconfig:"JWT_SECRET" default:""`
		TokenTTLInSeconds int    `envconfig:"TOKEN_TTL_IN_SECONDS" default:"3600"`
	}

	Upstream struct {
		BaseURL    string `envconfig:"ITUNES_BASE_URL" default:"https://itunes.apple.com"`
		SearchPath string `envconfig:"ITUNES_SEARCH_PATH" default:"/search"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	}
}

// Load loads the configuration from the environment. A missing .env file is
// not an error; a missing signing secret is.
func Load() (Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Warnf("Error loading env config: %v", err)
	}

	cfg := Config{}
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// Validate checks the required settings. The secret has no default on
// purpose: signing with an empty value would make every token forgeable.
func (c Config) Validate() error {
	if c.Server.JWTSecret == "" {
		return ErrMissingSecret
	}
	return nil
}

func MustLoad() Config {
	c, err := Load()
	if err != nil {
		log.WithError(err).Fatal("Unable to load configuration")
	}

	return c
}
