package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENV" default:"development"`
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	// JWTKeyMaterial is the shared secret (HS*) or PEM public key (RS*/ES*)
	// used to verify tokens issued by the auth provider.
	JWTKeyMaterial string `envconfig:"JWT_SECRET" required:"true"`

	// MigrationsDir points at the SQL migration files applied on startup.
	// Empty disables migrations.
	MigrationsDir string `envconfig:"MIGRATIONS_DIR" default:"migrations"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
