package config

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// envConfig is the environment variable surface, read with cleanenv.
//
//	PORT                 - Server port (default: "8080")
//	ENVIRONMENT          - Runtime environment (default: "development")
//	DATABASE_URL         - "memory" or a postgresql:// connection string
//	BASE_URL             - Public origin for default permalinks
//	ADMIN_JWT_SECRET     - Enables JWT auth on admin routes when set
//	DISCLAIMERS_ENABLED  - Global disclaimer switch (default: true)
//	DISCLAIMER_TEMPLATE  - Override fragment template (two %s verbs)
type envConfig struct {
	Port               string `env:"PORT" env-default:"8080"`
	Environment        string `env:"ENVIRONMENT" env-default:"development"`
	DatabaseURL        string `env:"DATABASE_URL" env-default:""`
	BaseURL            string `env:"BASE_URL" env-default:"http://localhost:8080"`
	AdminJWTSecret     string `env:"ADMIN_JWT_SECRET" env-default:""`
	DisclaimersEnabled bool   `env:"DISCLAIMERS_ENABLED" env-default:"true"`
	DisclaimerTemplate string `env:"DISCLAIMER_TEMPLATE" env-default:""`
}

// WithEnv applies environment variable overrides.
func WithEnv() Option {
	return func(c *ServerConfig) error {
		var e envConfig
		if err := cleanenv.ReadEnv(&e); err != nil {
			return fmt.Errorf("failed to read environment: %w", err)
		}

		c.Port = e.Port
		c.Environment = e.Environment
		c.BaseURL = e.BaseURL
		c.AdminJWTSecret = e.AdminJWTSecret
		c.DisclaimersEnabled = e.DisclaimersEnabled
		c.DisclaimerTemplate = e.DisclaimerTemplate

		return applyDatabaseEnv(c, e.DatabaseURL)
	}
}

// applyDatabaseEnv auto-detects the database type from the URL.
func applyDatabaseEnv(c *ServerConfig, dbURL string) error {
	if dbURL == "" || dbURL == "memory" {
		c.DatabaseType = "memory"
		c.DatabaseURL = ""
		return nil
	}

	if strings.HasPrefix(dbURL, "postgresql://") || strings.HasPrefix(dbURL, "postgres://") {
		c.DatabaseType = "postgres"
		c.DatabaseURL = dbURL
		return nil
	}

	return fmt.Errorf("unsupported DATABASE_URL format: %s (use 'memory' or 'postgresql://...')", dbURL)
}
