package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tendant/simple-canonical/pkg/simplecanonical"
	"github.com/tendant/simple-canonical/pkg/simplecanonical/repo/memory"
	repopg "github.com/tendant/simple-canonical/pkg/simplecanonical/repo/postgres"
)

// Option applies configuration to a ServerConfig instance.
type Option func(*ServerConfig) error

// Load constructs a ServerConfig by applying the supplied options on top of library defaults.
func Load(opts ...Option) (*ServerConfig, error) {
	cfg := defaults()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaults() ServerConfig {
	return ServerConfig{
		Port:               "8080",
		Environment:        "development",
		DatabaseType:       "memory",
		BaseURL:            "http://localhost:8080",
		DisclaimersEnabled: true,
	}
}

// ServerConfig represents server configuration for the simple-canonical service
type ServerConfig struct {
	Port        string
	Environment string // development, production, testing

	// Database configuration
	DatabaseURL  string
	DatabaseType string // "memory", "postgres"

	// Public origin used for default permalinks
	BaseURL string

	// Admin surface protection; empty disables JWT auth
	AdminJWTSecret string

	// Disclaimer feature
	DisclaimersEnabled bool
	DisclaimerTemplate string // empty keeps the library default
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}

	if c.DatabaseType != "memory" && c.DatabaseType != "postgres" {
		return errors.New("database_type must be 'memory' or 'postgres'")
	}

	if c.DatabaseType == "postgres" && c.DatabaseURL == "" {
		return errors.New("database_url is required when using postgres")
	}

	if c.BaseURL == "" {
		return errors.New("base_url is required")
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("base_url must be an absolute http(s) URL, got %q", c.BaseURL)
	}

	return nil
}

// BuildRepository creates a Repository from the server configuration. The
// returned cleanup function releases any underlying connection pool.
func (c *ServerConfig) BuildRepository(ctx context.Context) (simplecanonical.Repository, func(), error) {
	switch c.DatabaseType {
	case "postgres":
		pool, err := pgxpool.New(ctx, c.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create connection pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("failed to ping database: %w", err)
		}
		return repopg.NewWithPool(pool), pool.Close, nil
	default:
		return memory.New(), func() {}, nil
	}
}

// BuildService creates a Service instance from the server configuration
func (c *ServerConfig) BuildService(repo simplecanonical.Repository, hooks *simplecanonical.Hooks) (simplecanonical.Service, error) {
	options := []simplecanonical.Option{
		simplecanonical.WithRepository(repo),
	}
	if hooks != nil {
		options = append(options, simplecanonical.WithHooks(hooks))
	}
	if c.DisclaimerTemplate != "" {
		options = append(options, simplecanonical.WithDisclaimerTemplate(c.DisclaimerTemplate))
	}

	return simplecanonical.New(options...)
}
