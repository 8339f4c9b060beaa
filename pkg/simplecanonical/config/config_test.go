package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "memory", cfg.DatabaseType)
	assert.True(t, cfg.DisclaimersEnabled)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ServerConfig)
		wantErr bool
	}{
		{"defaults are valid", func(c *ServerConfig) {}, false},
		{"empty port", func(c *ServerConfig) { c.Port = "" }, true},
		{"unknown database type", func(c *ServerConfig) { c.DatabaseType = "mysql" }, true},
		{"postgres without URL", func(c *ServerConfig) { c.DatabaseType = "postgres" }, true},
		{"postgres with URL", func(c *ServerConfig) {
			c.DatabaseType = "postgres"
			c.DatabaseURL = "postgresql://localhost/db"
		}, false},
		{"empty base URL", func(c *ServerConfig) { c.BaseURL = "" }, true},
		{"relative base URL", func(c *ServerConfig) { c.BaseURL = "example.org" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBuildRepositoryMemory(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	repo, cleanup, err := cfg.BuildRepository(context.Background())
	require.NoError(t, err)
	defer cleanup()
	assert.NotNil(t, repo)
}

func TestBuildService(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	repo, cleanup, err := cfg.BuildRepository(context.Background())
	require.NoError(t, err)
	defer cleanup()

	svc, err := cfg.BuildService(repo, nil)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}
