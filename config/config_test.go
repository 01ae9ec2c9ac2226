package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("PORT", "8081")
	t.Setenv("GRPC_PORT", "9191")
	t.Setenv("GRPC_TARGET", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,,")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "file::memory:", cfg.DatabaseURL)
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "9191", cfg.GRPCPort)
	assert.Equal(t, "localhost:9191", cfg.GRPCTarget, "GRPC_TARGET should default to the local gRPC port")
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.IsTest())
	assert.Same(t, cfg, GetConfig(), "Load should store the config for GetConfig")
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{DatabaseURL: "mud.db", Port: "8080", GRPCPort: "9090"}, false},
		{"missing database", Config{Port: "8080", GRPCPort: "9090"}, true},
		{"same ports", Config{DatabaseURL: "mud.db", Port: "8080", GRPCPort: "8080"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnvironmentHelpers(t *testing.T) {
	assert.True(t, (&Config{GoEnv: "production"}).IsProduction())
	assert.True(t, (&Config{GoEnv: "development"}).IsDevelopment())
	assert.False(t, (&Config{GoEnv: "development"}).IsTest())

	assert.True(t, (&Config{Auth0Domain: "tenant.auth0.com", Auth0Audience: "https://api"}).HasAuth0())
	assert.False(t, (&Config{Auth0Domain: "tenant.auth0.com"}).HasAuth0())
	assert.True(t, (&Config{AWSS3Bucket: "exports"}).HasS3())
	assert.False(t, (&Config{}).HasS3())
}
