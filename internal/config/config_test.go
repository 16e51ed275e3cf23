package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mappedev/persondir/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, "persondir", cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.Equal(t, "info", cfg.Observability.Logging.Level)
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PERSONDIR_SERVER.PORT", "9999")
	t.Setenv("PERSONDIR_PRIMARY.ENV", "production")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Primary.Env)
	// Observability environment follows the primary env.
	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.IsProduction())
}

func TestObservabilityConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.ObservabilityConfig)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *config.ObservabilityConfig) {},
			wantErr: false,
		},
		{
			name:    "bad level",
			mutate:  func(c *config.ObservabilityConfig) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "bad format",
			mutate:  func(c *config.ObservabilityConfig) { c.Logging.Format = "xml" },
			wantErr: true,
		},
		{
			name:    "missing service name",
			mutate:  func(c *config.ObservabilityConfig) { c.ServiceName = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultObservabilityConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()

	cfg.Logging.Level = ""
	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Logging.Level = "warn"
	assert.Equal(t, "warn", cfg.GetLogLevel())
}
