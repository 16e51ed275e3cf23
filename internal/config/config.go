// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded from a
// `.env` file), maps them into structured Go types, validates that required
// values are present so the app fails fast on bad config, and applies sane
// defaults for everything optional.
//
// Env vars use the PERSONDIR_ prefix and dot-delimited nesting, e.g.
// PERSONDIR_SERVER.PORT -> Config.Server.Port.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file into the process env, if one
	// exists, before anything reads env vars.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces this service's env vars.
const envPrefix = "PERSONDIR_"

// Config is the root configuration object for the application.
//
// The `koanf` tags specify where koanf maps values from; the `validate`
// tags are enforced after defaults are applied, so a missing required
// value aborts startup instead of surfacing mid-request.
//
// Observability is a pointer because it is optional; when absent, defaults
// are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,gt=0"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,gt=0"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,gt=0"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// Load reads configuration from the environment, applies defaults,
// validates the result, and returns it.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Only env vars with the PERSONDIR_ prefix are read; the prefix is
	// stripped and the remainder lowercased, so PERSONDIR_SERVER.PORT
	// becomes the koanf key "server.port".
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env variables: %w", err)
	}

	cfg := defaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Observability == nil {
		cfg.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment are forced here so logs always carry
	// consistent naming regardless of what the env says.
	cfg.Observability.ServiceName = "persondir"
	cfg.Observability.Environment = cfg.Primary.Env

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := cfg.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config pre-populated with development defaults.
// Env vars loaded by koanf override these field by field.
func defaultConfig() *Config {
	return &Config{
		Primary: Primary{
			Env: "development",
		},
		Server: ServerConfig{
			Port:               "8080",
			ReadTimeout:        10,
			WriteTimeout:       10,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
		},
	}
}
