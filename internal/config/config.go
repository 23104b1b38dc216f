// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded from
// a `.env` file), loads them into structured Go types, applies defaults,
// and validates that required values are present so they can be reused
// across the application runtime.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from; the
// `validate:"required"` tags enforce presence after defaults are applied.
//
// Env vars use the CAMPUS_ prefix with "__" as the nesting separator:
//
//	CAMPUS_SERVER__PORT          -> server.port
//	CAMPUS_DATABASE__PATH        -> database.path
//	CAMPUS_DATABASE__SEED_FILE   -> database.seed_file
type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains the SQLite store parameters.
//
// Path is the database file location. In containers it should point into
// the mounted data volume so the store survives container recreation.
// BusyTimeoutMS bounds how long a request waits for the database lock
// before failing with a store-unavailable error.
// SeedFile optionally names a JSON file loaded once when the items table
// is empty; leave it unset to start with an empty store.
type DatabaseConfig struct {
	Path          string `koanf:"path" validate:"required"`
	BusyTimeoutMS int    `koanf:"busy_timeout_ms" validate:"required"`
	SeedFile      string `koanf:"seed_file"`
}

// Load reads configuration from environment variables, unmarshals it into
// Config, applies defaults, and validates the result.
//
// It logs fatally on malformed or invalid configuration so the app fails
// fast on startup.
func Load() (*Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	// Load env vars with the CAMPUS_ prefix. Keys are normalized by
	// trimming the prefix, lowercasing, and mapping "__" to the "."
	// nesting delimiter, e.g. CAMPUS_SERVER__READ_TIMEOUT -> server.read_timeout.
	err := k.Load(env.Provider("CAMPUS_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "CAMPUS_")), "__", ".")
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not load initial env variables.")
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("Could not unmarshal main config.")
	}

	mainConfig.applyDefaults()

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("Config validation failed.")
	}

	return mainConfig, nil
}

// applyDefaults fills every optional knob that was not provided through
// the environment. The service runs with zero configuration: port 8080
// and a database file under ./data.
func (c *Config) applyDefaults() {
	if c.Primary.Env == "" {
		c.Primary.Env = "local"
	}
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if len(c.Server.CORSAllowedOrigins) == 0 {
		c.Server.CORSAllowedOrigins = []string{"*"}
	}
	if c.Database.Path == "" {
		c.Database.Path = "data/items.db"
	}
	if c.Database.BusyTimeoutMS == 0 {
		c.Database.BusyTimeoutMS = 5000
	}
}
