// Package config manages environment variables.
//
// It reads variables from the `.env` file, loads them into
// structured Go types (structs), and validates that required
// values are present so they can be reused across the
// application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional settings (log level, busy timeout).
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env before anything reads env vars. No explicit call needed.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf should map values from, using
// "." as the nesting delimiter: QUESTIONS_DATABASE.PATH -> database.path ->
// Config.Database.Path. The `validate:"required"` tags are enforced by
// go-playground/validator after unmarshalling.
type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Log      LogConfig      `koanf:"log"`
}

// Primary holds top-level information about the runtime environment.
// Used to tag logs and switch output formats based on env.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// DatabaseConfig contains SQLite connection parameters.
//
// Path is the database file to open; ":memory:" is accepted for throwaway
// instances. BusyTimeout is in milliseconds and guards against SQLITE_BUSY
// when another process holds the write lock.
type DatabaseConfig struct {
	Path        string `koanf:"path" validate:"required"`
	BusyTimeout int    `koanf:"busy_timeout"`
	ForeignKeys bool   `koanf:"foreign_keys"`
}

// LogConfig controls logger construction. Level defaults to "info".
type LogConfig struct {
	Level string `koanf:"level"`
}

// envPrefix is stripped from environment variable names before they are
// mapped to koanf keys.
const envPrefix = "QUESTIONS_"

// defaultBusyTimeout is applied when no busy timeout is configured.
const defaultBusyTimeout = 5000

// Load reads configuration from environment variables, unmarshals it into
// Config structs, validates it, applies defaults, and returns the result.
//
// Unlike a server binary, this layer is embedded by callers, so Load
// returns errors instead of exiting the process.
func Load() (*Config, error) {
	// "." is the key-path delimiter koanf uses to represent nesting,
	// e.g. "database.path" means Config.Database.Path.
	k := koanf.New(".")

	// Only env vars carrying the QUESTIONS_ prefix are read; the prefix is
	// trimmed and the rest lowercased to form the koanf key.
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Database.BusyTimeout == 0 {
		mainConfig.Database.BusyTimeout = defaultBusyTimeout
	}
	if mainConfig.Log.Level == "" {
		mainConfig.Log.Level = "info"
	}

	return mainConfig, nil
}
