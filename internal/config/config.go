// Package config loads runtime settings from the environment and an
// optional .env file
package config

import (
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/CraneCD/dnd-55e-character-sheet/internal/errors"
)

// Config holds the settings shared by every command
type Config struct {
	RedisAddr     string        `env:"REDIS_ADDR"         envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB"           envDefault:"0"`
	RedisTLS      bool          `env:"REDIS_TLS"`
	DND5eAPIURL   string        `env:"DND5E_API_URL"      envDefault:"https://www.dnd5eapi.co/api/2014/"`
	HTTPTimeout   time.Duration `env:"DND5E_HTTP_TIMEOUT" envDefault:"30s"`
	CacheTTL      time.Duration `env:"DND5E_CACHE_TTL"    envDefault:"24h"`
	HomebrewPath  string        `env:"HOMEBREW_PATH"`
	LogLevel      string        `env:"LOG_LEVEL"          envDefault:"info"`
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Load reads the given .env files (".env" when none are named) into the
// process environment and parses it. Missing files are skipped; variables
// already set win over file values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slog.Debug("No env file found", "path", f)
				continue
			}
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read env file").
				WithMeta("path", f)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the parsed values
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("REDIS_ADDR", c.RedisAddr, vb)
	errors.ValidateRequired("DND5E_API_URL", c.DND5eAPIURL, vb)
	if c.HTTPTimeout <= 0 {
		vb.Field("DND5E_HTTP_TIMEOUT", "must be positive")
	}
	if c.CacheTTL < 0 {
		vb.Field("DND5E_CACHE_TTL", "must not be negative")
	}
	errors.ValidateEnum("LOG_LEVEL", strings.ToLower(c.LogLevel), logLevels, vb)
	return vb.Build()
}

// SlogLevel maps LogLevel onto a slog level
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
