// Package config reads the converter's ambient settings from the environment.
// None of these settings change which files are read or what is written.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

// Config holds all configuration for the converter
type Config struct {
	LogLevel    string `env:"CVT_FILELIST_LOG_LEVEL" envDefault:"info"`
	LogEncoding string `env:"CVT_FILELIST_LOG_ENCODING" envDefault:"console"`
}

// Load reads an optional .env file from the working directory and then parses
// the process environment.
func Load() (Config, error) {
	// a missing .env is not an error
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Wrap(err, "parse environment")
	}
	return cfg, cfg.Validate()
}

// FromMap parses cfg from environ instead of the process environment.
func FromMap(environ map[string]string) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Environment: environ})
	if err != nil {
		return Config{}, errors.Wrap(err, "parse environment")
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "CVT_FILELIST_LOG_LEVEL")
	}
	switch c.LogEncoding {
	case "console", "json":
		return nil
	default:
		return errors.Errorf("CVT_FILELIST_LOG_ENCODING: unknown encoding %q", c.LogEncoding)
	}
}

// Level returns the parsed log level. Call Validate first.
func (c Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}
