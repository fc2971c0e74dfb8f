// apps/go-cli/config.go
//
// Configuration for the wordle binary.
// Precedence (lowest to highest):
//   1. DefaultConfig
//   2. TOML file (--config or WORDLE_CONFIG)
//   3. Environment variables (a .env file is loaded first by main)
//   4. Flags the user actually set

package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

// Config holds runtime settings. Game constants (word length, attempts) are
// fixed in the game package and are not configurable.
type Config struct {
	Dictionary   string `toml:"dictionary" env:"WORDLE_DICTIONARY"` // empty = embedded list
	LogLevel     string `toml:"log_level" env:"LOG_LEVEL"`
	Port         string `toml:"port" env:"PORT"`
	ClientOrigin string `toml:"client_origin" env:"CLIENT_ORIGIN"`
	Daily        bool   `toml:"daily" env:"WORDLE_DAILY"`
	DailySalt    string `toml:"daily_salt" env:"WORDLE_DAILY_SALT"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Port:         "5175",
		ClientOrigin: "http://localhost:5173",
		DailySalt:    "local_dev_salt",
	}
}

// LoadConfig layers file, environment and changed flags over the defaults.
// path may be empty; WORDLE_CONFIG is consulted then.
func LoadConfig(path string, flags *pflag.FlagSet) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv("WORDLE_CONFIG")
	}
	if path != "" {
		if err := loadFileConfig(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if flags != nil {
		applyFlags(&cfg, flags)
	}

	if cfg.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
			return cfg, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
		}
	}
	return cfg, nil
}

// loadFileConfig decodes a TOML file over cfg; keys absent from the file keep
// their current values.
func loadFileConfig(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return toml.Unmarshal(b, cfg)
}

// applyFlags copies every explicitly set flag into cfg.
func applyFlags(cfg *Config, fs *pflag.FlagSet) {
	fs.Visit(func(f *pflag.Flag) {
		v := f.Value.String()
		switch f.Name {
		case "dictionary":
			cfg.Dictionary = v
		case "log-level":
			cfg.LogLevel = v
		case "port":
			cfg.Port = v
		case "client-origin":
			cfg.ClientOrigin = v
		case "daily":
			cfg.Daily = v == "true"
		case "daily-salt":
			cfg.DailySalt = v
		}
	})
}
