// Package config loads server configuration from the environment, with an
// optional .env file for development.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/ananya/practiq/internal/llm"
	"github.com/ananya/practiq/internal/store"
)

// Config is the resolved server configuration.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string

	// DBPath is the SQLite database file.
	DBPath string

	// JWTSecret signs and verifies API tokens.
	JWTSecret []byte

	// TokenTTL bounds how long an issued token stays valid.
	TokenTTL time.Duration

	// LLM is the summary provider configuration. Enabled is false when no
	// provider could be discovered from the environment.
	LLM        llm.Config
	LLMEnabled bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Addr:     envOr("PRACTIQ_ADDR", ":8080"),
		TokenTTL: 24 * time.Hour,
	}

	dbPath := os.Getenv("PRACTIQ_DB")
	if dbPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
		dbPath = p
	}
	cfg.DBPath = dbPath

	secret := os.Getenv("PRACTIQ_JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("PRACTIQ_JWT_SECRET is required")
	}
	if len(secret) < 32 {
		return nil, fmt.Errorf("PRACTIQ_JWT_SECRET must be at least 32 bytes")
	}
	cfg.JWTSecret = []byte(secret)

	if ttl := os.Getenv("PRACTIQ_TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("parse PRACTIQ_TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = d
	}

	cfg.LLM, cfg.LLMEnabled = llm.ConfigFromEnv()
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
