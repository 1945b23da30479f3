package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Server
	Port        int    `envconfig:"PORT" default:"3000"`
	Environment string `envconfig:"ENV" default:"development"`

	// Remote Pachamama API
	APIHost       string        `envconfig:"API_HOST" required:"true"`
	APIScheme     string        `envconfig:"API_SCHEME" default:"https"`
	APITimeout    time.Duration `envconfig:"API_TIMEOUT" default:"30s"`
	APIRetryCount int           `envconfig:"API_RETRY_COUNT" default:"3"`

	// Query cache
	CacheTTL time.Duration `envconfig:"CACHE_TTL" default:"30s"`

	// Screen state
	SearchDebounce time.Duration `envconfig:"SEARCH_DEBOUNCE" default:"300ms"`
	SessionTTL     time.Duration `envconfig:"SESSION_TTL" default:"30m"`
}

func Load() (*Config, error) {
	// Optional .env for local development; real env vars always win.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
