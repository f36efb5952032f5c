package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds client settings. Values come from the environment; the
// flags in cmd/client override them per invocation.
type Config struct {
	ServerURL string `env:"EVENTBOOK_SERVER" envDefault:"http://localhost:5000"`
	DBPath    string `env:"EVENTBOOK_DB" envDefault:"eventbook-client.db"`
	Debug     bool   `env:"EVENTBOOK_DEBUG" envDefault:"false"`
}

// Load reads an optional .env file from the working directory and then
// the process environment.
func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
