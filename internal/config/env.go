package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds runtime settings read from the environment.
type Env struct {
	DataDir   string `env:"FLASHTIMER_DATA_DIR"`
	ServeAddr string `env:"FLASHTIMER_SERVE_ADDR"`
	LogLevel  string `env:"FLASHTIMER_LOG_LEVEL" envDefault:"info"`
	Theme     string `env:"FLASHTIMER_THEME" envDefault:"default"`
	Upstream  string `env:"FLASHTIMER_UPSTREAM"`
}

// LoadEnv parses Env from the process environment.
func LoadEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
