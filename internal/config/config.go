package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds process-level configuration read from the environment once at
// startup. Site-level settings editable from the admin panel live in the
// settings domain, not here.
type Config struct {
	Env         string `env:"APP_ENV" env-default:"development"`
	Port        string `env:"PORT" env-default:"8080"`
	DatabaseDSN string `env:"DATABASE_DSN" env-required:"true"`
	RedisAddr   string `env:"REDIS_ADDR"`
	RedisPass   string `env:"REDIS_PASSWORD"`
	JWTSecret     string `env:"JWT_SECRET" env-required:"true"`
	CryptoKey     string `env:"CRYPTO_KEY"`
	AllowedOrigin string `env:"ALLOWED_ORIGIN"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	return &cfg, nil
}
