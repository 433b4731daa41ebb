package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        int
	JWTSecret   string
	DatabaseURL string
	BcryptCost  int
}

func Load() Config {
	cfg := Config{
		Port:        8080,
		JWTSecret:   os.Getenv("AUTHD_JWT_SECRET"),
		DatabaseURL: os.Getenv("AUTHD_DATABASE_URL"),
		BcryptCost:  8,
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = os.Getenv("JWT_SECRET")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if v := os.Getenv("AUTHD_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 && p < 65536 {
			cfg.Port = p
		}
	}

	// Cost is capped so a single hash stays cheap enough to complete within
	// a request.
	if v := os.Getenv("AUTHD_BCRYPT_COST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 4 && n <= 12 {
			cfg.BcryptCost = n
		}
	}

	return cfg
}

func (c Config) ListenAddr() string {
	return ":" + strconv.Itoa(c.Port)
}
