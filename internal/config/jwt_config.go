package config

import (
	"os"
	"time"
)

type JwtConfig struct {
	Secret   string
	TokenTTL time.Duration
}

func NewJwtConfig() *JwtConfig {
	return &JwtConfig{
		Secret:   os.Getenv("JWT_SECRET"),
		TokenTTL: getEnvSeconds("JWT_TTL_SEC", 3600),
	}
}
