// internal/config/config.go
package config

import (
	"fmt"
	"os"
)

type Config struct {
	Addr           string
	DSN            string
	JWTSecret      string
	GoogleClientID string
}

func Load() Config {
	return Config{
		Addr: ":" + getenv("PORT", "8080"),
		DSN: fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			getenv("DB_HOST", "localhost"),
			getenv("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			getenv("DB_NAME", "attendance"),
			getenv("DB_PORT", "5432"),
			getenv("DB_SSLMODE", "disable"),
		),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		GoogleClientID: os.Getenv("GOOGLE_CLIENT_ID"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
