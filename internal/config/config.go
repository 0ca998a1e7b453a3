// Package config loads runtime configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs to start.
type Config struct {
	// Port is the HTTP listen port.
	Port int

	// DBPath is the contest seed database file.
	DBPath string

	// AdminUsername and AdminPIN describe the bootstrap admin account
	// created on a fresh seed database.
	AdminUsername string
	AdminPIN      int
}

// Load reads the configuration. A missing .env file is fine; real
// environment variables always win over file values.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	return Config{
		Port:          getEnvInt("PORT", 8080),
		DBPath:        getEnv("DB_PATH", "./data/contest.db"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPIN:      getEnvInt("ADMIN_PIN", 1234),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("ignoring non-numeric env value", "key", key, "value", raw)
		return fallback
	}
	return n
}
