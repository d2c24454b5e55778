// Package config loads the ambient configuration for cmd/server from
// environment variables, following the teacher's
// env-var-with-fallback pattern (pkg/config/config.go).
package config

import (
	"os"

	"sudoku-engine/pkg/constants"
)

// Config holds the settings cmd/server needs at startup.
type Config struct {
	Port string
}

// Load reads configuration from the environment, applying defaults for
// anything unset.
func Load() *Config {
	return &Config{
		Port: getEnv("PORT", constants.DefaultPort),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
