package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// Logging configuration
	LogLevel  zerolog.Level
	LogPretty bool

	// Metrics configuration
	MetricsEnabled bool
}

// Load loads configuration from environment variables. A .env file in the
// working directory is read first when present. Every setting has a default;
// the service runs with no environment at all.
func Load() (*Config, error) {
	_ = godotenv.Load()

	level, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	cfg := &Config{
		Port:           getEnv("PORT", "3000"),
		LogLevel:       level,
		LogPretty:      getEnvAsBool("LOG_PRETTY", false),
		MetricsEnabled: getEnvAsBool("METRICS_ENABLED", true),
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool gets an environment variable as a bool or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
