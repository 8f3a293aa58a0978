package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the inference executable.
// None of them change the request/response contract.
type Config struct {
	LogLevel  string // QMOI_LOG_LEVEL, default "disabled"
	LogPretty bool   // QMOI_LOG_PRETTY, default false
}

// Load reads configuration from the environment, after loading .env from the
// working directory if one exists.
func Load() (*Config, error) {
	return load(".env")
}

func load(envFile string) (*Config, error) {
	// Variables already set in the environment win over the file.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", envFile, err)
	}

	var cfg Config
	cfg.LogLevel = getEnvWithDefault("QMOI_LOG_LEVEL", "disabled")
	cfg.LogPretty = getEnvBoolWithDefault("QMOI_LOG_PRETTY", false)

	return &cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
