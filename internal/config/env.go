package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ApplyEnv loads .env from the working directory, if present, and overrides cfg with YOMU_* variables.
// Variables already set in the environment win over .env.
func ApplyEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.Debug = getEnvBool("YOMU_DEBUG", cfg.Debug)
	cfg.Server.Host = getEnv("YOMU_SERVER_HOST", cfg.Server.Host)
	cfg.Server.Port = getEnvInt("YOMU_SERVER_PORT", cfg.Server.Port)
	cfg.Storage.DatabasePath = getEnv("YOMU_DATABASE_PATH", cfg.Storage.DatabasePath)
	cfg.Segmenter.Dictionary = strings.ToLower(getEnv("YOMU_SEGMENTER_DICTIONARY", cfg.Segmenter.Dictionary))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
