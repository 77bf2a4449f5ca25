// Package config provides runtime configuration values for the pricing service.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr     string
	RulesVersion string
	// RulesDir overrides the embedded rule packs when set.
	RulesDir string
	// RulesFile names a single pack file; it wins over RulesDir.
	RulesFile string
	LogLevel  string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads an optional .env file and then the environment, with defaults.
// Variables already set in the environment win over the file.
func Load(envFiles ...string) Config {
	_ = godotenv.Load(envFiles...)
	return Config{
		HTTPAddr:     getenv("HTTP_ADDR", ":8080"),
		RulesVersion: getenv("RULES_VERSION", "v1"),
		RulesDir:     getenv("RULES_DIR", ""),
		RulesFile:    getenv("RULES_FILE", ""),
		LogLevel:     getenv("LOG_LEVEL", "info"),
	}
}
