package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from .env file
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
}

// GetEnv gets an environment variable or returns a default value if not present
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// GetEnvBool gets a boolean environment variable or returns a default value.
// Anything strconv.ParseBool does not understand counts as the fallback.
func GetEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// MaskForbidden reports whether the API should present authorization
// failures as "not found" instead of confirming that the resource exists
func MaskForbidden() bool {
	return GetEnvBool("MASK_FORBIDDEN", false)
}

// SeedDevUser reports whether the demo account should be created at startup
func SeedDevUser() bool {
	return GetEnvBool("SEED_DEV_USER", false)
}
