package config

import (
	"os"
	"strconv"
)

// AuthConfig holds token signing settings.
type AuthConfig struct {
	// JWTSecret signs and verifies bearer tokens. It has a development
	// default so the server boots out of the box; override it in any real
	// deployment.
	JWTSecret string
	// TokenTTLHours is the lifetime of an issued token.
	TokenTTLHours int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost    string
	Port       string
	CORSOrigin string
	// SeedData controls whether the in-memory store boots with the demo
	// dataset. Disable it to start from empty collections.
	SeedData bool
	Auth     AuthConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:    getEnv("APP_HOST", "localhost:8080"),
		Port:       getEnv("PORT", "8080"),
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),
		SeedData:   getEnvBool("SEED_DATA", true),
		Auth: AuthConfig{
			JWTSecret:     getEnv("JWT_SECRET", "admin-dashboard-secret-key"),
			TokenTTLHours: getEnvInt("TOKEN_TTL_HOURS", 24),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
