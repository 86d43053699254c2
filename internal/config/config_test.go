package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Save current env and restore later
	origSecret := os.Getenv("JWT_SECRET")
	defer os.Setenv("JWT_SECRET", origSecret)

	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("TOKEN_TTL_HOURS", "48")
	os.Setenv("SEED_DATA", "false")
	defer os.Unsetenv("TOKEN_TTL_HOURS")
	defer os.Unsetenv("SEED_DATA")

	cfg := Load()

	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 48, cfg.Auth.TokenTTLHours)
	assert.False(t, cfg.SeedData)
}

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("TOKEN_TTL_HOURS")
	os.Unsetenv("SEED_DATA")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24, cfg.Auth.TokenTTLHours)
	assert.True(t, cfg.SeedData)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
