package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG":                    "/etc/asset-management.json",
		"APP_TOKEN_SIGN_KEY":        "jwt_secret",
		"APP_TOKEN_ISSUER":          "issuer",
		"APP_TOKEN_DURATION":        "2h",
		"APP_BCRYPT_COST":           "12",
		"APP_VERSION":               "1.0.0",
		"APP_LOG_LEVEL":             "debug",
		"SERVER_ADDRESS":            "localhost:8080",
		"SERVER_REQUEST_TIMEOUT":    "15s",
		"STORAGE_DB_DATABASE_URI":   "postgres://localhost/assets",
		"STORAGE_DB_MAX_OPEN_CONNS": "25",
		"STORAGE_CACHE_ADDRESS":     "localhost:6379",
		"STORAGE_CACHE_PASSWORD":    "redis",
		"STORAGE_CACHE_DB":          "2",
		"STORAGE_CACHE_TTL":         "5m",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{
		App: App{
			TokenSignKey:  "jwt_secret",
			TokenIssuer:   "issuer",
			TokenDuration: 2 * time.Hour,
			BcryptCost:    12,
			Version:       "1.0.0",
			LogLevel:      "debug",
		},
		Storage: Storage{
			DB:    DB{DSN: "postgres://localhost/assets", MaxOpenConns: 25},
			Cache: Cache{Address: "localhost:6379", Password: "redis", DB: 2, TTL: 5 * time.Minute},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		JSONFilePath: "/etc/asset-management.json",
	}, *cfg)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"invalid duration", "APP_TOKEN_DURATION", "invalid_duration"},
		{"invalid int", "APP_BCRYPT_COST", "ten"},
		{"invalid cache db", "STORAGE_CACHE_DB", "first"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{tt.key: tt.val})

			err := parseEnv(&StructuredConfig{})

			require.Error(t, err)
			assert.Contains(t, err.Error(), "env")
		})
	}
}

// Helpers

var envKeys = []string{
	"CONFIG",

	"APP_TOKEN_SIGN_KEY",
	"APP_TOKEN_ISSUER",
	"APP_TOKEN_DURATION",
	"APP_BCRYPT_COST",
	"APP_VERSION",
	"APP_LOG_LEVEL",

	"SERVER_ADDRESS",
	"SERVER_REQUEST_TIMEOUT",

	"STORAGE_DB_DATABASE_URI",
	"STORAGE_DB_MAX_OPEN_CONNS",
	"STORAGE_CACHE_ADDRESS",
	"STORAGE_CACHE_PASSWORD",
	"STORAGE_CACHE_DB",
	"STORAGE_CACHE_TTL",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		if v, ok := os.LookupEnv(k); ok {
			t.Setenv(k, v)
			require.NoError(t, os.Unsetenv(k))
		}
	}
}
