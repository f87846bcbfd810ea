package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORE_BACKEND", BackendMemory)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.StoreBackend)
	assert.Equal(t, "storepulse", cfg.SurrealNamespace)
	assert.Equal(t, "storepulse", cfg.SurrealDatabase)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout)
}

func TestLoadRequiresURLForSurrealBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", BackendSurrealDB)
	t.Setenv("SURREALDB_URL", "")

	_, err := Load()

	assert.ErrorIs(t, err, ErrMissingSurrealURL)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "dynamodb")

	_, err := Load()

	assert.ErrorIs(t, err, ErrInvalidBackend)
}

func TestLoadReadsConnectionSettings(t *testing.T) {
	t.Setenv("STORE_BACKEND", BackendSurrealDB)
	t.Setenv("SURREALDB_URL", "ws://localhost:8000/rpc")
	t.Setenv("SURREALDB_NAMESPACE", "prod")
	t.Setenv("SURREALDB_USER", "root")
	t.Setenv("SURREALDB_PASS", "secret")
	t.Setenv("STORE_CONNECT_TIMEOUT", "30")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "ws://localhost:8000/rpc", cfg.SurrealURL)
	assert.Equal(t, "prod", cfg.SurrealNamespace)
	assert.Equal(t, "root", cfg.SurrealUser)
	assert.Equal(t, "secret", cfg.SurrealPass)
	assert.Equal(t, 30*time.Second, cfg.ConnectTimeout)
}
