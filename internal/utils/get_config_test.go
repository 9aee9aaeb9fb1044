package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("DB_HOST: db.internal\nJWT_SECRET: s3cret\nSEED_DATA: true\nNUTRITION_TIMEOUT_SECONDS: 9\n"), 0o600))

	LoadConfig(path)
	t.Cleanup(func() { SetConfig(defaultConfig()) })

	assert.Equal(t, "db.internal", GetConfig("DB_HOST"))
	assert.Equal(t, "s3cret", GetConfig("JWT_SECRET"))
	assert.True(t, GetConfigBool("SEED_DATA"))
	assert.Equal(t, 9*time.Second, GetConfigSeconds("NUTRITION_TIMEOUT_SECONDS", time.Second))
	// untouched keys keep their defaults
	assert.Equal(t, "7070", GetConfig("APP_PORT"))
	assert.Equal(t, 120, GetConfigInt("JWT_TTL_MINUTES", 0))
}

func TestLoadConfigMissingFileKeepsDefaults(t *testing.T) {
	LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	t.Cleanup(func() { SetConfig(defaultConfig()) })

	assert.Equal(t, "disable", GetConfig("DB_SSLMODE"))
	assert.Equal(t, 10, GetConfigInt("RATE_LIMIT_PER_SECOND", 0))
}

func TestEnvironmentOverridesConfig(t *testing.T) {
	t.Setenv("APP_PORT", "9999")

	assert.Equal(t, "9999", GetConfig("APP_PORT"))
	assert.Equal(t, 9999, GetConfigInt("APP_PORT", 0))
}

func TestUnknownKey(t *testing.T) {
	assert.Empty(t, GetConfig("NOT_A_KEY"))
	assert.Equal(t, 3, GetConfigInt("NOT_A_KEY", 3))
}
