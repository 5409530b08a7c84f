package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Black-And-White-Club/club-mirror/internal/snowflake"
)

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
nats:
  url: nats://localhost:4222
http:
  address: ":9090"
cache:
  shard_count: 4
  local_user_id: 123456789
  full_caching: true
`), 0o600))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
	assert.Equal(t, ":9090", cfg.HTTP.Address)
	assert.Equal(t, 4, cfg.Cache.ShardCount)
	assert.Equal(t, snowflake.ID(123456789), cfg.Cache.LocalUserID)
	assert.True(t, cfg.Cache.FullCaching)
	// Defaults fill the rest.
	assert.Equal(t, "info", cfg.Observability.LogLevel)
	assert.Equal(t, float64(1), cfg.Cache.VoiceConnectRate)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nats:\n  url: nats://filehost:4222\n"), 0o600))
	t.Setenv("NATS_URL", "nats://envhost:4222")
	t.Setenv("CACHE_SHARD_COUNT", "8")

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "nats://envhost:4222", cfg.NATS.URL)
	assert.Equal(t, 8, cfg.Cache.ShardCount)
}

func TestLoadConfig_MissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("NATS_URL", "nats://envonly:4222")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "nats://envonly:4222", cfg.NATS.URL)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
}

func TestLoadConfig_MissingEverythingFails(t *testing.T) {
	t.Setenv("NATS_URL", "")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}
