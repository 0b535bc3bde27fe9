package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "local", cfg.Storage.Type)
	assert.Equal(t, int64(5<<20), cfg.UGC.MaxImageBytes)
	assert.Equal(t, 10, cfg.Redis.RecentLimit)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	yaml := `
server:
  port: "9090"
  mode: release
database:
  driver: mysql
  host: db
  port: 3306
ugc:
  max_image_bytes: 1024
cors:
  allowed_origins: ["http://localhost:5173"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("MOTORKEYS_TTS_DELAY_MS", "50")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, int64(1024), cfg.UGC.MaxImageBytes)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "cache", cfg.Redis.Host)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 50, cfg.TTS.DelayMs)
}

func TestValidate(t *testing.T) {
	cfg := Config{
		Database:  DatabaseConfig{Driver: "postgres"},
		Storage:   StorageConfig{Type: "local"},
		UGC:       UGCConfig{MaxImageBytes: 1},
		RateLimit: RateLimitConfig{MaxRequests: 1, WindowMinutes: 1},
	}
	assert.Error(t, cfg.Validate())

	cfg.Database.Driver = "sqlite"
	assert.NoError(t, cfg.Validate())

	cfg.Storage.Type = "s3"
	assert.Error(t, cfg.Validate())
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
