package configwatcher

import (
	"context"
	"fmt"
	"motorkeys_backend/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, path, storageDir string, maxRequests int) {
	t.Helper()
	body := fmt.Sprintf("storage:\n  local_path: %s\nrate_limit:\n  max_requests: %d\n  window_minutes: 1\n", storageDir, maxRequests)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
}

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	writeConfig(t, file, filepath.Join(dir, "public"), 10)

	ctx, cancel := context.WithCancel(context.Background())
	reloaded := make(chan *config.Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, file, func(cfg *config.Config) { reloaded <- cfg })
	}()

	// 等待监听建立
	time.Sleep(100 * time.Millisecond)
	writeConfig(t, file, filepath.Join(dir, "public"), 42)

	select {
	case cfg := <-reloaded:
		assert.Equal(t, 42, cfg.RateLimit.MaxRequests)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatchMissingDir(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "config.yaml"), func(*config.Config) {})
	assert.Error(t, err)
}
