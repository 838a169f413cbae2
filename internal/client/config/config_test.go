package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = args
	t.Cleanup(func() { os.Args = old })
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, 10*time.Second, c.LocationTimeout)
	assert.Equal(t, 4, c.UploadConcurrency)
	assert.False(t, c.LegacySilentFailure)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	withArgs(t, "cmd")
	EnvFile = t.TempDir() + "/missing.env"

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "127.0.0.1:50051", cfg.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "cfg.yaml", `
server_endpoint_addr: "file:1"
database_path: "/from/file.db"
log_level: "info"
`)
	EnvFile = dir + "/missing.env"
	t.Setenv("DIARY_DATABASE_PATH", "/from/env.db")
	t.Setenv("DIARY_LOG_LEVEL", "debug")
	withArgs(t, "cmd", "-c", path, "-log-level", "error")

	cfg := LoadConfig()

	assert.Equal(t, "file:1", cfg.ServerEndpointAddr)
	assert.Equal(t, "/from/env.db", cfg.DatabasePath)
	assert.Equal(t, "error", cfg.LogLevel)
}
