package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Empty(t, cfg.VFS.Path)
	assert.False(t, cfg.VFS.Strict)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
	assert.Equal(t, 100, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 200, cfg.RateLimit.Burst)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoadWithEnvironment(t *testing.T) {
	t.Setenv("VFS_PATH", "/data/tree.xml")
	t.Setenv("VFS_STRICT", "true")
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT_RPS", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/tree.xml", cfg.VFS.Path)
	assert.True(t, cfg.VFS.Strict)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 10, cfg.RateLimit.RequestsPerSecond)
}

func TestApplyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vfsemu.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[vfs]
path = "/data/tree.yaml"
strict = true

[server]
port = "7000"

[logging]
level = "warn"
`), 0o644))

	cfg := Default()
	require.NoError(t, cfg.ApplyFile(path))

	// File values win, untouched sections keep their defaults.
	assert.Equal(t, "/data/tree.yaml", cfg.VFS.Path)
	assert.True(t, cfg.VFS.Strict)
	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 100, cfg.RateLimit.RequestsPerSecond)
}

func TestApplyFileMissing(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.ApplyFile(filepath.Join(t.TempDir(), "nope.toml")))
}

func TestApplyFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[vfs\npath="), 0o644))

	cfg := Default()
	assert.Error(t, cfg.ApplyFile(path))
}
