// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armaan-choudhary/zola/config"
	"github.com/armaan-choudhary/zola/constellation"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zola.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10, cfg.Constellation.StarsPerPage)
	assert.Equal(t, constellation.ClassicPolicy(), cfg.Policy())
}

func TestLoad_NoPath(t *testing.T) {
	t.Setenv(config.EnvPath, "")
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, `
server:
  addr: 127.0.0.1:9000
redis:
  addr: localhost:6379
constellation:
  max_degree: 3
  hub_allowance: true
  jitter: true
log:
  level: debug
  format: json
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, "zola.db", cfg.Store.Path, "unset keys keep defaults")
	assert.Equal(t, "zola:sky", cfg.Redis.ChannelPrefix)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, constellation.WideHubPolicy(), cfg.Policy())
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Env(t *testing.T) {
	path := writeFile(t, "store:\n  path: /tmp/other.db\n")
	t.Setenv(config.EnvPath, path)
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.db", cfg.Store.Path)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "server: [oops"))
	assert.Error(t, err)

	for _, body := range []string{
		"constellation:\n  max_degree: -1\n",
		"constellation:\n  stars_per_page: 0\n",
		"log:\n  level: loud\n",
		"log:\n  format: xml\n",
		"server:\n  addr: \"\"\n",
		"constellation:\n  reveal_at: new year\n",
	} {
		_, err := config.Load(writeFile(t, body))
		assert.ErrorIs(t, err, config.ErrInvalidConfig, body)
	}
}

func TestLoad_RevealAt(t *testing.T) {
	cfg, err := config.Load(writeFile(t, "constellation:\n  reveal_at: \"2026-01-01T00:00:00+05:30\"\n"))
	require.NoError(t, err)

	at, err := cfg.RevealTime()
	require.NoError(t, err)
	assert.True(t, at.Equal(time.Date(2025, 12, 31, 18, 30, 0, 0, time.UTC)))

	at, err = config.Default().RevealTime()
	require.NoError(t, err)
	assert.True(t, at.IsZero())
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "etc", "zola.yaml")
	require.NoError(t, config.WriteDefault(path))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	assert.ErrorIs(t, config.WriteDefault(path), os.ErrExist)
}
