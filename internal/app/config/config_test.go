package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := parse("shortener", nil)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.ServerAddress)
	assert.Equal(t, "shortmyurl.us.kg", cfg.BaseDomain)
	assert.Equal(t, "urls.json", cfg.FileStoragePath)
	assert.Empty(t, cfg.DSN)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestParse_Flags(t *testing.T) {
	cfg, err := parse("shortener", []string{"-a", ":3000", "-b", "sho.rt", "-f", "/tmp/links.json", "-l", "debug"})
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.ServerAddress)
	assert.Equal(t, "sho.rt", cfg.BaseDomain)
	assert.Equal(t, "/tmp/links.json", cfg.FileStoragePath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_EnvOverridesFlags(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("BASE_DOMAIN", "env.example")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := parse("shortener", []string{"-a", ":3000", "-b", "flag.example"})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, "env.example", cfg.BaseDomain)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestParse_BadFlag(t *testing.T) {
	_, err := parse("shortener", []string{"-unknown"})
	assert.Error(t, err)
}

func TestParse_BadEnv(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	_, err := parse("shortener", nil)
	assert.Error(t, err)
}
