package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnvVars unsets every variable this package reads so tests see a
// clean environment.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HOST", "PORT", "DATA_DIR", "DB_URL", "LOG_LEVEL", "LOG_FORMAT",
		"CHUNK_SIZE", "LINEAR_SIEVE_LIMIT", "WORKERS",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultHost, cfg.Host)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, "", cfg.DataDir)
	assert.Equal(t, "", cfg.DBURL)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, "pretty", cfg.LogFormat)
	assert.Equal(t, 0, cfg.ChunkSize)
	assert.Equal(t, 0, cfg.LinearSieveLimit)
	assert.Equal(t, 0, cfg.Workers)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9191")
	t.Setenv("DB_URL", "postgres://u:p@db/primes")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("CHUNK_SIZE", "65536")
	t.Setenv("WORKERS", "8")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 9191, cfg.Port)
	assert.Equal(t, "postgres://u:p@db/primes", cfg.DBURL)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 65536, cfg.ChunkSize)
	assert.Equal(t, 8, cfg.Workers)
}

func TestLoadFromEnv_InvalidPort(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("PORT", "not-a-number")

	_, err := LoadFromEnv()
	assert.Error(t, err)
}

func TestLoadFromEnvWithPrefix(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("PRIMES_PORT", "7070")

	cfg, err := LoadFromEnvWithPrefix("PRIMES")
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
}

func TestToAppConfig(t *testing.T) {
	env := EnvConfig{
		Host:      "10.0.0.1",
		Port:      8888,
		DBURL:     "sqlite:///tmp/p.db",
		LogLevel:  "DEBUG",
		LogFormat: "json",
		ChunkSize: 2048,
		Workers:   3,
	}
	cfg := env.ToAppConfig()

	assert.Equal(t, "10.0.0.1:8888", cfg.Addr())
	assert.Equal(t, "sqlite:///tmp/p.db", cfg.DBURL())
	assert.Equal(t, "DEBUG", cfg.LogLevel())
	assert.Equal(t, LogFormatJSON, cfg.LogFormat())
	assert.Equal(t, 2048, cfg.ChunkSize())
	assert.Equal(t, 3, cfg.Workers())
}

func TestLoadConfig_DotEnv(t *testing.T) {
	clearEnvVars(t)

	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("PORT=6060\nLOG_FORMAT=json\n"), 0o644))

	cfg, err := LoadConfig(envPath)
	require.NoError(t, err)
	assert.Equal(t, 6060, cfg.Port())
	assert.Equal(t, LogFormatJSON, cfg.LogFormat())
}

func TestLoadConfig_EnvWinsOverDotEnv(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("PORT", "5050")

	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("PORT=6060\n"), 0o644))

	cfg, err := LoadConfig(envPath)
	require.NoError(t, err)
	assert.Equal(t, 5050, cfg.Port())
}

func TestLoadConfig_MissingDotEnv(t *testing.T) {
	clearEnvVars(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port())
}
