package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mathforge/primes"
)

func TestNewAppConfigDefaults(t *testing.T) {
	cfg := NewAppConfig()

	assert.Equal(t, DefaultHost, cfg.Host())
	assert.Equal(t, DefaultPort, cfg.Port())
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel())
	assert.Equal(t, LogFormatPretty, cfg.LogFormat())
	assert.Equal(t, primes.DefaultChunkSize, cfg.ChunkSize())
	assert.Equal(t, primes.DefaultLinearSieveLimit, cfg.LinearSieveLimit())
	assert.Equal(t, 0, cfg.Workers())
	assert.Contains(t, cfg.DBURL(), "sqlite:///")
}

func TestAppConfigOptions(t *testing.T) {
	cfg := NewAppConfigWithOptions(
		WithHost("127.0.0.1"),
		WithPort(9090),
		WithLogLevel("DEBUG"),
		WithLogFormat(LogFormatJSON),
		WithChunkSize(4096),
		WithLinearSieveLimit(1024),
		WithWorkers(2),
	)

	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
	assert.Equal(t, "DEBUG", cfg.LogLevel())
	assert.Equal(t, LogFormatJSON, cfg.LogFormat())
	assert.Equal(t, 4096, cfg.ChunkSize())
	assert.Equal(t, 1024, cfg.LinearSieveLimit())
	assert.Equal(t, 2, cfg.Workers())
}

func TestAppConfigOptionsIgnoreInvalid(t *testing.T) {
	cfg := NewAppConfigWithOptions(
		WithChunkSize(0),
		WithLinearSieveLimit(2),
		WithWorkers(-1),
	)

	assert.Equal(t, primes.DefaultChunkSize, cfg.ChunkSize())
	assert.Equal(t, primes.DefaultLinearSieveLimit, cfg.LinearSieveLimit())
	assert.Equal(t, 0, cfg.Workers())
}

func TestWithDataDirMovesDefaultDBURL(t *testing.T) {
	cfg := NewAppConfigWithOptions(WithDataDir("/var/lib/primes"))
	assert.Equal(t, "sqlite:///"+filepath.Join("/var/lib/primes", DefaultDBFile), cfg.DBURL())

	// An explicit DB URL is not rewritten by a later data dir change.
	cfg = NewAppConfigWithOptions(
		WithDBURL("postgres://user:pass@db:5432/primes"),
		WithDataDir("/tmp/elsewhere"),
	)
	assert.Equal(t, "postgres://user:pass@db:5432/primes", cfg.DBURL())
}

func TestSieveOptionsCount(t *testing.T) {
	assert.Len(t, NewAppConfig().SieveOptions(), 2)
	assert.Len(t, NewAppConfigWithOptions(WithWorkers(4)).SieveOptions(), 3)
}

func TestParseLogFormat(t *testing.T) {
	assert.Equal(t, LogFormatJSON, ParseLogFormat("json"))
	assert.Equal(t, LogFormatJSON, ParseLogFormat("JSON"))
	assert.Equal(t, LogFormatPretty, ParseLogFormat("pretty"))
	assert.Equal(t, LogFormatPretty, ParseLogFormat("anything"))
}

func TestMaskedDBURL(t *testing.T) {
	cfg := NewAppConfigWithOptions(WithDBURL("postgres://user:secret@db/primes"))
	for _, attr := range cfg.LogAttrs() {
		if attr.Key == "db_url" {
			assert.Equal(t, "postgres://***@***", attr.Value.String())
			return
		}
	}
	t.Fatal("db_url attribute not found")
}
