// Package config provides application configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mathforge/primes"
)

// Default configuration values.
const (
	DefaultHost     = "0.0.0.0"
	DefaultPort     = 8080
	DefaultLogLevel = "INFO"
	DefaultDBFile   = "primes.db"
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// ParseLogFormat parses a log format string, defaulting to pretty.
func ParseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatPretty
	}
}

// AppConfig holds the main application configuration.
type AppConfig struct {
	host             string
	port             int
	dataDir          string
	dbURL            string
	logLevel         string
	logFormat        LogFormat
	chunkSize        int
	linearSieveLimit int
	workers          int
}

// DefaultDataDir returns the default data directory.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".primes"
	}
	return filepath.Join(home, ".primes")
}

// NewAppConfig creates a new AppConfig with defaults.
func NewAppConfig() AppConfig {
	dataDir := DefaultDataDir()
	return AppConfig{
		host:             DefaultHost,
		port:             DefaultPort,
		dataDir:          dataDir,
		dbURL:            "sqlite:///" + filepath.Join(dataDir, DefaultDBFile),
		logLevel:         DefaultLogLevel,
		logFormat:        LogFormatPretty,
		chunkSize:        primes.DefaultChunkSize,
		linearSieveLimit: primes.DefaultLinearSieveLimit,
	}
}

// Host returns the server host to bind to.
func (c AppConfig) Host() string { return c.host }

// Port returns the server port to listen on.
func (c AppConfig) Port() int { return c.port }

// Addr returns the combined host:port address.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.host, c.port)
}

// DataDir returns the data directory path.
func (c AppConfig) DataDir() string { return c.dataDir }

// DBURL returns the database connection URL.
func (c AppConfig) DBURL() string { return c.dbURL }

// LogLevel returns the log level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// ChunkSize returns the segment width for segmented sieving.
func (c AppConfig) ChunkSize() int { return c.chunkSize }

// LinearSieveLimit returns the bound below which the linear sieve is used.
func (c AppConfig) LinearSieveLimit() int { return c.linearSieveLimit }

// Workers returns the worker cap for parallel sieving, 0 meaning the
// engine default.
func (c AppConfig) Workers() int { return c.workers }

// SieveOptions maps the tuning fields onto engine options.
func (c AppConfig) SieveOptions() []primes.Option {
	opts := []primes.Option{
		primes.WithChunkSize(c.chunkSize),
		primes.WithLinearSieveLimit(c.linearSieveLimit),
	}
	if c.workers > 0 {
		opts = append(opts, primes.WithWorkers(c.workers))
	}
	return opts
}

// EnsureDataDir creates the data directory if it doesn't exist.
func (c AppConfig) EnsureDataDir() error {
	if err := os.MkdirAll(c.dataDir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	return nil
}

// AppConfigOption is a functional option for AppConfig.
type AppConfigOption func(*AppConfig)

// WithHost sets the server host.
func WithHost(host string) AppConfigOption {
	return func(c *AppConfig) { c.host = host }
}

// WithPort sets the server port.
func WithPort(port int) AppConfigOption {
	return func(c *AppConfig) { c.port = port }
}

// WithDataDir sets the data directory.
func WithDataDir(dir string) AppConfigOption {
	return func(c *AppConfig) {
		c.dataDir = dir
		// Keep the default DB URL anchored under the data dir.
		if c.dbURL == "" || strings.Contains(c.dbURL, DefaultDBFile) {
			c.dbURL = "sqlite:///" + filepath.Join(dir, DefaultDBFile)
		}
	}
}

// WithDBURL sets the database URL.
func WithDBURL(url string) AppConfigOption {
	return func(c *AppConfig) { c.dbURL = url }
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithChunkSize sets the segment width; non-positive values are ignored.
func WithChunkSize(n int) AppConfigOption {
	return func(c *AppConfig) {
		if n > 0 {
			c.chunkSize = n
		}
	}
}

// WithLinearSieveLimit sets the linear sieve bound; values of 3 or less
// are ignored.
func WithLinearSieveLimit(n int) AppConfigOption {
	return func(c *AppConfig) {
		if n > 3 {
			c.linearSieveLimit = n
		}
	}
}

// WithWorkers caps parallel sieve workers; non-positive values are ignored.
func WithWorkers(n int) AppConfigOption {
	return func(c *AppConfig) {
		if n > 0 {
			c.workers = n
		}
	}
}

// NewAppConfigWithOptions creates an AppConfig with functional options.
func NewAppConfigWithOptions(opts ...AppConfigOption) AppConfig {
	c := NewAppConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Apply returns a new AppConfig with the given options applied.
func (c AppConfig) Apply(opts ...AppConfigOption) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// LogAttrs returns slog attributes for logging the configuration.
// Postgres credentials are masked.
func (c AppConfig) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("addr", c.Addr()),
		slog.String("data_dir", c.dataDir),
		slog.String("db_url", c.maskedDBURL()),
		slog.String("log_level", c.logLevel),
		slog.Int("chunk_size", c.chunkSize),
		slog.Int("linear_sieve_limit", c.linearSieveLimit),
		slog.Int("workers", c.workers),
	}
}

func (c AppConfig) maskedDBURL() string {
	if strings.HasPrefix(c.dbURL, "sqlite:") {
		return c.dbURL
	}
	return "postgres://***@***"
}
