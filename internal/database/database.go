// Package database wraps GORM with URL-based driver selection and an slog
// bridge for query logging. SQLite and PostgreSQL are supported; the sieve
// benchmark store persists its results through this package.
package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	driverSQLite   = "sqlite"
	driverPostgres = "postgres"
)

// Database is a thin handle over a GORM connection that remembers which
// driver backs it.
type Database struct {
	db     *gorm.DB
	driver string
}

// NewDatabase opens a connection described by a database URL. Supported
// forms are "sqlite:///path/to/file.db" and "postgres://..." (or
// "postgresql://...").
func NewDatabase(ctx context.Context, url string) (Database, error) {
	dialector, err := parseDialector(url)
	if err != nil {
		return Database{}, fmt.Errorf("parse database url: %w", err)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: slogGormLogger{},
	})
	if err != nil {
		return Database{}, fmt.Errorf("open database: %w", err)
	}

	d := Database{db: db, driver: driverName(url)}

	sqlDB, err := db.DB()
	if err != nil {
		return Database{}, fmt.Errorf("access connection pool: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return Database{}, fmt.Errorf("ping database: %w", err)
	}

	return d, nil
}

// parseDialector maps a database URL onto a GORM dialector.
func parseDialector(url string) (gorm.Dialector, error) {
	switch driverName(url) {
	case driverSQLite:
		return sqlite.Open(strings.TrimPrefix(url, "sqlite:///")), nil
	case driverPostgres:
		return postgres.Open(url), nil
	default:
		return nil, errors.New("unsupported database driver")
	}
}

func driverName(url string) string {
	switch {
	case strings.HasPrefix(url, "sqlite://"):
		return driverSQLite
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return driverPostgres
	default:
		return ""
	}
}

// Session returns a fresh GORM session bound to ctx.
func (d Database) Session(ctx context.Context) *gorm.DB {
	return d.db.Session(&gorm.Session{Context: ctx})
}

// GORM exposes the underlying *gorm.DB for migrations and raw queries.
func (d Database) GORM() *gorm.DB {
	return d.db
}

// IsSQLite reports whether the connection uses the SQLite driver.
func (d Database) IsSQLite() bool {
	return d.driver == driverSQLite
}

// IsPostgres reports whether the connection uses the PostgreSQL driver.
func (d Database) IsPostgres() bool {
	return d.driver == driverPostgres
}

// ConfigurePool adjusts the connection pool limits.
func (d Database) ConfigurePool(maxOpen, maxIdle int, maxLifetime time.Duration) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(maxLifetime)
	return nil
}

// Close releases the underlying connection pool.
func (d Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("access connection pool: %w", err)
	}
	return sqlDB.Close()
}
