package database

import (
	"context"

	"gorm.io/gorm"
)

// WithTransaction runs fn inside a database transaction bound to ctx,
// committing on nil return and rolling back otherwise.
func WithTransaction(ctx context.Context, db Database, fn func(tx *gorm.DB) error) error {
	return db.Session(ctx).Transaction(fn)
}
