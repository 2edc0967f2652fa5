package benchmark

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mathforge/primes/internal/database"
)

// Store persists benchmark results.
type Store struct {
	db database.Database
}

// NewStore creates a Store and migrates the results table.
func NewStore(db database.Database) (Store, error) {
	if err := db.GORM().AutoMigrate(&Result{}); err != nil {
		return Store{}, fmt.Errorf("migrate benchmark results: %w", err)
	}
	return Store{db: db}, nil
}

// Save persists a batch of results in one transaction.
func (s Store) Save(ctx context.Context, results []Result) error {
	if len(results) == 0 {
		return nil
	}
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		return tx.Create(&results).Error
	})
	if err != nil {
		return fmt.Errorf("save benchmark results: %w", err)
	}
	return nil
}

// ForStrategy returns every stored result for one strategy, oldest first.
func (s Store) ForStrategy(ctx context.Context, strategy Strategy) ([]Result, error) {
	var results []Result
	err := s.db.Session(ctx).
		Where("strategy = ?", string(strategy)).
		Order("created_at ASC").
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("load benchmark results: %w", err)
	}
	return results, nil
}

// ForSuite returns every stored result for one suite name, oldest first.
func (s Store) ForSuite(ctx context.Context, name string) ([]Result, error) {
	var results []Result
	err := s.db.Session(ctx).
		Where("suite = ?", name).
		Order("created_at ASC").
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("load benchmark results: %w", err)
	}
	return results, nil
}
