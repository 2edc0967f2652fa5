// Package primetable provides table-based prime lookup: the nth prime and
// prime counts, served from a cached ascending prime list that is extended
// on demand by the linear sieve.
package primetable

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mathforge/primes"
)

// initialBound is the first sieve bound materialised by an empty table.
const initialBound = 1 << 16

// Table caches an ascending list of primes and answers indexed lookups.
// It is safe for concurrent use; the cache only ever grows.
type Table struct {
	mu     sync.RWMutex
	primes []uint64
	bound  uint64 // every prime below bound is cached
}

// NewTable returns an empty table. The first lookup pays for the initial
// sieve pass.
func NewTable() *Table {
	return &Table{}
}

// Nth returns the nth prime, zero-based: Nth(0) is 2, Nth(24) is 97.
func (t *Table) Nth(n int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("primetable: negative prime index %d", n)
	}

	t.mu.RLock()
	if n < len(t.primes) {
		p := t.primes[n]
		t.mu.RUnlock()
		return p, nil
	}
	t.mu.RUnlock()

	if err := t.growToCount(n + 1); err != nil {
		return 0, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.primes[n], nil
}

// CountBelow returns the number of primes strictly below x.
func (t *Table) CountBelow(x uint64) (int, error) {
	if err := t.growToBound(x); err != nil {
		return 0, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	return sort.Search(len(t.primes), func(i int) bool {
		return t.primes[i] >= x
	}), nil
}

// growToCount extends the cache until it holds at least count primes,
// doubling the sieve bound each pass.
func (t *Table) growToCount(count int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for len(t.primes) < count {
		if err := t.extendLocked(); err != nil {
			return err
		}
	}
	return nil
}

// growToBound extends the cache until every prime below x is present.
func (t *Table) growToBound(x uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for t.bound <= x {
		if err := t.extendLocked(); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) extendLocked() error {
	next := uint64(initialBound)
	if t.bound > 0 {
		next = t.bound * 2
		if next <= t.bound {
			return fmt.Errorf("primetable: extend past %d: %w", t.bound, primes.ErrOverflow)
		}
	}

	sieved, err := primes.LinearSieve(next)
	if err != nil {
		return fmt.Errorf("primetable: extend to %d: %w", next, err)
	}
	t.primes = sieved
	t.bound = next
	return nil
}

var shared = NewTable()

// Nth returns the nth prime from a shared package-level table.
func Nth(n int) (uint64, error) {
	return shared.Nth(n)
}

// CountBelow returns the number of primes below x from a shared
// package-level table.
func CountBelow(x uint64) (int, error) {
	return shared.CountBelow(x)
}
