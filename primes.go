// Package primes computes the set of primes in bounded intervals, selecting
// among sieving strategies by interval size and caller execution preference.
//
// Small bounds go straight to an O(n) linear sieve. Larger ranges are
// decomposed into cache-sized chunks sieved against a shared prime basis,
// either by one reusable interval sieve (Sequential) or by one task per
// chunk joined and concatenated in range order (Parallel). Output is always
// strictly ascending with no duplicates, and identical across policies.
//
// Basic usage:
//
//	all, err := primes.PrimeSieve(ctx, uint64(10_000_000), primes.Parallel)
//	window, err := primes.PrimeRange(ctx, uint64(10), uint64(30), primes.Sequential)
package primes

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Policy selects how a top-level sieve call schedules its work.
type Policy int

const (
	// Sequential runs every phase on the calling goroutine.
	Sequential Policy = iota

	// Parallel runs basis construction concurrently with range sieving and
	// fans chunk tasks out across workers.
	Parallel
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Parallel:
		return "parallel"
	default:
		return "sequential"
	}
}

// PrimeSieve returns every prime in [2, upper] in ascending order. An upper
// bound of 2 is the trivial case and yields an empty result.
func PrimeSieve[T Integer](ctx context.Context, upper T, policy Policy, opts ...Option) ([]T, error) {
	if upper <= 2 {
		return nil, nil
	}
	return primeSieve(ctx, upper, policy, newSettings(opts))
}

// PrimeRange returns every prime in [lower, upper] in ascending order.
// Bounds are inclusive: PrimeRange(2, 2) is [2], PrimeRange(1, 1) is empty.
func PrimeRange[T Integer](ctx context.Context, lower, upper T, policy Policy, opts ...Option) ([]T, error) {
	if upper < lower {
		return nil, fmt.Errorf("prime range [%v, %v]: %w", lower, upper, ErrInvalidRange)
	}
	if upper < 2 {
		return nil, nil
	}
	if lower < 2 {
		lower = 2
	}
	if upper == 2 {
		return []T{2}, nil
	}

	cfg := newSettings(opts)
	var out []T
	var err error
	if limit := isqrt(upper) + 1; lower > limit && lower > T(cfg.linearLimit) {
		// The window sits wholly above the basis bound; sieve it directly
		// instead of computing everything from 2.
		out, err = segmentedSieve(ctx, lower, upper, nil, policy, cfg)
	} else {
		out, err = primeSieve(ctx, upper, policy, cfg)
	}
	if err != nil {
		return nil, err
	}
	return trimBelow(out, lower), nil
}

// primeSieve dispatches the strategy for [2, upper], upper > 2.
func primeSieve[T Integer](ctx context.Context, upper T, policy Policy, cfg settings) ([]T, error) {
	linearLimit := T(cfg.linearLimit)

	if upper <= linearLimit {
		if upper+1 < upper {
			return nil, ErrOverflow
		}
		return LinearSieve(upper + 1)
	}

	if policy == Parallel {
		return dualPhaseSieve(ctx, upper, cfg)
	}

	limit := isqrt(upper) + 1
	if limit <= linearLimit {
		out, err := LinearSieve(limit)
		if err != nil {
			return nil, err
		}
		return sequentialTail(ctx, limit, upper, out, cfg)
	}

	out, err := LinearSieve(linearLimit)
	if err != nil {
		return nil, err
	}
	mid, err := segmentedSieve(ctx, linearLimit, limit, nil, Sequential, cfg)
	if err != nil {
		return nil, err
	}
	out = append(out, mid...)
	return sequentialTail(ctx, limit+1, upper, out, cfg)
}

// sequentialTail extends out, which holds every prime below lower, with the
// primes in [lower, upper], reusing out as the sieving basis.
func sequentialTail[T Integer](ctx context.Context, lower, upper T, out []T, cfg settings) ([]T, error) {
	tail, err := segmentedSieve(ctx, lower, upper, out, Sequential, cfg)
	if err != nil {
		return nil, err
	}
	return append(out, tail...), nil
}

// dualPhaseSieve runs the two top-level phases of the parallel strategy
// concurrently: a linear pass producing the small primes and a parallel
// segmented pass over the large remainder. Every small prime is strictly
// below the segmented range, so concatenation preserves order.
func dualPhaseSieve[T Integer](ctx context.Context, upper T, cfg settings) ([]T, error) {
	split := T(cfg.linearLimit) * 2
	if split <= T(cfg.linearLimit) {
		return nil, ErrOverflow
	}
	if upper <= split {
		// Too little range above the split to amortize a second phase.
		return LinearSieve(upper + 1)
	}

	var small, large []T
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		small, err = LinearSieve(split)
		return err
	})
	g.Go(func() error {
		var err error
		large, err = segmentedSieve(gctx, split, upper, nil, Parallel, cfg)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return append(small, large...), nil
}

// trimBelow drops leading values below lower. Basis construction may
// legitimately compute a little below the requested lower bound; the result
// is sorted ascending, so a front scan suffices. No trailing trim exists:
// every internal upper bound is exact.
func trimBelow[T Integer](seq []T, lower T) []T {
	i := 0
	for i < len(seq) && seq[i] < lower {
		i++
	}
	return seq[i:]
}
