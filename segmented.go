package primes

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// chunk is one contiguous closed sub-range of a segmented pass. Chunks are
// disjoint, ordered by ascending lower bound, and together cover the call's
// range exactly.
type chunk[T Integer] struct {
	lower, upper T
}

// splitChunks decomposes the closed interval [lower, upper] into chunks of
// at most size values each.
func splitChunks[T Integer](lower, upper, size T) []chunk[T] {
	chunks := make([]chunk[T], 0, int(uint64(upper-lower)/uint64(size))+1)
	cl := lower
	for {
		cu := upper
		if rem := upper - cl; rem >= size {
			cu = cl + (size - 1)
		}
		chunks = append(chunks, chunk[T]{lower: cl, upper: cu})
		if cu == upper {
			return chunks
		}
		cl = cu + 1
	}
}

// SegmentedSieve returns the primes in the closed interval [lower, upper],
// processing the range in cache-sized chunks. When basis is nil one is
// derived: a single linear pass when √upper sits below the linear-sieve
// limit, otherwise a nested segmented pass fills the tail.
//
// Under the Parallel policy each chunk becomes one task against its own
// interval sieve and a chunk-private buffer; after the join, buffers are
// concatenated in chunk order, which yields the ascending merged sequence
// because chunks are disjoint and internally sorted. A failed task cancels
// the remaining ones and fails the whole call; no partial results are
// returned. Under Sequential, one interval sieve instance is re-targeted
// across all chunks in order.
func SegmentedSieve[T Integer](ctx context.Context, lower, upper T, basis []T, policy Policy, opts ...Option) ([]T, error) {
	return segmentedSieve(ctx, lower, upper, basis, policy, newSettings(opts))
}

func segmentedSieve[T Integer](ctx context.Context, lower, upper T, basis []T, policy Policy, cfg settings) ([]T, error) {
	if _, err := rangeLen(lower, upper); err != nil {
		return nil, err
	}

	if basis == nil {
		var err error
		basis, err = deriveBasis(ctx, upper, policy, cfg)
		if err != nil {
			return nil, err
		}
	}

	chunks := splitChunks(lower, upper, T(cfg.chunkSize))
	if policy == Parallel && len(chunks) > 1 {
		return sieveChunksParallel(ctx, chunks, basis, cfg)
	}
	return sieveChunksSequential(chunks, basis, lower, upper)
}

// deriveBasis builds the prime basis for ranges topping out at upper: every
// prime up to ⌊√upper⌋. Beyond the linear-sieve limit the tail between the
// limit and √upper is produced by a nested segmented pass, which derives its
// own (much smaller) basis the same way.
func deriveBasis[T Integer](ctx context.Context, upper T, policy Policy, cfg settings) ([]T, error) {
	limit := isqrt(upper) + 1
	linearLimit := T(cfg.linearLimit)

	if limit <= linearLimit {
		return LinearSieve(limit)
	}

	basis, err := LinearSieve(linearLimit)
	if err != nil {
		return nil, err
	}
	tail, err := segmentedSieve(ctx, linearLimit, limit, nil, policy, cfg)
	if err != nil {
		return nil, err
	}
	return append(basis, tail...), nil
}

func sieveChunksParallel[T Integer](ctx context.Context, chunks []chunk[T], basis []T, cfg settings) ([]T, error) {
	results := make([][]T, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i, c := range chunks {
		i, c := i, c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			dst := make([]T, 0, chunkCapacity(c.lower, c.upper))
			dst, err := NewIntervalSieve[T](basis).Sieve(c.lower, c.upper, dst)
			if err != nil {
				return fmt.Errorf("sieve chunk [%v, %v]: %w", c.lower, c.upper, err)
			}
			results[i] = dst
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	out := make([]T, 0, total)
	// Placement is by chunk index, never by completion order.
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

func sieveChunksSequential[T Integer](chunks []chunk[T], basis []T, lower, upper T) ([]T, error) {
	out := make([]T, 0, chunkCapacity(lower, upper))
	sieve := NewIntervalSieve[T](basis)
	var err error
	for _, c := range chunks {
		out, err = sieve.Sieve(c.lower, c.upper, out)
		if err != nil {
			return nil, fmt.Errorf("sieve chunk [%v, %v]: %w", c.lower, c.upper, err)
		}
	}
	return out, nil
}
