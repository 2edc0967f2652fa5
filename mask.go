package primes

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minParallelMask is the smallest mask length worth splitting across
// workers; below it the marking pass runs on the calling goroutine.
const minParallelMask = 1 << 14

// MaskSieve returns the primes in the closed interval [lower, upper] using a
// classical segmented Sieve of Eratosthenes over a single boolean mask. When
// basis is nil, one is built with the linear sieve up to ⌊√upper⌋+1.
//
// Composite marking is split across workers by contiguous mask sub-ranges:
// every worker owns a disjoint slab of the mask and marks all basis primes
// into it, so no two goroutines ever write the same cell and the output is
// identical regardless of scheduling.
func MaskSieve[T Integer](ctx context.Context, lower, upper T, basis []T) ([]T, error) {
	n, err := rangeLen(lower, upper)
	if err != nil {
		return nil, err
	}

	if basis == nil {
		basis, err = LinearSieve(isqrt(upper) + 1)
		if err != nil {
			return nil, err
		}
	}

	mask := make([]bool, n)
	for i := range mask {
		mask[i] = true
	}

	workers := runtime.GOMAXPROCS(0)
	if workers < 2 || n < minParallelMask {
		markComposites(mask, basis, lower, upper)
	} else if err := markParallel(ctx, mask, basis, lower, workers); err != nil {
		return nil, err
	}

	// 1 is not prime; its cell survives marking when lower reaches it.
	clearSubPrimeCells(mask, lower, upper)

	out := make([]T, 0, chunkCapacity(lower, upper))
	for i, isPrime := range mask {
		if isPrime {
			out = append(out, lower+T(i))
		}
	}
	return out, nil
}

// markParallel partitions the mask into one contiguous slab per worker and
// marks composites in each slab concurrently.
func markParallel[T Integer](ctx context.Context, mask []bool, basis []T, lower T, workers int) error {
	n := len(mask)
	slab := (n + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < n; start += slab {
		end := min(start+slab, n)
		sub := mask[start:end]
		subLower := lower + T(start)
		subUpper := lower + T(end-1)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("mark composites [%v, %v]: %w", subLower, subUpper, err)
			}
			markComposites(sub, basis, subLower, subUpper)
			return nil
		})
	}
	return g.Wait()
}
