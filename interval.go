package primes

// IntervalSieve marks composites within one contiguous chunk of the number
// line using a prime basis. An instance can be re-targeted to successive
// chunks, reusing its scratch mask between calls: the sequential segmented
// sieve walks every chunk with a single instance, while the parallel variant
// gives each chunk task its own.
//
// The basis must contain every prime up to the square root of the largest
// upper bound the instance will see. It is never mutated and may be shared
// across instances.
type IntervalSieve[T Integer] struct {
	basis []T
	mask  []bool
}

// NewIntervalSieve creates an interval sieve over the given prime basis.
func NewIntervalSieve[T Integer](basis []T) *IntervalSieve[T] {
	return &IntervalSieve[T]{basis: basis}
}

// Sieve targets the primitive at the closed interval [lower, upper] and
// appends every prime in it to dst, returning the extended slice. Scratch
// memory from earlier calls is reused; it grows only when a chunk is wider
// than any seen before.
func (s *IntervalSieve[T]) Sieve(lower, upper T, dst []T) ([]T, error) {
	n, err := rangeLen(lower, upper)
	if err != nil {
		return dst, err
	}
	if cap(s.mask) < n {
		s.mask = make([]bool, n)
	}
	s.mask = s.mask[:n]
	for i := range s.mask {
		s.mask[i] = true
	}

	markComposites(s.mask, s.basis, lower, upper)
	clearSubPrimeCells(s.mask, lower, upper)

	for i, isPrime := range s.mask {
		if isPrime {
			dst = append(dst, lower+T(i))
		}
	}
	return dst, nil
}

// markComposites sets mask cells to false for every multiple of every basis
// prime within [lower, upper]; mask[i] corresponds to the value lower+i.
// Marking starts at max(p², the first multiple of p at or above lower), so a
// basis prime never marks itself. Primes above √upper have no composite
// multiple in range and are skipped.
func markComposites[T Integer](mask []bool, basis []T, lower, upper T) {
	limit := isqrt(upper)
	for _, p := range basis {
		if p > limit {
			break
		}
		start := p * p
		if start < lower {
			start = lower
			if rem := lower % p; rem != 0 {
				start += p - rem
			}
			// The rounded-up multiple can wrap past the type's maximum
			// when lower sits within p of it; nothing to mark then.
			if start < lower {
				continue
			}
		}
		for j := start; j <= upper; {
			mask[j-lower] = false
			if j > upper-p {
				break
			}
			j += p
		}
	}
}

// clearSubPrimeCells forces the cells for 0 and 1 to false. Neither value
// is a multiple of any basis prime at or above p², so the marking pass never
// reaches them.
func clearSubPrimeCells[T Integer](mask []bool, lower, upper T) {
	for v := lower; v < 2; v++ {
		if v > upper {
			return
		}
		mask[v-lower] = false
	}
}
