package primes

import "math"

// Integer constrains the element type of the sieves to fixed-width machine
// integers. The engine is generic over this constraint; arbitrary-precision
// arithmetic is out of scope.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// isqrt returns the integer square root of n: the largest r with r*r <= n.
// Comparisons go through division so that no intermediate product can
// overflow the instantiated type.
func isqrt[T Integer](n T) T {
	if n < 2 {
		return n
	}
	r := T(math.Sqrt(float64(n)))
	for r > 0 && r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}
	return r
}

// rangeLen returns the number of values in the closed interval
// [lower, upper] as a machine int. ErrOverflow is returned when the span is
// not addressable as a slice length.
func rangeLen[T Integer](lower, upper T) (int, error) {
	if upper < lower {
		return 0, ErrInvalidRange
	}
	span := uint64(upper - lower)
	if span >= math.MaxInt {
		return 0, ErrOverflow
	}
	return int(span) + 1, nil
}
