// Package numeric provides generic numeric-domain utilities: the Euclidean
// greatest common divisor over machine integers and polynomial GCD over
// integer polynomials.
package numeric

// Integer constrains the scalar Euclidean domains the GCD operates on.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// GCD returns the greatest common divisor of a and b by Euclid's algorithm:
// repeated modulo until the smaller operand reaches zero. The result is
// non-negative; GCD(0, 0) is 0.
func GCD[T Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return absVal(a)
}

// GCDRange folds GCD over values, returning 0 for an empty slice. The fold
// stops early once the running divisor collapses to 1.
func GCDRange[T Integer](values []T) T {
	var g T
	for _, v := range values {
		g = GCD(g, v)
		if g == 1 {
			break
		}
	}
	return g
}

func absVal[T Integer](a T) T {
	if a < 0 {
		return -a
	}
	return a
}
