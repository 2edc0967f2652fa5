package primes

// LinearSieve returns all primes strictly below upper in ascending order.
// It runs in O(n) time and O(n) space: a table records each integer's
// smallest prime divisor, and every composite is marked exactly once, by
// its smallest prime factor.
func LinearSieve[T Integer](upper T) ([]T, error) {
	if upper <= 2 {
		return nil, nil
	}
	tableLen, err := rangeLen(T(0), upper)
	if err != nil {
		return nil, err
	}

	leastDivisors := make([]T, tableLen)
	out := make([]T, 0, estimateCapacity(upper))

	for i := T(2); i < upper; i++ {
		if leastDivisors[i] == 0 {
			leastDivisors[i] = i
			out = append(out, i)
		}
		for _, p := range out {
			// i*p is marked only while p does not exceed i's smallest
			// divisor; that makes p the smallest prime factor of i*p.
			if p > leastDivisors[i] || p > upper/i {
				break
			}
			leastDivisors[i*p] = p
		}
	}
	return out, nil
}
