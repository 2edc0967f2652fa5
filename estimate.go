package primes

import "math"

// rosserSchoenfeldC scales x/ln(x) so the estimate stays above the true
// prime count for the bounds the engine meets: 30·ln(113)/113.
var rosserSchoenfeldC = 30 * math.Log(113) / 113

// EstimatePrimeCount returns a closed-form upper estimate of the number of
// primes at most upper. It is used only to pre-size result buffers and
// carries no correctness weight: consumers grow transparently if the true
// count is larger. Callers must special-case upper <= 2.
func EstimatePrimeCount[T Integer](upper T) T {
	x := float64(upper)
	return T(rosserSchoenfeldC * x / math.Log(x))
}

// estimateCapacity clamps EstimatePrimeCount to a usable slice capacity.
func estimateCapacity[T Integer](upper T) int {
	if upper <= 2 {
		return 1
	}
	n := int(rosserSchoenfeldC * float64(upper) / math.Log(float64(upper)))
	if n < 1 {
		n = 1
	}
	return n
}

// chunkCapacity estimates the number of primes in the closed interval
// [lower, upper] by differencing x/ln(x) at the endpoints.
func chunkCapacity[T Integer](lower, upper T) int {
	hi := float64(upper)
	est := hi / math.Log(hi)
	if lo := float64(lower); lo > 2 {
		est -= lo / math.Log(lo)
	}
	n := int(est)
	if n < 16 {
		n = 16
	}
	return n
}
