package primes

import "errors"

// Sentinel errors returned by the sieve entry points. Chunk task failures
// surface as wrapped errors from the join point; use errors.Is to classify.
var (
	// ErrInvalidRange indicates bounds with upper below lower.
	ErrInvalidRange = errors.New("primes: upper bound below lower bound")

	// ErrOverflow indicates that chunk or index arithmetic left the
	// addressable range of the machine.
	ErrOverflow = errors.New("primes: range arithmetic overflow")
)
