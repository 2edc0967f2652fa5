package primes

import "runtime"

// Engine tuning defaults. Both are empirical platform parameters, not
// domain invariants; retuning them never affects which primes are produced.
const (
	// DefaultLinearSieveLimit is the bound at or below which the linear
	// sieve is used directly, where its O(n) table still beats segmented
	// passes.
	DefaultLinearSieveLimit = 4096

	// DefaultChunkSize is the segment width of the segmented sieves, sized
	// so a chunk's boolean mask stays resident in an L1 data cache.
	DefaultChunkSize = 262144
)

// settings holds the resolved tuning parameters for one top-level call.
type settings struct {
	linearLimit int
	chunkSize   int
	workers     int
}

func newSettings(opts []Option) settings {
	s := settings{
		linearLimit: DefaultLinearSieveLimit,
		chunkSize:   DefaultChunkSize,
		workers:     runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Option adjusts the engine's tuning parameters for a single call. Options
// trade throughput only; the defaults are correct for any input.
type Option func(*settings)

// WithLinearSieveLimit overrides the bound below which the linear sieve is
// chosen over segmentation. Values of 3 or less are ignored.
func WithLinearSieveLimit(limit int) Option {
	return func(s *settings) {
		if limit > 3 {
			s.linearLimit = limit
		}
	}
}

// WithChunkSize overrides the segment width used when decomposing a range
// into chunks. Non-positive values are ignored.
func WithChunkSize(size int) Option {
	return func(s *settings) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// WithWorkers caps the number of chunk tasks run concurrently. Non-positive
// values are ignored. The default is runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.workers = n
		}
	}
}
