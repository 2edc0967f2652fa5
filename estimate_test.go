package primes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimatePrimeCount_UpperBound(t *testing.T) {
	// The estimate is a pre-allocation hint; it must not undercount for the
	// bounds the engine meets.
	counts := map[uint64]int{
		10:        4,
		100:       25,
		1000:      168,
		10_000:    1229,
		100_000:   9592,
		1_000_000: 78498,
	}

	for upper, pi := range counts {
		got := EstimatePrimeCount(upper)
		require.GreaterOrEqual(t, int(got), pi, "upper %d", upper)
	}
}

func TestEstimatePrimeCount_GenericResult(t *testing.T) {
	assert.IsType(t, int32(0), EstimatePrimeCount(int32(1000)))
	assert.IsType(t, uint64(0), EstimatePrimeCount(uint64(1000)))
}

func TestChunkCapacity_Floor(t *testing.T) {
	assert.GreaterOrEqual(t, chunkCapacity(uint64(1000), uint64(1001)), 16)
}
