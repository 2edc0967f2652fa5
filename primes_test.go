package primes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trialDivisionPrimes returns every prime in [2, upper] by trial division.
// It is deliberately independent of the sieve implementations.
func trialDivisionPrimes(upper uint64) []uint64 {
	var out []uint64
	for n := uint64(2); n <= upper; n++ {
		isPrime := true
		for d := uint64(2); d*d <= n; d++ {
			if n%d == 0 {
				isPrime = false
				break
			}
		}
		if isPrime {
			out = append(out, n)
		}
	}
	return out
}

func filterAtLeast(seq []uint64, lower uint64) []uint64 {
	var out []uint64
	for _, v := range seq {
		if v >= lower {
			out = append(out, v)
		}
	}
	return out
}

func TestPrimeSieve_ConcreteScenario(t *testing.T) {
	got, err := PrimeSieve(context.Background(), uint64(30), Sequential)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, got)
}

func TestPrimeSieve_TrivialBound(t *testing.T) {
	got, err := PrimeSieve(context.Background(), uint64(2), Sequential)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = PrimeSieve(context.Background(), uint64(2), Parallel)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPrimeSieve_InclusiveUpperBound(t *testing.T) {
	got, err := PrimeSieve(context.Background(), uint64(7), Sequential)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 3, 5, 7}, got)
}

func TestPrimeSieve_MatchesTrialDivision(t *testing.T) {
	const upper = 1_000_000
	want := trialDivisionPrimes(upper)

	for _, policy := range []Policy{Sequential, Parallel} {
		got, err := PrimeSieve(context.Background(), uint64(upper), policy)
		require.NoError(t, err)
		require.Len(t, got, 78498, "pi(10^6)")
		assert.Equal(t, want, got, "policy %v", policy)
	}
}

func TestPrimeSieve_SmallBoundsMatchTrialDivision(t *testing.T) {
	for upper := uint64(3); upper <= 300; upper++ {
		want := trialDivisionPrimes(upper)
		got, err := PrimeSieve(context.Background(), upper, Sequential)
		require.NoError(t, err)
		require.Equal(t, want, append([]uint64(nil), got...), "upper %d", upper)
	}
}

func TestPrimeSieve_Deterministic(t *testing.T) {
	const upper = 500_000
	first, err := PrimeSieve(context.Background(), uint64(upper), Parallel)
	require.NoError(t, err)

	for run := 0; run < 5; run++ {
		again, err := PrimeSieve(context.Background(), uint64(upper), Parallel)
		require.NoError(t, err)
		require.Equal(t, first, again, "run %d", run)
	}

	seq, err := PrimeSieve(context.Background(), uint64(upper), Sequential)
	require.NoError(t, err)
	assert.Equal(t, first, seq)
}

func TestPrimeSieve_ChunkBoundaryAlignment(t *testing.T) {
	// 65537 is prime and sits one past an exact multiple of the chunk size;
	// 65536 is an exact multiple. Neither alignment may drop or duplicate a
	// boundary value.
	oracle := trialDivisionPrimes(70000)

	for _, upper := range []uint64{65536, 65537, 65539} {
		for _, policy := range []Policy{Sequential, Parallel} {
			got, err := PrimeSieve(context.Background(), upper, policy, WithChunkSize(4096))
			require.NoError(t, err)
			assert.Equal(t, filterBelowOrEqual(oracle, upper), got, "upper %d policy %v", upper, policy)
		}
	}
}

func filterBelowOrEqual(seq []uint64, upper uint64) []uint64 {
	var out []uint64
	for _, v := range seq {
		if v <= upper {
			out = append(out, v)
		}
	}
	return out
}

func TestPrimeSieve_StrictlyAscending(t *testing.T) {
	got, err := PrimeSieve(context.Background(), uint64(200_000), Parallel, WithChunkSize(10_000))
	require.NoError(t, err)
	require.NotEmpty(t, got)
	for i := 1; i < len(got); i++ {
		require.Greater(t, got[i], got[i-1], "index %d", i)
	}
}

func TestPrimeSieve_Int32Domain(t *testing.T) {
	got, err := PrimeSieve(context.Background(), int32(100), Sequential)
	require.NoError(t, err)
	assert.Equal(t, []int32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97}, got)
}

func TestPrimeRange_ConcreteScenario(t *testing.T) {
	got, err := PrimeRange(context.Background(), uint64(10), uint64(30), Sequential)
	require.NoError(t, err)
	assert.Equal(t, []uint64{11, 13, 17, 19, 23, 29}, got)
}

func TestPrimeRange_Boundaries(t *testing.T) {
	ctx := context.Background()

	got, err := PrimeRange(ctx, uint64(1), uint64(1), Sequential)
	require.NoError(t, err)
	assert.Empty(t, got, "1 is not prime")

	got, err = PrimeRange(ctx, uint64(2), uint64(2), Sequential)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2}, got)

	_, err = PrimeRange(ctx, uint64(10), uint64(5), Sequential)
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestPrimeRange_EqualsFilteredSieve(t *testing.T) {
	ctx := context.Background()
	cases := []struct{ lower, upper uint64 }{
		{2, 100},
		{3, 5000},
		{4000, 4100},
		{9000, 20000},
		{99991, 100003},
	}

	for _, tc := range cases {
		all, err := PrimeSieve(ctx, tc.upper, Sequential)
		require.NoError(t, err)
		want := filterAtLeast(all, tc.lower)

		for _, policy := range []Policy{Sequential, Parallel} {
			got, err := PrimeRange(ctx, tc.lower, tc.upper, policy)
			require.NoError(t, err)
			assert.Equal(t, want, append([]uint64(nil), got...), "range [%d, %d] policy %v", tc.lower, tc.upper, policy)
		}
	}
}

func TestPrimeRange_HighWindow(t *testing.T) {
	// The window sits far above the basis bound and is sieved directly.
	want := filterAtLeast(trialDivisionPrimes(1_000_000), 999_000)

	for _, policy := range []Policy{Sequential, Parallel} {
		got, err := PrimeRange(context.Background(), uint64(999_000), uint64(1_000_000), policy)
		require.NoError(t, err)
		assert.Equal(t, want, append([]uint64(nil), got...), "policy %v", policy)
	}
}

func TestPolicy_String(t *testing.T) {
	assert.Equal(t, "sequential", Sequential.String())
	assert.Equal(t, "parallel", Parallel.String())
}
