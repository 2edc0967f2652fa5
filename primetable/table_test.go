package primetable

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Nth(t *testing.T) {
	table := NewTable()

	first, err := table.Nth(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), first)

	p, err := table.Nth(24)
	require.NoError(t, err)
	assert.Equal(t, uint64(97), p)

	p, err = table.Nth(1228)
	require.NoError(t, err)
	assert.Equal(t, uint64(9973), p, "the 1229th prime closes pi(10^4)")
}

func TestTable_NthNegative(t *testing.T) {
	_, err := NewTable().Nth(-1)
	require.Error(t, err)
}

func TestTable_CountBelow(t *testing.T) {
	table := NewTable()

	n, err := table.CountBelow(100)
	require.NoError(t, err)
	assert.Equal(t, 25, n)

	n, err = table.CountBelow(2)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = table.CountBelow(3)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestTable_GrowsPastInitialBound(t *testing.T) {
	table := NewTable()

	n, err := table.CountBelow(1_000_000)
	require.NoError(t, err)
	assert.Equal(t, 78498, n)
}

func TestTable_ConcurrentLookups(t *testing.T) {
	table := NewTable()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := table.Nth(5000)
			assert.NoError(t, err)
			assert.Equal(t, uint64(48619), p)
		}()
	}
	wg.Wait()
}

func TestPackageLevelLookups(t *testing.T) {
	p, err := Nth(3)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), p)

	n, err := CountBelow(30)
	require.NoError(t, err)
	assert.Equal(t, 10, n)
}
