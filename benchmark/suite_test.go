package benchmark

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSuiteValidates(t *testing.T) {
	require.NoError(t, DefaultSuite().Validate())
}

func TestSuiteBounds(t *testing.T) {
	suite := Suite{UpperStart: 1000, UpperLimit: 1_000_000, Multiplier: 10}
	assert.Equal(t, []uint64{1000, 10_000, 100_000, 1_000_000}, suite.Bounds())

	single := Suite{UpperStart: 500, UpperLimit: 999, Multiplier: 10}
	assert.Equal(t, []uint64{500}, single.Bounds())
}

func TestSuiteValidate(t *testing.T) {
	base := DefaultSuite()

	tests := []struct {
		name   string
		mutate func(*Suite)
	}{
		{"tiny start", func(s *Suite) { s.UpperStart = 2 }},
		{"limit below start", func(s *Suite) { s.UpperLimit = s.UpperStart - 1 }},
		{"multiplier one", func(s *Suite) { s.Multiplier = 1 }},
		{"no repetitions", func(s *Suite) { s.Repetitions = 0 }},
		{"no strategies", func(s *Suite) { s.Strategies = nil }},
		{"unknown strategy", func(s *Suite) { s.Strategies = []Strategy{"quantum"} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			suite := base
			tc.mutate(&suite)
			assert.Error(t, suite.Validate())
		})
	}
}

func TestLoadSuite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	doc := `name: crossover
upper_start: 4096
upper_limit: 65536
multiplier: 4
repetitions: 2
strategies:
  - linear
  - segmented
chunk_size: 8192
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	suite, err := LoadSuite(path)
	require.NoError(t, err)
	assert.Equal(t, "crossover", suite.Name)
	assert.Equal(t, uint64(4096), suite.UpperStart)
	assert.Equal(t, []Strategy{StrategyLinear, StrategySegmented}, suite.Strategies)
	assert.Equal(t, 8192, suite.ChunkSize)
	// Unset fields keep their defaults.
	assert.Equal(t, DefaultSuite().LinearLimit, suite.LinearLimit)
}

func TestLoadSuiteErrors(t *testing.T) {
	_, err := LoadSuite(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strategies: [warp]"), 0o644))
	_, err = LoadSuite(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown strategy")
}
