// Package benchmark times the sieve strategies over a geometric ladder of
// upper bounds so their crossover points can be retuned per platform.
// Suites are described in YAML and results can be persisted through a GORM
// store for later comparison.
package benchmark

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mathforge/primes"
)

// Strategy names one sieve implementation the runner knows how to time.
type Strategy string

const (
	// StrategyLinear times the dense smallest-divisor sieve.
	StrategyLinear Strategy = "linear"

	// StrategyMask times the flat mask sieve over [2, upper].
	StrategyMask Strategy = "mask"

	// StrategySegmented times the chunked sieve with parallel scheduling.
	StrategySegmented Strategy = "segmented"

	// StrategySegmentedSequential times the chunked sieve on one goroutine.
	StrategySegmentedSequential Strategy = "segmented_sequential"

	// StrategyAuto times the dispatcher with its own policy selection.
	StrategyAuto Strategy = "auto"
)

func (s Strategy) valid() bool {
	switch s {
	case StrategyLinear, StrategyMask, StrategySegmented, StrategySegmentedSequential, StrategyAuto:
		return true
	}
	return false
}

// Suite describes one benchmark run: which strategies to time and the
// ladder of upper bounds to time them at. Bounds start at UpperStart and
// multiply by Multiplier until they exceed UpperLimit.
type Suite struct {
	Name        string     `yaml:"name"`
	UpperStart  uint64     `yaml:"upper_start"`
	UpperLimit  uint64     `yaml:"upper_limit"`
	Multiplier  uint64     `yaml:"multiplier"`
	Repetitions int        `yaml:"repetitions"`
	Strategies  []Strategy `yaml:"strategies"`
	ChunkSize   int        `yaml:"chunk_size"`
	LinearLimit int        `yaml:"linear_limit"`
	Workers     int        `yaml:"workers"`
}

// DefaultSuite covers four decades from 2^10 with every strategy.
func DefaultSuite() Suite {
	return Suite{
		Name:        "default",
		UpperStart:  1 << 10,
		UpperLimit:  10_000_000,
		Multiplier:  10,
		Repetitions: 3,
		Strategies: []Strategy{
			StrategyLinear,
			StrategyMask,
			StrategySegmentedSequential,
			StrategySegmented,
			StrategyAuto,
		},
		ChunkSize:   primes.DefaultChunkSize,
		LinearLimit: primes.DefaultLinearSieveLimit,
	}
}

// LoadSuite reads a suite definition from a YAML file. Fields left unset
// fall back to the defaults of DefaultSuite.
func LoadSuite(path string) (Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, fmt.Errorf("read suite file: %w", err)
	}

	suite := DefaultSuite()
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return Suite{}, fmt.Errorf("parse suite file: %w", err)
	}
	if err := suite.Validate(); err != nil {
		return Suite{}, err
	}
	return suite, nil
}

// Validate rejects suites that would never terminate or time nothing.
func (s Suite) Validate() error {
	if s.UpperStart < 3 {
		return fmt.Errorf("suite %q: upper_start must be at least 3", s.Name)
	}
	if s.UpperLimit < s.UpperStart {
		return fmt.Errorf("suite %q: upper_limit below upper_start", s.Name)
	}
	if s.Multiplier < 2 {
		return fmt.Errorf("suite %q: multiplier must be at least 2", s.Name)
	}
	if s.Repetitions < 1 {
		return fmt.Errorf("suite %q: repetitions must be at least 1", s.Name)
	}
	if len(s.Strategies) == 0 {
		return fmt.Errorf("suite %q: no strategies", s.Name)
	}
	for _, strategy := range s.Strategies {
		if !strategy.valid() {
			return fmt.Errorf("suite %q: unknown strategy %q", s.Name, strategy)
		}
	}
	return nil
}

// Bounds expands the geometric ladder of upper bounds.
func (s Suite) Bounds() []uint64 {
	var bounds []uint64
	for upper := s.UpperStart; upper <= s.UpperLimit; upper *= s.Multiplier {
		bounds = append(bounds, upper)
		if upper > s.UpperLimit/s.Multiplier {
			break
		}
	}
	return bounds
}
