package benchmark

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/mathforge/primes"
)

// autoParallelThreshold is where the auto strategy switches from sequential
// to parallel scheduling.
const autoParallelThreshold = 1 << 18

// Result is one timed sieve execution. Stored via Store in the
// benchmark_results table.
type Result struct {
	ID         uint      `gorm:"primarykey"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	Suite      string    `gorm:"index"`
	Strategy   string    `gorm:"index"`
	Upper      uint64
	Primes     uint64
	DurationNS int64
	Workers    int
}

// TableName implements the GORM naming hook.
func (Result) TableName() string { return "benchmark_results" }

// Duration returns the wall time of the run.
func (r Result) Duration() time.Duration {
	return time.Duration(r.DurationNS)
}

// Runner executes benchmark suites.
type Runner struct {
	logger *slog.Logger
}

// NewRunner creates a Runner. A nil logger falls back to slog.Default.
func NewRunner(logger *slog.Logger) Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return Runner{logger: logger}
}

// Run times every strategy of the suite at every bound of its ladder,
// repeating each measurement Repetitions times. Results come back in
// execution order.
func (r Runner) Run(ctx context.Context, suite Suite) ([]Result, error) {
	if err := suite.Validate(); err != nil {
		return nil, err
	}

	opts := []primes.Option{
		primes.WithChunkSize(suite.ChunkSize),
		primes.WithLinearSieveLimit(suite.LinearLimit),
	}
	if suite.Workers > 0 {
		opts = append(opts, primes.WithWorkers(suite.Workers))
	}

	var results []Result
	for _, upper := range suite.Bounds() {
		for _, strategy := range suite.Strategies {
			for rep := 0; rep < suite.Repetitions; rep++ {
				start := time.Now()
				seq, err := runStrategy(ctx, strategy, upper, opts)
				elapsed := time.Since(start)
				if err != nil {
					return nil, fmt.Errorf("strategy %s at bound %d: %w", strategy, upper, err)
				}

				results = append(results, Result{
					Suite:      suite.Name,
					Strategy:   string(strategy),
					Upper:      upper,
					Primes:     uint64(len(seq)),
					DurationNS: elapsed.Nanoseconds(),
					Workers:    suite.Workers,
				})
			}
			r.logger.Info("timed strategy",
				slog.String("strategy", string(strategy)),
				slog.Uint64("upper", upper),
				slog.Duration("last", results[len(results)-1].Duration()),
			)
		}
	}
	return results, nil
}

// runStrategy executes one sieve over [2, upper] and returns the primes.
func runStrategy(ctx context.Context, strategy Strategy, upper uint64, opts []primes.Option) ([]uint64, error) {
	switch strategy {
	case StrategyLinear:
		return primes.LinearSieve(upper + 1)
	case StrategyMask:
		basis, err := primes.LinearSieve(basisBound(upper))
		if err != nil {
			return nil, err
		}
		return primes.MaskSieve(ctx, 2, upper, basis)
	case StrategySegmented:
		return primes.PrimeSieve(ctx, upper, primes.Parallel, opts...)
	case StrategySegmentedSequential:
		return primes.PrimeSieve(ctx, upper, primes.Sequential, opts...)
	case StrategyAuto:
		policy := primes.Sequential
		if upper >= autoParallelThreshold {
			policy = primes.Parallel
		}
		return primes.PrimeSieve(ctx, upper, policy, opts...)
	default:
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}
}

// basisBound returns an exclusive bound that covers every prime up to
// sqrt(upper), with slack for floating point rounding.
func basisBound(upper uint64) uint64 {
	return uint64(math.Sqrt(float64(upper))) + 2
}
