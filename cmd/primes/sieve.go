package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mathforge/primes"
)

// sieveFlags are the tuning flags shared by sieve and range.
type sieveFlags struct {
	parallel    bool
	chunkSize   int
	linearLimit int
	workers     int
	countOnly   bool
}

func (f *sieveFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.parallel, "parallel", false, "Sieve chunks concurrently")
	cmd.Flags().IntVar(&f.chunkSize, "chunk-size", 0, "Segment width (default: engine default)")
	cmd.Flags().IntVar(&f.linearLimit, "linear-limit", 0, "Linear sieve bound (default: engine default)")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Concurrent chunk workers (default: GOMAXPROCS)")
	cmd.Flags().BoolVar(&f.countOnly, "count-only", false, "Print the prime count instead of the primes")
}

func (f *sieveFlags) policy() primes.Policy {
	if f.parallel {
		return primes.Parallel
	}
	return primes.Sequential
}

func (f *sieveFlags) options() []primes.Option {
	return []primes.Option{
		primes.WithChunkSize(f.chunkSize),
		primes.WithLinearSieveLimit(f.linearLimit),
		primes.WithWorkers(f.workers),
	}
}

func sieveCmd() *cobra.Command {
	var flags sieveFlags

	cmd := &cobra.Command{
		Use:   "sieve <upper>",
		Short: "Print every prime in [2, upper]",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			upper, err := parseBound(args[0])
			if err != nil {
				return err
			}

			seq, err := primes.PrimeSieve(cmd.Context(), upper, flags.policy(), flags.options()...)
			if err != nil {
				return err
			}
			return writePrimes(seq, flags.countOnly)
		},
	}

	flags.register(cmd)
	return cmd
}

func rangeCmd() *cobra.Command {
	var flags sieveFlags

	cmd := &cobra.Command{
		Use:   "range <lower> <upper>",
		Short: "Print every prime in [lower, upper]",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lower, err := parseBound(args[0])
			if err != nil {
				return err
			}
			upper, err := parseBound(args[1])
			if err != nil {
				return err
			}

			seq, err := primes.PrimeRange(cmd.Context(), lower, upper, flags.policy(), flags.options()...)
			if err != nil {
				return err
			}
			return writePrimes(seq, flags.countOnly)
		},
	}

	flags.register(cmd)
	return cmd
}

func parseBound(arg string) (uint64, error) {
	bound, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid bound %q: must be a non-negative integer", arg)
	}
	return bound, nil
}

// writePrimes prints the result, one prime per line, through a buffered
// writer; large sieves produce millions of lines.
func writePrimes(seq []uint64, countOnly bool) error {
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if countOnly {
		_, err := fmt.Fprintln(out, len(seq))
		return err
	}

	buf := make([]byte, 0, 21)
	for _, p := range seq {
		buf = strconv.AppendUint(buf[:0], p, 10)
		buf = append(buf, '\n')
		if _, err := out.Write(buf); err != nil {
			return err
		}
	}
	return nil
}
