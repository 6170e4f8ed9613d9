package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beaconlauncher/beacon/internal/benchmark"
)

// NewBenchCmd creates the 'bench' command: measure ranking latency over
// synthetic candidate sets.
func NewBenchCmd() *cobra.Command {
	var sizes []int
	var runs int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure dedupe and ranking latency",
		Long: `Generate synthetic candidate sets and measure how long deduplication
and ranking take at each size. The largest default size (5000) exceeds the
sort cap, so the capped sorting path is exercised too.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := benchmark.Run(sizes, runs)
			fmt.Print(benchmark.FormatResult(result))
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&sizes, "sizes", nil, "candidate-set sizes to measure (default 100,1000,5000)")
	cmd.Flags().IntVar(&runs, "runs", benchmark.DefaultRuns, "timed iterations per size")
	return cmd
}
