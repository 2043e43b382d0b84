package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nback"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure generation throughput on a reference shape",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		if count < 1 {
			return fmt.Errorf("--count must be >= 1, got %d", count)
		}

		// Reference shape: 3-back, 3 targets, 5 fillers, two lure distances.
		spec, err := nback.NewSpec(3, 3, 5, map[int]int{1: 2, 2: 4}, 0)
		if err != nil {
			return err
		}

		start := time.Now()
		for i := 0; i < count; i++ {
			if _, err = nback.Generate(spec, nback.WithSeed(int64(i+1))); err != nil {
				return err
			}
		}
		elapsed := time.Since(start)

		fmt.Printf("%d sequences in %s (%10.2f sequences/second)\n",
			count, elapsed, float64(count)/elapsed.Seconds())
		return nil
	},
}

func init() {
	benchCmd.Flags().Int("count", 1000, "number of sequences to generate")
}
