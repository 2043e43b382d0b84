package cli

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "nback",
	Short: "Generate n-back stimulus sequences",
	Long: `nback builds stimulus sequences for n-back cognitive tasks.

A sequence mixes targets (repeat the stimulus n positions back), lures
(repeat the stimulus d positions back, d != n) and fillers (fresh stimuli),
with an optional limit on consecutive repeats. Output is CSV with the
header Position,ItemType,Stimulus.

Examples:
  nback generate --level 3 --targets 5 --fillers 5 --lure 1=2 --lure 2=4
  nback generate --level 2 --targets 4 --fillers 6 --words words.txt --out seq.csv
  nback bench --count 1000`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(benchCmd)
}
