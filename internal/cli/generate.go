package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nback"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one sequence and write it as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetInt("level")
		targets, _ := cmd.Flags().GetInt("targets")
		fillers, _ := cmd.Flags().GetInt("fillers")
		lureArgs, _ := cmd.Flags().GetStringArray("lure")
		maxRepeat, _ := cmd.Flags().GetInt("max-repeat")
		seed, _ := cmd.Flags().GetInt64("seed")
		wordsPath, _ := cmd.Flags().GetString("words")
		outPath, _ := cmd.Flags().GetString("out")

		lures, err := parseLures(lureArgs)
		if err != nil {
			return err
		}

		spec, err := nback.NewSpec(level, targets, fillers, lures, maxRepeat)
		if err != nil {
			return err
		}

		seq, err := nback.Generate(spec, nback.WithSeed(seed))
		if err != nil {
			return err
		}

		if wordsPath != "" {
			words, rerr := loadWords(wordsPath)
			if rerr != nil {
				return rerr
			}
			dropped, rerr := seq.Rebind(words, true, nback.WithSeed(seed))
			if dropped > 0 {
				fmt.Fprintf(os.Stderr, "dropped %d duplicate word(s)\n", dropped)
			}
			if rerr != nil {
				return rerr
			}
		}

		out := os.Stdout
		if outPath != "" {
			f, cerr := os.Create(outPath)
			if cerr != nil {
				return cerr
			}
			defer f.Close()
			out = f
		}

		return seq.WriteCSV(out)
	},
}

// parseLures converts repeated "distance=count" flags into a lure table.
func parseLures(args []string) (map[int]int, error) {
	if len(args) == 0 {
		return nil, nil
	}
	lures := make(map[int]int, len(args))
	for _, a := range args {
		d, c, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --lure %q: want distance=count", a)
		}
		dist, err := strconv.Atoi(strings.TrimSpace(d))
		if err != nil {
			return nil, fmt.Errorf("invalid --lure distance %q: %w", d, err)
		}
		count, err := strconv.Atoi(strings.TrimSpace(c))
		if err != nil {
			return nil, fmt.Errorf("invalid --lure count %q: %w", c, err)
		}
		lures[dist] += count
	}
	return lures, nil
}

// loadWords reads a whitespace-separated word list.
func loadWords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return strings.Fields(string(data)), nil
}

func init() {
	generateCmd.Flags().IntP("level", "n", 2, "n-level defining targets")
	generateCmd.Flags().Int("targets", 0, "number of targets")
	generateCmd.Flags().Int("fillers", 0, "number of fillers")
	generateCmd.Flags().StringArray("lure", nil, "lure as distance=count (repeatable)")
	generateCmd.Flags().Int("max-repeat", 0, "max consecutive identical stimuli (0 = unlimited)")
	generateCmd.Flags().Int64("seed", 0, "random seed (0 = default deterministic stream)")
	generateCmd.Flags().String("words", "", "file with whitespace-separated stimulus words")
	generateCmd.Flags().String("out", "", "write CSV to this file instead of stdout")
}
