package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tonedrill/tonedrill/engine"
	"github.com/tonedrill/tonedrill/theory/chord"
	"github.com/tonedrill/tonedrill/theory/key"
	"github.com/tonedrill/tonedrill/theory/roman"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(progressionCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [numeral] [key]",
	Short: "Resolve a Roman numeral in a key",
	Long:  `Resolves a Roman numeral token (e.g. "V7" "C" or "ii°" "Am") and prints the chord it names.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sig, err := key.Parse(args[1])
		if err != nil {
			return err
		}
		res, err := roman.Resolve(args[0], sig)
		if err != nil {
			return err
		}
		ct, err := chord.Get(res.Quality)
		if err != nil {
			return err
		}
		fmt.Printf("%s in %s:\n", args[0], sig.Name())
		fmt.Printf("  root:      %s\n", chord.Chord{Root: res.Root}.RootName())
		fmt.Printf("  quality:   %s\n", ct.DisplayName)
		fmt.Printf("  inversion: %d\n", res.Inversion)
		fmt.Printf("  intervals: %v\n", ct.Intervals)
		return nil
	},
}

var progressionCmd = &cobra.Command{
	Use:   "progression",
	Short: "Generate a progression from the level config",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		g, err := engine.New(cfg)
		if err != nil {
			return err
		}
		p, err := g.NextProgression()
		if err != nil {
			return err
		}
		fmt.Printf("%s: %v\n", p.Key.Name(), p.Pattern)
		for i, c := range p.Chords {
			fmt.Printf("  %-5s %-6s %s\n", p.Pattern[i], c.ExpectedAnswer, formatPitches(c.Pitches))
		}
		return nil
	},
}
