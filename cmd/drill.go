package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tonedrill/tonedrill/engine"
	"github.com/tonedrill/tonedrill/engine/config"
	"github.com/tonedrill/tonedrill/theory/note"
)

var drillCount int

func init() {
	drillCmd.Flags().IntVarP(&drillCount, "count", "n", 5, "number of drills to run")
	rootCmd.AddCommand(drillCmd)
}

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Run interactive chord drills",
	Long:  `Generates chords from the level config, shows their pitches and checks typed answers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		g, err := engine.New(cfg)
		if err != nil {
			return err
		}

		reader := bufio.NewReader(os.Stdin)
		correct := 0
		var prev *engine.Drill
		for i := 0; i < drillCount; i++ {
			d, err := g.NextChord(prev)
			if err != nil {
				return err
			}
			prev = d

			fmt.Printf("\n[%d/%d] Notes: %s\n", i+1, drillCount, formatPitches(d.Chord.Pitches))
			fmt.Print("Your answer: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			if g.CheckAnswer(d, strings.TrimSpace(line)) {
				correct++
				fmt.Println("Correct!")
			} else {
				fmt.Printf("Wrong — it was %s\n", d.Chord.ExpectedAnswer)
			}
		}
		fmt.Printf("\nScore: %d/%d\n", correct, drillCount)
		return nil
	},
}

func loadConfig() (*config.LevelConfig, error) {
	if configPath == "" {
		return config.DefaultLevelConfig(), nil
	}
	f, err := os.Open(configPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return config.Decode(f)
}

func formatPitches(pitches []int) string {
	names := make([]string, len(pitches))
	for i, p := range pitches {
		names[i] = note.NameWithOctave(p)
	}
	return strings.Join(names, " ")
}
