package cmd

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "tonedrill",
	Short: "Ear-training chord and progression drills",
	Long:  `Generates chord and progression drills from a level config and checks answers.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a JSON level config (default: built-in beginner level)")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
