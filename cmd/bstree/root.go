package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bstree",
	Short: "Build, inspect and time unbalanced binary search trees",
	Long: `bstree builds a binary search tree from its arguments and prints its
traversals, shape and a pyramid drawing, or times it against other ordered
containers.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			logLevel.Set(slog.LevelDebug)
		}
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "log every tree operation")
	rootCmd.AddCommand(showCmd, benchCmd)
}
