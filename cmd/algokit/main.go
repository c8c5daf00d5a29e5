package main

import (
	"os"

	"github.com/algokit/algokit/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	rootCmd.AddCommand(cmd.NewParensCommand())
	rootCmd.AddCommand(cmd.NewJosephusCommand())
	rootCmd.AddCommand(cmd.NewMoveToFrontCommand())
	rootCmd.AddCommand(cmd.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
