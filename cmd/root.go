// Package cmd contains all the commands included in the binary file.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand enables all children commands to read flags from CLI flags, environment variables prefixed with ALGOKIT, or config.yaml (in that order).
func NewRootCommand() *cobra.Command {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("ALGOKIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	configPaths := []string{"/etc/algokit", "$HOME/.algokit", "."}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	root := &cobra.Command{
		Use:   "algokit",
		Short: "Run the chapter 1.3 container exercises",
		Long: `Run the chapter 1.3 container exercises from the command line.

algokit checks bracket balance, solves the Josephus problem and applies the move-to-front heuristic, all on top of the stacks, queues and lists in pkg/containers.`,
		SilenceUsage: true,
	}

	bindGlobalFlags(root)

	return root
}
