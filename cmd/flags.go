package cmd

import (
	"github.com/spf13/cobra"

	"github.com/algokit/algokit/cmd/util"
	"github.com/algokit/algokit/internal/config"
)

// bindGlobalFlags binds the persistent flags shared by every subcommand to the
// equivalent config value being managed by viper.
func bindGlobalFlags(command *cobra.Command) {
	defaultConfig := config.DefaultConfig()
	flags := command.PersistentFlags()

	flags.String("log-format", defaultConfig.Log.Format, "the log format to output logs in")
	util.MustBindPFlag("log.format", flags.Lookup("log-format"))
	util.MustBindEnv("log.format", "ALGOKIT_LOG_FORMAT")

	flags.String("log-level", defaultConfig.Log.Level, "the log level to use")
	util.MustBindPFlag("log.level", flags.Lookup("log-level"))
	util.MustBindEnv("log.level", "ALGOKIT_LOG_LEVEL")

	flags.StringP("output", "o", defaultConfig.Output.Format, "the format results are written in (text, json or yaml)")
	util.MustBindPFlag("output.format", flags.Lookup("output"))
	util.MustBindEnv("output.format", "ALGOKIT_OUTPUT_FORMAT")
}

func bindParensFlags(command *cobra.Command) {
	defaultConfig := config.DefaultConfig()
	flags := command.Flags()

	flags.Int("stack-initial-capacity", defaultConfig.Stack.InitialCapacity, "the number of slots the bracket stack starts with")
	util.MustBindPFlag("stack.initialCapacity", flags.Lookup("stack-initial-capacity"))
	util.MustBindEnv("stack.initialCapacity", "ALGOKIT_STACK_INITIAL_CAPACITY", "ALGOKIT_STACK_INITIALCAPACITY")
}

func bindJosephusFlags(command *cobra.Command) {
	defaultConfig := config.DefaultConfig()
	flags := command.Flags()

	flags.IntP("people", "n", defaultConfig.Josephus.People, "the number of people in the circle")
	util.MustBindPFlag("josephus.people", flags.Lookup("people"))
	util.MustBindEnv("josephus.people", "ALGOKIT_JOSEPHUS_PEOPLE")

	flags.IntP("step", "m", defaultConfig.Josephus.Step, "eliminate every step-th person")
	util.MustBindPFlag("josephus.step", flags.Lookup("step"))
	util.MustBindEnv("josephus.step", "ALGOKIT_JOSEPHUS_STEP")
}
