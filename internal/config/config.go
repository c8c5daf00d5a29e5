// Package config contains all knobs and defaults used to configure the
// algokit command line tool.
package config

import (
	"fmt"
	"slices"
)

const (
	DefaultLogFormat            = "text"
	DefaultLogLevel             = "info"
	DefaultOutputFormat         = "text"
	DefaultStackInitialCapacity = 0
	DefaultJosephusPeople       = 7
	DefaultJosephusStep         = 2
)

var (
	logFormats    = []string{"text", "json"}
	logLevels     = []string{"none", "debug", "info", "warn", "error"}
	outputFormats = []string{"text", "json", "yaml"}
)

type LogConfig struct {
	// Format is the log format to use in the log output (e.g. 'text' or 'json')
	Format string

	// Level is the log level to use in the log output (e.g. 'none', 'debug', or 'info')
	Level string
}

type OutputConfig struct {
	// Format is how command results are written to stdout ('text', 'json' or 'yaml').
	Format string
}

type StackConfig struct {
	// InitialCapacity is the number of slots the bracket matcher's stack
	// starts with. Zero defers allocation to the first push.
	InitialCapacity int `mapstructure:"initialCapacity"`
}

type JosephusConfig struct {
	// People is the number of people in the circle.
	People int

	// Step eliminates every Step-th person.
	Step int
}

type Config struct {
	Log      LogConfig
	Output   OutputConfig
	Stack    StackConfig
	Josephus JosephusConfig
}

// Verify checks that every value is within its allowed range.
func (cfg *Config) Verify() error {
	if !slices.Contains(logFormats, cfg.Log.Format) {
		return fmt.Errorf("config 'log.format' must be one of %v", logFormats)
	}

	if !slices.Contains(logLevels, cfg.Log.Level) {
		return fmt.Errorf("config 'log.level' must be one of %v", logLevels)
	}

	if !slices.Contains(outputFormats, cfg.Output.Format) {
		return fmt.Errorf("config 'output.format' must be one of %v", outputFormats)
	}

	if cfg.Stack.InitialCapacity < 0 {
		return fmt.Errorf("config 'stack.initialCapacity' (%d) cannot be negative", cfg.Stack.InitialCapacity)
	}

	if cfg.Josephus.People < 0 {
		return fmt.Errorf("config 'josephus.people' (%d) cannot be negative", cfg.Josephus.People)
	}

	if cfg.Josephus.Step <= 0 {
		return fmt.Errorf("config 'josephus.step' (%d) must be greater than zero", cfg.Josephus.Step)
	}

	return nil
}

// DefaultConfig is the algokit default configuration.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Format: DefaultLogFormat,
			Level:  DefaultLogLevel,
		},
		Output: OutputConfig{
			Format: DefaultOutputFormat,
		},
		Stack: StackConfig{
			InitialCapacity: DefaultStackInitialCapacity,
		},
		Josephus: JosephusConfig{
			People: DefaultJosephusPeople,
			Step:   DefaultJosephusStep,
		},
	}
}
