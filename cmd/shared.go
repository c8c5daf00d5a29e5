package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/algokit/algokit/internal/config"
	"github.com/algokit/algokit/internal/render"
	"github.com/algokit/algokit/pkg/logger"
)

// ReadConfig returns the algokit configuration based on the values provided in the 'config.yaml' file.
// The 'config.yaml' file is loaded from '/etc/algokit', '$HOME/.algokit', or the current working directory. If no configuration
// file is present, the default values are returned.
func ReadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	viper.SetTypeByDefaultValue(true)
	err := viper.ReadInConfig()
	if err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// CommandContext carries what a subcommand needs to run once its
// configuration has been resolved.
type CommandContext struct {
	Config   *config.Config
	Logger   logger.Logger
	Renderer *render.Renderer
}

// NewCommandContext builds a CommandContext for cfg, writing results to out.
func NewCommandContext(cfg *config.Config, log logger.Logger, out io.Writer) (*CommandContext, error) {
	renderer, err := render.New(cfg.Output.Format, out)
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Config:   cfg,
		Logger:   log,
		Renderer: renderer,
	}, nil
}

// commandContextFor reads and verifies the configuration and builds the
// logger for command.
func commandContextFor(command *cobra.Command) (*CommandContext, error) {
	cfg, err := ReadConfig()
	if err != nil {
		return nil, err
	}

	if err := cfg.Verify(); err != nil {
		return nil, err
	}

	log, err := logger.NewLogger(cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	return NewCommandContext(cfg, log.With(zap.String("command", command.Name())), command.OutOrStdout())
}
