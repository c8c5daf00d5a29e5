package cmd

import (
	"strconv"

	"github.com/sourcegraph/conc/iter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/algokit/algokit/internal/render"
	"github.com/algokit/algokit/pkg/homework"
)

type parensResult struct {
	Input    string `json:"input"`
	Balanced bool   `json:"balanced"`
}

// NewParensCommand returns the command that checks bracket balance.
func NewParensCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parens [inputs...]",
		Short: "Check that brackets are balanced",
		Long:  "Check that every input is made of properly nested (), [] and {} pairs.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			c, err := commandContextFor(command)
			if err != nil {
				return err
			}
			return c.Parens(args)
		},
	}

	bindParensFlags(cmd)

	return cmd
}

// Parens checks every input concurrently and renders the results in input order.
func (c *CommandContext) Parens(inputs []string) error {
	c.Logger.Info("checking brackets", zap.Int("inputs", len(inputs)))

	matcher := homework.NewMatcher(homework.DefaultPairs, homework.WithInitialCapacity(c.Config.Stack.InitialCapacity))
	results := iter.Map(inputs, func(input *string) parensResult {
		balanced := matcher.Balanced(*input)
		c.Logger.Debug("checked input", zap.String("input", *input), zap.Bool("balanced", balanced))
		return parensResult{Input: *input, Balanced: balanced}
	})

	table := render.Table{
		Headers: []string{"INPUT", "BALANCED"},
		Records: results,
	}
	for _, result := range results {
		table.Rows = append(table.Rows, []string{result.Input, strconv.FormatBool(result.Balanced)})
	}

	return c.Renderer.Render(table)
}
