package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/algokit/algokit/internal/render"
	"github.com/algokit/algokit/pkg/homework"
)

type mtfResult struct {
	Input  string `json:"input"`
	Result string `json:"result"`
}

// NewMoveToFrontCommand returns the command that applies the move-to-front heuristic.
func NewMoveToFrontCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "mtf [inputs...]",
		Aliases: []string{"move-to-front"},
		Short:   "Apply the move-to-front heuristic",
		Long:    "Read the characters of every input into a list, moving each repeated character to the end, and print the list.",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			c, err := commandContextFor(command)
			if err != nil {
				return err
			}
			return c.MoveToFront(args)
		},
	}
}

func (c *CommandContext) MoveToFront(inputs []string) error {
	c.Logger.Info("applying move-to-front", zap.Int("inputs", len(inputs)))

	table := render.Table{Headers: []string{"INPUT", "RESULT"}}
	results := make([]mtfResult, 0, len(inputs))
	for _, input := range inputs {
		result := mtfResult{Input: input, Result: homework.MoveToFront(input)}
		results = append(results, result)
		table.Rows = append(table.Rows, []string{result.Input, result.Result})
	}
	table.Records = results

	return c.Renderer.Render(table)
}
