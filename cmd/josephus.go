package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/algokit/algokit/internal/render"
	"github.com/algokit/algokit/pkg/homework"
)

type josephusResult struct {
	People int   `json:"people"`
	Step   int   `json:"step"`
	Order  []int `json:"order"`
}

// NewJosephusCommand returns the command that prints the Josephus elimination order.
func NewJosephusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "josephus",
		Short: "Print the Josephus elimination order",
		Long:  "Seat --people people in a circle, eliminate every --step-th one and print the order in which they are eliminated. The last one printed survives.",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			c, err := commandContextFor(command)
			if err != nil {
				return err
			}
			return c.Josephus(c.Config.Josephus.People, c.Config.Josephus.Step)
		},
	}

	bindJosephusFlags(cmd)

	return cmd
}

func (c *CommandContext) Josephus(people, step int) error {
	c.Logger.Info("solving josephus", zap.Int("people", people), zap.Int("step", step))

	order, err := homework.Josephus(people, step)
	if err != nil {
		c.Logger.Error("josephus failed", zap.Error(err))
		return fmt.Errorf("josephus: %w", err)
	}

	cells := make([]string, len(order))
	for i, p := range order {
		cells[i] = strconv.Itoa(p)
	}

	return c.Renderer.Render(render.Table{
		Rows:    [][]string{{strings.Join(cells, " ")}},
		Records: josephusResult{People: people, Step: step, Order: order},
	})
}
