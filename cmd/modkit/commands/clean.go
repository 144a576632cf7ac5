package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/modkit/internal/core/domain"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the java build cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			phases := []domain.Phase{domain.PhaseClearGradleCache}
			if output, _ := cmd.Flags().GetBool("output"); output {
				phases = append(phases, domain.PhaseClearOutput)
			}
			return c.runPhases(cmd, phases...)
		},
	}

	cmd.Flags().Bool("output", false, "Also empty the output directory")

	return cmd
}
