package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/modkit/internal/core/domain"
)

func (c *CLI) newRunCmd() *cobra.Command {
	names := make([]string, 0, len(domain.Phases()))
	for _, p := range domain.Phases() {
		names = append(names, p.String())
	}

	return &cobra.Command{
		Use:       "run [tasks...]",
		Short:     "Run tasks in the given order",
		Long:      fmt.Sprintf("Run tasks in the given order.\n\nTasks: %s", strings.Join(names, ", ")),
		Args:      cobra.ArbitraryArgs,
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			phases := make([]domain.Phase, 0, len(args))
			for _, name := range args {
				phase, err := domain.ParsePhase(name)
				if err != nil {
					return err
				}
				phases = append(phases, phase)
			}
			return c.runPhases(cmd, phases...)
		},
	}
}
