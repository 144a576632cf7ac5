package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/modkit/internal/core/domain"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compile and dex every java module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if release, _ := cmd.Flags().GetBool("release"); release {
				return c.runPhases(cmd, domain.PhaseCompileJavaRelease)
			}
			return c.runPhases(cmd, domain.PhaseCompileJavaDebug)
		},
	}
	cmd.Flags().BoolP("release", "r", false, "Merge dex output in release mode")
	return cmd
}

func (c *CLI) newPackageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "package",
		Short: "Zip the output directory into the mod package",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runPhases(cmd, domain.PhaseBuildPackage)
		},
	}
}

func (c *CLI) newPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Copy the output directory to the attached device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runPhases(cmd, domain.PhasePushEverything)
		},
	}
}

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Rebuild java modules whenever their files change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Watch(cmd.Context(), runOptions(cmd))
		},
	}
}
