// Package commands implements the CLI commands for the modkit build tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/modkit/internal/app"
	"go.trai.ch/modkit/internal/build"
	"go.trai.ch/modkit/internal/core/domain"
)

// CLI represents the command line interface for modkit.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, phases []domain.Phase, opts app.RunOptions) error
	Watch(ctx context.Context, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "modkit",
		Short:         "Build toolchain for Horizon mods",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} {{.Version}} (commit %s, built %s)\n", build.Commit, build.Date))

	flags := rootCmd.PersistentFlags()
	flags.StringP("chdir", "C", "", "Run as if modkit was started in `dir`")
	flags.StringP("output-mode", "o", "auto", "Output mode: auto, interactive, or linear")
	flags.Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddGroup(
		&cobra.Group{ID: groupBuild, Title: "Build Commands:"},
		&cobra.Group{ID: groupDevice, Title: "Device Commands:"},
	)
	for _, sub := range []*cobra.Command{c.newBuildCmd(), c.newCleanCmd(), c.newPackageCmd(), c.newWatchCmd()} {
		sub.GroupID = groupBuild
		rootCmd.AddCommand(sub)
	}
	push := c.newPushCmd()
	push.GroupID = groupDevice
	rootCmd.AddCommand(push)
	rootCmd.AddCommand(c.newRunCmd(), c.newVersionCmd())

	return c
}

const (
	groupBuild  = "build"
	groupDevice = "device"
)

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func runOptions(cmd *cobra.Command) app.RunOptions {
	outputMode, _ := cmd.Flags().GetString("output-mode")
	if ci, _ := cmd.Flags().GetBool("ci"); ci {
		outputMode = "linear"
	}
	dir, _ := cmd.Flags().GetString("chdir")
	return app.RunOptions{OutputMode: outputMode, Dir: dir}
}

func (c *CLI) runPhases(cmd *cobra.Command, phases ...domain.Phase) error {
	return c.app.Run(cmd.Context(), phases, runOptions(cmd))
}
