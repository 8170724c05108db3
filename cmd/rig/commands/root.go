// Package commands implements the CLI commands for the rig task runner.
package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/rig/internal/app"
	"go.trai.ch/rig/internal/build"
)

// defaultManifest is the manifest filename used when neither the --config
// flag nor the RIGFILE environment variable is set.
const defaultManifest = "rig.yaml"

// CLI represents the command line interface for rig.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "rig [task ...]",
		Short:         "A declarative task runner",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the manifest file")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	// Task names are positional: `rig test publish` runs both plans in
	// order, deduplicating shared prerequisites across the batch. With no
	// arguments the manifest's default task (or the listing) runs.
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return c.app.Run(cmd.Context(), manifestPath(cmd), args)
	}

	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// manifestPath resolves the manifest location: the --config flag wins, then
// the RIGFILE environment variable, then the default filename.
func manifestPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	if path := os.Getenv("RIGFILE"); path != "" {
		return path
	}
	return defaultManifest
}
