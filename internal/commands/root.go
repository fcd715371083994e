package commands

import (
	"github.com/simonhull/solidified"
	"github.com/simonhull/solidified/fledge/output"
	"github.com/spf13/cobra"
)

// RootCmd creates and returns the root command for the solidified CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "solidified",
		Short: "Scaffold SolidJS projects with the features you pick",
		Long: `Solidified creates a SolidJS starter project from a base template and
layers the features you choose on top of it: styling, database, auth,
API, testing, linting, formatting, git hooks and deployment.

Options a framework cannot support are rejected before anything is
written to disk.`,
		Version: solidified.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
