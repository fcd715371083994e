package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/simonhull/solidified/internal/config"
	"github.com/simonhull/solidified/internal/wizard"
	"github.com/spf13/cobra"
)

// OptionsCmd lists the values of each option axis and, for the given
// framework, why some of them are unavailable.
func OptionsCmd() *cobra.Command {
	var framework, category string

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List available project options",
		Long: `Lists every option value the new command accepts.

Values the selected framework cannot support are marked with the reason.

Example:
  solidified options --framework vite-solid-router --category api`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listOptions(cmd.OutOrStdout(), config.Framework(framework), category)
		},
	}

	cmd.Flags().StringVar(&framework, "framework", string(config.SolidStart), "Framework to check options against")
	cmd.Flags().StringVar(&category, "category", "", "Only list this axis (e.g. api, database)")

	return cmd
}

func listOptions(w io.Writer, fw config.Framework, category string) error {
	axes := config.Axes
	if category != "" {
		axis := config.Axis(strings.ReplaceAll(category, "-", "_"))
		if len(config.Options(axis)) == 0 {
			return fmt.Errorf("unknown category %q", category)
		}
		axes = []config.Axis{axis}
	}

	for i, axis := range axes {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s:\n", axis)
		for _, c := range wizard.Choices(axis, fw) {
			line := fmt.Sprintf("  %-18s %s", c.Value, c.Description)
			if c.Disabled != "" {
				line = fmt.Sprintf("  %-18s unavailable: %s", c.Value, c.Disabled)
			}
			fmt.Fprintln(w, line)
		}
	}
	return nil
}
