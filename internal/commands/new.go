package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/simonhull/solidified/fledge/exec"
	"github.com/simonhull/solidified/fledge/input"
	"github.com/simonhull/solidified/fledge/output"
	"github.com/simonhull/solidified/internal/config"
	"github.com/simonhull/solidified/internal/project"
	"github.com/simonhull/solidified/internal/wizard"
	"github.com/spf13/cobra"
)

type newOptions struct {
	preset     string
	savePreset string
	dir        string
	yes        bool
	values     map[config.Axis]*string
}

// NewCmd creates and returns the 'new' command for scaffolding projects
func NewCmd() *cobra.Command {
	return newCommand(&newOptions{values: map[config.Axis]*string{}})
}

func newCommand(opts *newOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new [project-name]",
		Short: "Create a new SolidJS project",
		Long: `Creates a new SolidJS project from the selected framework template and
adds the features you pick.

Run in a terminal without --yes to choose options interactively.

Examples:
  solidified new my-app
  solidified new my-app --framework solid-start --api trpc --database drizzle --yes
  solidified new my-app --preset team.yml`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			if err := runNew(ctx, cmd, args, opts); err != nil {
				if errors.Is(err, wizard.ErrCancelled) {
					output.Warn("Cancelled")
					return
				}
				output.Error(err.Error())
				os.Exit(1)
			}
		},
	}

	for _, axis := range config.Axes {
		v := new(string)
		opts.values[axis] = v
		cmd.Flags().StringVar(v, flagName(axis), "", fmt.Sprintf("%s (%s)", axis, strings.Join(config.Values(axis), ", ")))
	}
	cmd.Flags().StringVar(&opts.preset, "preset", "", "Load options from a preset file")
	cmd.Flags().StringVar(&opts.savePreset, "save-preset", "", "Save the chosen options to a preset file")
	cmd.Flags().StringVar(&opts.dir, "dir", "", "Directory to create (defaults to the project name)")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Skip the wizard and use defaults for unset options")

	return cmd
}

func runNew(ctx context.Context, cmd *cobra.Command, args []string, opts *newOptions) error {
	cfg, fixed, err := resolveConfig(cmd, args, opts)
	if err != nil {
		return err
	}

	interactive := wizard.IsInteractive()
	if interactive && !opts.yes {
		if err := wizard.Run(cfg, fixed); err != nil {
			return err
		}
		cfg.Normalize()
		if !isEmptyDir(cfg.Directory) && !input.Confirm(fmt.Sprintf("Directory %s is not empty. Continue?", cfg.Directory), false) {
			return wizard.ErrCancelled
		}
	}

	if opts.savePreset != "" {
		if err := config.SavePreset(opts.savePreset, cfg); err != nil {
			return err
		}
		output.Info(fmt.Sprintf("Saved preset to %s", opts.savePreset))
	}

	output.Verbose(fmt.Sprintf("Creating new Solid project: %s", cfg.Name))

	runner := project.NewExecRunner(exec.NewExecutor(nil), interactive)
	scaffolder := project.NewScaffolder(&project.Options{Runner: runner})
	result, err := scaffolder.Scaffold(ctx, cfg)
	if err != nil {
		return err
	}

	output.Success(fmt.Sprintf("Created %s in %s", cfg.PackageName(), result.Dir))
	output.Info("Next steps:")
	for _, step := range result.NextSteps {
		output.Step(step)
	}
	return nil
}

// resolveConfig layers the preset, the positional name and the flags. The
// returned set holds the axes the wizard must not ask about.
func resolveConfig(cmd *cobra.Command, args []string, opts *newOptions) (*config.ProjectConfig, map[config.Axis]bool, error) {
	cfg, err := config.Load(opts.preset)
	if err != nil {
		return nil, nil, err
	}

	fixed := map[config.Axis]bool{}
	if opts.preset != "" {
		for _, axis := range config.Axes {
			fixed[axis] = true
		}
	}

	if len(args) > 0 {
		cfg.Name = args[0]
	}
	if opts.dir != "" {
		cfg.Directory = opts.dir
	}

	for _, axis := range config.Axes {
		if !cmd.Flags().Changed(flagName(axis)) {
			continue
		}
		cfg.Set(axis, *opts.values[axis])
		fixed[axis] = true
	}

	if cfg.Name == "" && opts.yes {
		return nil, nil, errors.New("a project name is required with --yes")
	}
	return cfg, fixed, nil
}

// flagName maps an axis to its command-line flag.
func flagName(axis config.Axis) string {
	return strings.ReplaceAll(string(axis), "_", "-")
}

// isEmptyDir reports whether dir is missing or has no entries.
func isEmptyDir(dir string) bool {
	entries, err := os.ReadDir(dir)
	return err != nil || len(entries) == 0
}
