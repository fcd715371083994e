// Package wizard asks for the project options interactively. Each question
// is its own huh form; options a framework cannot support are shown with
// the reason and rejected.
package wizard

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/simonhull/solidified/internal/adapter"
	"github.com/simonhull/solidified/internal/compat"
	"github.com/simonhull/solidified/internal/config"
)

// ErrCancelled is returned when the user aborts the wizard.
var ErrCancelled = errors.New("wizard cancelled")

var titles = map[config.Axis]string{
	config.AxisFramework:      "Framework",
	config.AxisPackageManager: "Package manager",
	config.AxisStyle:          "Styling",
	config.AxisDatabase:       "Database",
	config.AxisAuth:           "Authentication",
	config.AxisAPI:            "API layer",
	config.AxisTesting:        "Testing",
	config.AxisLinting:        "Linting",
	config.AxisFormatting:     "Formatting",
	config.AxisGitHooks:       "Git hooks",
	config.AxisDeployment:     "Deployment",
}

// Choice is one option of a question.
type Choice struct {
	Value       string
	Label       string
	Description string
	// Disabled holds the reason the option cannot be picked.
	Disabled string
}

// Key is the text shown for the choice.
func (c Choice) Key() string {
	switch {
	case c.Disabled != "":
		return fmt.Sprintf("%s (unavailable: %s)", c.Label, c.Disabled)
	case c.Description != "":
		return c.Label + " - " + c.Description
	}
	return c.Label
}

// Choices lists the options of axis for the chosen framework.
func Choices(axis config.Axis, fw config.Framework) []Choice {
	disabled := compat.DisabledOptions(fw, axis)
	opts := config.Options(axis)
	choices := make([]Choice, len(opts))
	for i, o := range opts {
		c := Choice{Value: o.Value, Label: o.Label, Description: o.Description, Disabled: disabled[o.Value]}
		if axis == config.AxisFramework {
			if _, err := adapter.Get(config.Framework(o.Value)); err != nil {
				c.Disabled = "not yet implemented"
			}
		}
		choices[i] = c
	}
	return choices
}

// check rejects disabled choices.
func check(choices []Choice) func(string) error {
	return func(value string) error {
		for _, c := range choices {
			if c.Value == value && c.Disabled != "" {
				return fmt.Errorf("%s is unavailable: %s", c.Label, c.Disabled)
			}
		}
		return nil
	}
}

// IsInteractive reports whether stdin and stdout are terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Run fills cfg by asking for the name (when empty) and every axis not in
// preset. The framework is asked first so later questions can show which
// options it rules out.
func Run(cfg *config.ProjectConfig, preset map[config.Axis]bool) error {
	theme := newTheme()

	if strings.TrimSpace(cfg.Name) == "" {
		input := huh.NewInput().
			Title("Project name").
			Placeholder("my-solid-app").
			Value(&cfg.Name).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("a project name is required")
				}
				return nil
			})
		if err := runField(input, theme); err != nil {
			return err
		}
	}

	for _, axis := range config.Axes {
		if preset[axis] {
			continue
		}
		if err := ask(cfg, axis, theme); err != nil {
			return err
		}
	}
	return nil
}

func ask(cfg *config.ProjectConfig, axis config.Axis, theme *huh.Theme) error {
	choices := Choices(axis, cfg.Framework)
	opts := make([]huh.Option[string], len(choices))
	for i, c := range choices {
		opts[i] = huh.NewOption(c.Key(), c.Value)
	}

	selected := cfg.Get(axis)
	sel := huh.NewSelect[string]().
		Title(titles[axis]).
		Options(opts...).
		Value(&selected).
		Validate(check(choices))
	if err := runField(sel, theme); err != nil {
		return err
	}
	cfg.Set(axis, selected)
	return nil
}

func runField(field huh.Field, theme *huh.Theme) error {
	form := huh.NewForm(huh.NewGroup(field)).WithTheme(theme)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return fmt.Errorf("wizard error: %w", err)
	}
	return nil
}

func newTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#2C4F7C", Dark: "#76B3E1"}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}

	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(primary)
	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	return t
}
