// Package githooks adds a Husky pre-commit hook running lint-staged.
package githooks

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/simonhull/solidified/internal/config"
	"github.com/simonhull/solidified/internal/pkgmanager"
	"github.com/simonhull/solidified/internal/workspace"
)

const (
	biomeCheck    = "biome check --write --no-errors-on-unmatched"
	prettierWrite = "prettier --write"
)

type Husky struct{}

func (Husky) Name() string { return "git-hooks" }

func (Husky) Apply(ctx context.Context, dir string, cfg *config.ProjectConfig) error {
	deps := workspace.Pairs{
		{Key: "husky", Value: "^9"},
		{Key: "lint-staged", Value: "^16.2.7"},
	}
	if err := workspace.AddDependencies(ctx, dir, deps, true); err != nil {
		return err
	}
	scripts := workspace.Pairs{
		{Key: "prepare", Value: "husky"},
		{Key: "lint-staged", Value: "lint-staged"},
	}
	if err := workspace.AddScripts(ctx, dir, scripts); err != nil {
		return err
	}

	hook := workspace.File{
		Path:    ".husky/pre-commit",
		Content: pkgmanager.ExecCommand(cfg.PackageManager) + " lint-staged\n",
		Mode:    0755,
	}
	if err := workspace.WriteFiles(ctx, dir, hook); err != nil {
		return err
	}

	rules := LintStaged(cfg)
	if len(rules) == 0 {
		return nil
	}
	return workspace.UpdateManifest(ctx, dir, func(m *workspace.Manifest) error {
		return m.Set("lint-staged", rules)
	})
}

// Rule maps a staged-file glob to the commands run on matching files.
type Rule struct {
	Glob     string
	Commands []string
}

// Rules serializes as a JSON object keeping rule order.
type Rules []Rule

func (r Rules) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, rule := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(rule.Glob)
		if err != nil {
			return nil, err
		}
		cmds := rule.Commands
		if cmds == nil {
			cmds = []string{}
		}
		value, err := json.Marshal(cmds)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// LintStaged derives the lint-staged rules from the linting and formatting
// choices. It is empty when neither axis contributes a command.
func LintStaged(cfg *config.ProjectConfig) Rules {
	biome := cfg.UsesBiome()
	prettier := cfg.Formatting == config.FormattingPrettier

	var cmds []string
	if biome {
		cmds = append(cmds, biomeCheck)
	}
	if prettier && !biome {
		cmds = append(cmds, prettierWrite)
	}
	switch cfg.Linting {
	case config.LintingESLint:
		cmds = append(cmds, "eslint --fix")
	case config.LintingOxlint:
		cmds = append(cmds, "oxlint --fix")
	}
	if len(cmds) == 0 {
		return nil
	}

	var data []string
	switch {
	case biome:
		data = []string{biomeCheck}
	case prettier:
		data = []string{prettierWrite}
	}
	return Rules{
		{Glob: "*.{js,jsx,ts,tsx}", Commands: cmds},
		{Glob: "*.{json,md}", Commands: data},
	}
}
